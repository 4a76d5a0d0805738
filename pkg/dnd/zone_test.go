package dnd

import (
	"testing"
	"time"

	"tableflip.dev/weekplan/pkg/item"
	"tableflip.dev/weekplan/pkg/planner"
)

var monday = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

func seeded(t *testing.T, texts ...string) (planner.State, []item.Item) {
	t.Helper()
	s := planner.New(monday)
	var out []item.Item
	for _, text := range texts {
		var it item.Item
		var ok bool
		s, it, ok = s.AddItem(text)
		if !ok {
			t.Fatalf("add %q rejected", text)
		}
		out = append(out, it)
	}
	return s, out
}

// countingZone records how many drops reach it.
type countingZone struct {
	PoolZone
	drops *int
}

func (c countingZone) ID() string { return "counting" }

func (c countingZone) Drop(s planner.State, p Payload) planner.State {
	*c.drops++
	return c.PoolZone.Drop(s, p)
}

func TestDispatchHandlesNestedDropOnce(t *testing.T) {
	s, items := seeded(t, "A")
	outerDrops := 0
	outer := countingZone{PoolZone: NewPoolZone(), drops: &outerDrops}

	res := Dispatch(s, []Zone{NewDayZone(2), outer}, PayloadOf(items[0]))
	if !res.Handled || res.Zone != "day-2" {
		t.Fatalf("expected the inner day zone to handle the drop, got %+v", res)
	}
	if outerDrops != 0 {
		t.Fatalf("outer zone handled an already handled drop")
	}
	if loc, _ := res.State.Locate(items[0].ID); loc.Day != 2 {
		t.Fatalf("expected item on day 2, got %+v", loc)
	}
}

func TestDispatchIgnoresUnknownKind(t *testing.T) {
	s, items := seeded(t, "A")
	res := Dispatch(s, []Zone{NewDeleteZone(), NewPoolZone()}, Payload{Kind: "FILE", Item: items[0]})
	if res.Handled {
		t.Fatalf("unknown kind must be ignored")
	}
	if !res.State.Equal(s) {
		t.Fatalf("state changed on ignored drop")
	}
}

func TestDeleteZoneRemovesFromAnyDay(t *testing.T) {
	s, items := seeded(t, "A", "B")
	s = s.MoveToDay(items[0].ID, 3, items[0])

	res := Dispatch(s, []Zone{NewDeleteZone()}, PayloadOf(items[0]))
	if len(res.State.Days[3].Items) != 0 {
		t.Fatalf("expected day 3 to be empty")
	}
	if item.Index(res.State.Unscheduled, items[0].ID) >= 0 {
		t.Fatalf("deleted item was put back in the pool")
	}
}

func TestEditZoneReturnsItemToPool(t *testing.T) {
	s, items := seeded(t, "A")
	s = s.MoveToDay(items[0].ID, 1, items[0])

	res := Dispatch(s, []Zone{NewEditZone()}, PayloadOf(items[0]))
	if len(res.State.Days[1].Items) != 0 || item.Index(res.State.Unscheduled, items[0].ID) != 0 {
		t.Fatalf("expected item back in the pool, got %+v", res.State)
	}
}

func TestDayZoneDropIsIdempotent(t *testing.T) {
	s, items := seeded(t, "A")
	s = s.MoveToDay(items[0].ID, 4, items[0])

	res := Dispatch(s, []Zone{NewDayZone(4)}, PayloadOf(items[0]))
	if !res.State.Equal(s) {
		t.Fatalf("dropping on the occupied day changed the state")
	}
}

func TestHighlights(t *testing.T) {
	var h Highlights
	h.Hover([]Zone{NewDayZone(1), NewPoolZone()}, item.Card)
	if !h.Lit("day-1") || !h.Lit("pool") || h.Lit("delete") {
		t.Fatalf("unexpected highlight set")
	}

	h.Hover([]Zone{NewDeleteZone()}, item.Card)
	if h.Lit("day-1") || !h.Lit("delete") {
		t.Fatalf("highlights must be recomputed on every hover")
	}

	h.Hover([]Zone{NewDeleteZone()}, "FILE")
	if h.Any() {
		t.Fatalf("unaccepted kinds must not light a zone")
	}

	h.Hover([]Zone{NewEditZone()}, item.Card)
	h.Hover(nil, item.Card)
	if h.Any() {
		t.Fatalf("moving off every zone must turn them all off")
	}
}
