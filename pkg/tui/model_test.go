package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/weekplan/pkg/app"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/store"
)

var wednesday = time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)

type fakePersistence struct {
	mu    sync.Mutex
	state planner.State
}

func (f *fakePersistence) Load(time.Time) planner.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Clone()
}

func (f *fakePersistence) Save(s planner.State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = s.Clone()
	return nil
}

func (f *fakePersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, errors.New("not supported")
}

// newTestModel builds a 100x30 UI over a pool holding texts.
func newTestModel(t *testing.T, texts ...string) (Model, *fakePersistence) {
	t.Helper()
	s := planner.New(wednesday)
	for _, text := range texts {
		s, _, _ = s.AddItem(text)
	}
	fp := &fakePersistence{state: s}
	svc := &app.Service{Persistence: fp, Now: func() time.Time { return wednesday }}
	ctl, err := svc.Open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	m := New(svc, ctl, nil)
	m.now = func() time.Time { return wednesday }
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, fp
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func click(x, y int) tea.Msg   { return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft} }
func motion(x, y int) tea.Msg  { return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft} }
func release(x, y int) tea.Msg { return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft} }

// poolCard and dayCard return a cell inside card i.
func poolCard(i int) (int, int) { return 2, listTop + i }

func dayCard(m Model, d, i int) (int, int) {
	r := m.layout.days[d]
	return r.x + 1, listTop + i
}

func texts(m Model, list int) []string {
	var out []string
	for _, it := range m.state.List(list) {
		out = append(out, it.Text)
	}
	return out
}

func TestDragFromPoolToDay(t *testing.T) {
	m, fp := newTestModel(t, "A", "B")

	x, y := poolCard(0)
	dx, dy := dayCard(m, 2, 0)
	m = send(m, click(x, y), motion(dx, dy))
	if !m.drag.Highlights.Lit("day-2") {
		t.Fatalf("expected day 2 to be highlighted while hovering")
	}
	m = send(m, release(dx, dy))

	if got := texts(m, 2); len(got) != 1 || got[0] != "A" {
		t.Fatalf("expected A on Wednesday, got %v", got)
	}
	if got := texts(m, planner.Pool); len(got) != 1 || got[0] != "B" {
		t.Fatalf("expected only B in the pool, got %v", got)
	}
	if m.drag.Active() || m.drag.Highlights.Any() {
		t.Fatalf("drag state not cleared after drop")
	}
	if len(fp.state.Days[2].Items) != 1 {
		t.Fatalf("drop was not written through to the store")
	}
}

func TestDragReordersPool(t *testing.T) {
	m, _ := newTestModel(t, "A", "B", "C", "D")

	x, y := poolCard(0)
	tx, ty := poolCard(2)
	m = send(m, click(x, y), motion(tx, ty))
	if p, ok := m.drag.Reorder.Placeholder(); !ok || p != 2 {
		t.Fatalf("expected placeholder at 2, got %d %v", p, ok)
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "┄") {
		t.Fatalf("expected a placeholder in the view")
	}
	m = send(m, release(tx, ty))

	if got := strings.Join(texts(m, planner.Pool), ""); got != "BCAD" {
		t.Fatalf("expected BCAD, got %s", got)
	}
}

func TestDropOutsideEveryZoneCancels(t *testing.T) {
	m, _ := newTestModel(t, "A", "B", "C", "D")
	before := m.state

	x, y := poolCard(0)
	_, ty := poolCard(2)
	m = send(m, click(x, y), motion(x, ty), motion(99, ty), release(99, ty))

	if !m.state.Equal(before) {
		t.Fatalf("cancelled drag changed the state")
	}
	if m.drag.Active() || m.status != "drag cancelled" {
		t.Fatalf("expected a cancelled, inactive drag; status %q", m.status)
	}
}

func TestDropOnDeleteRemovesScheduledItem(t *testing.T) {
	m, _ := newTestModel(t, "A", "B")

	x, y := poolCard(0)
	dx, dy := dayCard(m, 3, 0)
	m = send(m, click(x, y), motion(dx, dy), release(dx, dy))

	del := m.layout.delete
	m = send(m, click(dx, dy), motion(del.x+1, del.y))
	if !m.drag.Highlights.Lit("delete") || !m.drag.Highlights.Lit("pool") {
		t.Fatalf("expected delete and its enclosing pool to be lit")
	}
	m = send(m, release(del.x+1, del.y))

	if len(m.state.Days[3].Items) != 0 {
		t.Fatalf("expected Thursday to be empty")
	}
	if got := texts(m, planner.Pool); len(got) != 1 || got[0] != "B" {
		t.Fatalf("deleted item must not return to the pool, got %v", got)
	}
}

func TestDropOnEditReturnsItemToPool(t *testing.T) {
	m, _ := newTestModel(t, "A")

	x, y := poolCard(0)
	dx, dy := dayCard(m, 0, 0)
	m = send(m, click(x, y), motion(dx, dy), release(dx, dy))

	edit := m.layout.edit
	m = send(m, click(dx, dy), motion(edit.x+1, edit.y), release(edit.x+1, edit.y))

	if len(m.state.Days[0].Items) != 0 || len(m.state.Unscheduled) != 1 {
		t.Fatalf("expected A back in the pool, got %+v", m.state)
	}
}

func TestMotionWithoutDragIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, "A")
	before := m.state

	dx, dy := dayCard(m, 1, 0)
	m = send(m, motion(dx, dy), release(dx, dy))
	if m.drag.Highlights.Any() || !m.state.Equal(before) {
		t.Fatalf("pointer events without a drag must do nothing")
	}
}

func TestEscapeCancelsDrag(t *testing.T) {
	m, _ := newTestModel(t, "A", "B")
	before := m.state

	x, y := poolCard(0)
	dx, dy := dayCard(m, 5, 0)
	m = send(m, click(x, y), motion(dx, dy), tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.drag.Active() || m.drag.Highlights.Any() {
		t.Fatalf("escape must end the drag")
	}
	m = send(m, release(dx, dy))
	if !m.state.Equal(before) {
		t.Fatalf("release after escape changed the state")
	}
}

func TestSubmitAddsItemAndRejectsBlank(t *testing.T) {
	m, _ := newTestModel(t)

	m.input.SetValue("   ")
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if len(m.state.Unscheduled) != 0 {
		t.Fatalf("blank input must be rejected")
	}
	if m.input.Value() != "   " {
		t.Fatalf("rejected input must be kept, got %q", m.input.Value())
	}

	m.input.SetValue("buy milk")
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := texts(m, planner.Pool); len(got) != 1 || got[0] != "buy milk" {
		t.Fatalf("expected buy milk in the pool, got %v", got)
	}
	if m.input.Value() != "" {
		t.Fatalf("expected input cleared after add")
	}
}

func TestStoreChangeDuringDragReloadsAfterEnd(t *testing.T) {
	m, fp := newTestModel(t, "A")

	x, y := poolCard(0)
	m = send(m, click(x, y))

	external := fp.Load(wednesday)
	external, _, _ = external.AddItem("from cli")
	_ = fp.Save(external)

	m = send(m, storeEventMsg{store.Event{Type: store.EventRecordChanged}})
	if len(m.state.Unscheduled) != 1 {
		t.Fatalf("reload must wait for the drag to end")
	}
	m = send(m, release(99, y))
	if got := texts(m, planner.Pool); len(got) != 2 || got[1] != "from cli" {
		t.Fatalf("expected reload after drag end, got %v", got)
	}
}

func TestViewRendersWeek(t *testing.T) {
	m, _ := newTestModel(t, "plan sprint")
	view := ansi.Strip(m.View())
	for _, want := range []string{"Unscheduled (1)", "Mon (0)", "03/05", "Edit", "Delete", "plan sprint"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}
