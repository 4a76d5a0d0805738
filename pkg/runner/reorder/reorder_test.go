package reorder

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/weekplan/pkg/app"
	"tableflip.dev/weekplan/pkg/item"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
	"tableflip.dev/weekplan/pkg/store"
)

var now = time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)

type memory struct {
	state planner.State
}

func (m *memory) Load(time.Time) planner.State { return m.state.Clone() }

func (m *memory) Save(s planner.State) error {
	m.state = s.Clone()
	return nil
}

func (m *memory) Watch(context.Context) (<-chan store.Event, error) {
	return nil, errors.New("not supported")
}

func TestListIndex(t *testing.T) {
	tests := map[string]int{
		"pool":        planner.Pool,
		"Unscheduled": planner.Pool,
		"todo":        planner.Pool,
		"mon":         0,
		"Sunday":      6,
		"3":           2,
	}
	for name, want := range tests {
		got, err := ListIndex(name)
		if err != nil || got != want {
			t.Fatalf("%s: expected %d, got %d (%v)", name, want, got, err)
		}
	}
	if _, err := ListIndex("later"); err == nil {
		t.Fatalf("expected an error for an unknown list")
	}
}

func TestReorderPoolAndDay(t *testing.T) {
	s := planner.New(now)
	for _, text := range []string{"A", "B", "C", "D"} {
		s, _, _ = s.AddItem(text)
	}
	for _, it := range s.List(planner.Pool) {
		s = s.MoveToDay(it.ID, 3, it)
	}
	for _, text := range []string{"A", "B", "C", "D"} {
		s, _, _ = s.AddItem(text)
	}
	m := &memory{state: s}
	svc := &app.Service{Persistence: m, Now: func() time.Time { return now }}

	r := Reorder{List: "pool", From: 0, To: 2, Output: printers.Output{Now: now}, Service: svc}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r = Reorder{List: "thu", From: 3, To: 0, Output: printers.Output{Now: now}, Service: svc}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := join(m.state.List(planner.Pool)); got != "BCAD" {
		t.Fatalf("expected BCAD in the pool, got %s", got)
	}
	if got := join(m.state.List(3)); got != "DABC" {
		t.Fatalf("expected DABC on Thursday, got %s", got)
	}
}

func join(items []item.Item) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.Text)
	}
	return b.String()
}
