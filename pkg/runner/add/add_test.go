package add

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/weekplan/pkg/app"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
	"tableflip.dev/weekplan/pkg/store"
)

var now = time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)

type memory struct {
	state planner.State
	saves int
}

func (m *memory) Load(time.Time) planner.State { return m.state.Clone() }

func (m *memory) Save(s planner.State) error {
	m.state = s.Clone()
	m.saves++
	return nil
}

func (m *memory) Watch(context.Context) (<-chan store.Event, error) {
	return nil, errors.New("not supported")
}

func newService() (*app.Service, *memory) {
	m := &memory{state: planner.New(now)}
	return &app.Service{Persistence: m, Now: func() time.Time { return now }}, m
}

func TestAddToPool(t *testing.T) {
	svc, m := newService()
	a := Add{Message: "buy milk", Output: printers.Output{Now: now}, Service: svc}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.state.Unscheduled) != 1 || m.state.Unscheduled[0].Text != "buy milk" {
		t.Fatalf("expected buy milk in the pool, got %+v", m.state.Unscheduled)
	}
}

func TestAddToDay(t *testing.T) {
	svc, m := newService()
	a := Add{Message: "call plumber", Day: "fri", Output: printers.Output{Now: now}, Service: svc}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.state.Unscheduled) != 0 || len(m.state.Days[4].Items) != 1 {
		t.Fatalf("expected the item on Friday only, got %+v", m.state)
	}
	if m.saves != 1 {
		t.Fatalf("expected one save, got %d", m.saves)
	}
}

func TestAddBlank(t *testing.T) {
	svc, m := newService()
	a := Add{Message: "  \t", Service: svc}
	if err := a.Do(context.Background()); !errors.Is(err, ErrBlank) {
		t.Fatalf("expected ErrBlank, got %v", err)
	}
	if m.saves != 0 {
		t.Fatalf("blank add must not save")
	}
}

func TestAddBadDay(t *testing.T) {
	svc, m := newService()
	a := Add{Message: "x", Day: "someday", Service: svc}
	if err := a.Do(context.Background()); err == nil {
		t.Fatalf("expected an error for an unknown day")
	}
	if m.saves != 0 {
		t.Fatalf("failed add must not save")
	}
}
