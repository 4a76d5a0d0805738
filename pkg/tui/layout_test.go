package tui

import (
	"testing"

	"tableflip.dev/weekplan/pkg/planner"
)

func TestLayoutHit(t *testing.T) {
	l := newLayout(100, 30)

	tests := map[string]struct {
		x, y  int
		zones []string
		list  int
	}{
		"pool card": {
			x: 2, y: listTop,
			zones: []string{"pool"},
			list:  planner.Pool,
		},
		"edit nests in pool": {
			x: l.edit.x, y: l.edit.y,
			zones: []string{"edit", "pool"},
			list:  planner.Pool,
		},
		"delete nests in pool": {
			x: l.delete.x + l.delete.w - 1, y: l.delete.y,
			zones: []string{"delete", "pool"},
			list:  planner.Pool,
		},
		"monday": {
			x: l.days[0].x, y: listTop + 4,
			zones: []string{"day-0"},
			list:  0,
		},
		"sunday": {
			x: l.days[6].x + l.days[6].w - 1, y: 0,
			zones: []string{"day-6"},
			list:  6,
		},
		"gutter": {
			x: poolWidth, y: listTop,
			list: noList,
		},
		"right of the grid": {
			x: 99, y: listTop,
			list: noList,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			zones, list, _ := l.hit(tc.x, tc.y)
			if list != tc.list {
				t.Fatalf("expected list %d, got %d", tc.list, list)
			}
			if len(zones) != len(tc.zones) {
				t.Fatalf("expected %d zones, got %d", len(tc.zones), len(zones))
			}
			for i, z := range zones {
				if z.ID() != tc.zones[i] {
					t.Fatalf("zone %d: expected %s, got %s", i, tc.zones[i], z.ID())
				}
			}
		})
	}
}

func TestLayoutCardAt(t *testing.T) {
	l := newLayout(100, 30)
	s := planner.New(wednesday)
	s, a, _ := s.AddItem("A")
	s, b, _ := s.AddItem("B")
	s = s.MoveToDay(b.ID, 4, b)

	list, idx, ok := l.cardAt(s, 3, listTop)
	if !ok || list != planner.Pool || idx != 0 || s.Unscheduled[idx].ID != a.ID {
		t.Fatalf("expected A at the top of the pool, got %d %d %v", list, idx, ok)
	}
	if _, _, ok := l.cardAt(s, 3, listTop+1); ok {
		t.Fatalf("expected no card below the last pool item")
	}
	list, idx, ok = l.cardAt(s, l.days[4].x+1, listTop)
	if !ok || list != 4 || idx != 0 {
		t.Fatalf("expected B on Friday, got %d %d %v", list, idx, ok)
	}
	if _, _, ok := l.cardAt(s, 3, 1); ok {
		t.Fatalf("headers are not cards")
	}
}

func TestLayoutClampsSmallTerminals(t *testing.T) {
	l := newLayout(10, 2)
	if l.width != minWidth || l.height != minHeight {
		t.Fatalf("expected %dx%d, got %dx%d", minWidth, minHeight, l.width, l.height)
	}
	if l.listRows(planner.Pool) < 1 {
		t.Fatalf("expected room for at least one pool card")
	}
}
