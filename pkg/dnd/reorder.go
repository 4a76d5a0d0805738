// Package dnd turns a stream of drag start / hover / drop / end events into
// planner transitions. It knows nothing about how the events are produced.
package dnd

import "math"

// Geometry describes how list items are laid out vertically.
type Geometry struct {
	ItemHeight float64
	Gap        float64
}

// DefaultGeometry is the layout of a card list: 48 units tall with a 16 unit
// gap.
func DefaultGeometry() Geometry {
	return Geometry{ItemHeight: 48, Gap: 16}
}

// Slot is the distance between the tops of two consecutive items.
func (g Geometry) Slot() float64 {
	return g.ItemHeight + g.Gap
}

// TargetIndex maps a pointer offset from the top of the list to an insertion
// index in [0, length].
func (g Geometry) TargetIndex(pointerY float64, length int) int {
	if length <= 0 || g.Slot() <= 0 || math.IsNaN(pointerY) {
		return 0
	}
	if pointerY <= 0 {
		return 0
	}
	idx := math.Floor(pointerY / g.Slot())
	if idx >= float64(length) {
		return length
	}
	return int(idx)
}

// Phase is where a reorder gesture stands.
type Phase int

const (
	Idle Phase = iota
	Dragging
	Hovering
)

func (p Phase) String() string {
	switch p {
	case Dragging:
		return "dragging"
	case Hovering:
		return "hovering"
	default:
		return "idle"
	}
}

// Move is a committed reorder: the item at From goes to To.
type Move struct {
	ID   string
	From int
	To   int
}

// Reorder tracks an in-list drag. The zero value is unusable; use
// NewReorder.
type Reorder struct {
	geometry Geometry

	phase  Phase
	id     string
	from   int
	length int
	target int
}

func NewReorder(g Geometry) *Reorder {
	return &Reorder{geometry: g}
}

func (r *Reorder) Geometry() Geometry {
	return r.geometry
}

// Start begins dragging the item id found at index of a list of length
// items. A Start during a gesture abandons the previous one.
func (r *Reorder) Start(id string, index, length int) {
	r.clear()
	if length <= 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= length {
		index = length - 1
	}
	r.phase = Dragging
	r.id = id
	r.from = index
	r.length = length
}

// Hover updates the target index from a pointer offset relative to the top
// of the list. It is ignored while idle.
func (r *Reorder) Hover(pointerY float64) (int, bool) {
	if r.phase == Idle {
		return 0, false
	}
	r.target = r.geometry.TargetIndex(pointerY, r.length)
	r.phase = Hovering
	return r.target, true
}

// Leave forgets the target index when the pointer leaves the list. The drag
// itself continues.
func (r *Reorder) Leave() {
	if r.phase == Hovering {
		r.phase = Dragging
		r.target = 0
	}
}

// End finishes the gesture. The move is returned only when commit is set and
// a target index was established. Transient state is always cleared.
func (r *Reorder) End(commit bool) (Move, bool) {
	defer r.clear()
	if r.phase != Hovering || !commit {
		return Move{}, false
	}
	return Move{ID: r.id, From: r.from, To: r.target}, true
}

func (r *Reorder) Phase() Phase {
	return r.phase
}

func (r *Reorder) Active() bool {
	return r.phase != Idle
}

// Dragged returns the id being dragged, or "" when idle.
func (r *Reorder) Dragged() string {
	return r.id
}

// Hidden reports whether the item at index is the one being dragged.
func (r *Reorder) Hidden(index int) bool {
	return r.phase != Idle && index == r.from
}

// Placeholder returns where the dragged item would land.
func (r *Reorder) Placeholder() (int, bool) {
	if r.phase != Hovering {
		return 0, false
	}
	return r.target, true
}

// Offset is the number of slots the item at index shifts so that the list
// shows a gap at the target index. It is 0 for the dragged item and when no
// target is set.
func (r *Reorder) Offset(index int) int {
	if r.phase != Hovering || index == r.from || index < 0 || index >= r.length {
		return 0
	}
	rest := index
	if index > r.from {
		rest--
	}
	final := rest
	if rest >= r.target {
		final++
	}
	return final - index
}

func (r *Reorder) clear() {
	r.phase = Idle
	r.id = ""
	r.from = 0
	r.length = 0
	r.target = 0
}
