package dnd

import (
	"fmt"

	"tableflip.dev/weekplan/pkg/item"
	"tableflip.dev/weekplan/pkg/log"
	"tableflip.dev/weekplan/pkg/planner"
)

// Payload is what a drag carries.
type Payload struct {
	Kind item.Kind
	Item item.Item
}

// PayloadOf wraps an item for dragging.
func PayloadOf(it item.Item) Payload {
	return Payload{Kind: it.Kind(), Item: it}
}

// Zone is a drop target. Drop runs exactly one planner transition.
type Zone interface {
	ID() string
	Accepts(item.Kind) bool
	Drop(planner.State, Payload) planner.State
}

// ListZone is a zone that displays a list of items which can be reordered
// in place. List returns planner.Pool or a day index.
type ListZone interface {
	Zone
	List() int
}

type accept struct {
	kind item.Kind
}

func (a accept) Accepts(k item.Kind) bool {
	return k == a.kind
}

// PoolZone returns dropped items to the unscheduled list.
type PoolZone struct{ accept }

func NewPoolZone() PoolZone {
	return PoolZone{accept{item.Card}}
}

func (PoolZone) ID() string { return "pool" }
func (PoolZone) List() int  { return planner.Pool }

func (PoolZone) Drop(s planner.State, p Payload) planner.State {
	return s.MoveToUnscheduled(p.Item.ID, p.Item)
}

// DayZone schedules dropped items on one day of the week.
type DayZone struct {
	accept
	Index int
}

func NewDayZone(index int) DayZone {
	return DayZone{accept: accept{item.Card}, Index: index}
}

func (z DayZone) ID() string { return fmt.Sprintf("day-%d", z.Index) }
func (z DayZone) List() int  { return z.Index }

func (z DayZone) Drop(s planner.State, p Payload) planner.State {
	return s.MoveToDay(p.Item.ID, z.Index, p.Item)
}

// EditZone does not edit yet: it logs the item and puts it back in the pool.
type EditZone struct{ accept }

func NewEditZone() EditZone {
	return EditZone{accept{item.Card}}
}

func (EditZone) ID() string { return "edit" }

func (EditZone) Drop(s planner.State, p Payload) planner.State {
	log.Info().Str("id", p.Item.ID).Str("text", p.Item.Text).Msg("edit requested")
	return s.MoveToUnscheduled(p.Item.ID, p.Item)
}

// DeleteZone removes dropped items entirely.
type DeleteZone struct{ accept }

func NewDeleteZone() DeleteZone {
	return DeleteZone{accept{item.Card}}
}

func (DeleteZone) ID() string { return "delete" }

func (DeleteZone) Drop(s planner.State, p Payload) planner.State {
	return s.RemoveItem(p.Item.ID)
}

// DropResult reports how a drop was resolved.
type DropResult struct {
	State   planner.State
	Handled bool
	Zone    string
}

// Dispatch delivers a drop to a stack of nested zones, innermost first. The
// first zone accepting the payload handles it; every zone after it sees
// Handled and leaves the state alone.
func Dispatch(s planner.State, stack []Zone, p Payload) DropResult {
	res := DropResult{State: s}
	for _, z := range stack {
		if res.Handled {
			continue
		}
		if !z.Accepts(p.Kind) {
			continue
		}
		res.State = z.Drop(res.State, p)
		res.Handled = true
		res.Zone = z.ID()
	}
	return res
}

// Highlights tracks which zones show the hover affordance.
type Highlights struct {
	over map[string]bool
}

// Hover recomputes the highlight set: a zone is lit when it is under the
// pointer and accepts kind.
func (h *Highlights) Hover(stack []Zone, kind item.Kind) {
	h.over = make(map[string]bool, len(stack))
	for _, z := range stack {
		if z.Accepts(kind) {
			h.over[z.ID()] = true
		}
	}
}

// Reset turns every zone off.
func (h *Highlights) Reset() {
	h.over = nil
}

func (h *Highlights) Lit(id string) bool {
	return h.over[id]
}

// Any reports whether any zone is lit.
func (h *Highlights) Any() bool {
	return len(h.over) > 0
}
