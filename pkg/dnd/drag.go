package dnd

import (
	"tableflip.dev/weekplan/pkg/item"
	"tableflip.dev/weekplan/pkg/log"
	"tableflip.dev/weekplan/pkg/planner"
)

// Drag coordinates one gesture across the drop zones and the reorder engine
// of the list the item was picked up from.
type Drag struct {
	Reorder    *Reorder
	Highlights Highlights

	payload Payload
	source  int
	active  bool
}

func NewDrag(g Geometry) *Drag {
	return &Drag{Reorder: NewReorder(g)}
}

// Start picks up it from position index of list (planner.Pool or a day)
// holding length items.
func (d *Drag) Start(it item.Item, list, index, length int) {
	d.End()
	d.payload = PayloadOf(it)
	d.source = list
	d.active = true
	d.Reorder.Start(it.ID, index, length)
	log.Debug().Str("id", it.ID).Int("list", list).Int("index", index).Msg("drag start")
}

func (d *Drag) Active() bool {
	return d.active
}

// Payload returns what is being dragged.
func (d *Drag) Payload() (Payload, bool) {
	return d.payload, d.active
}

// Source returns the list the drag started from.
func (d *Drag) Source() int {
	return d.source
}

// Hover handles a pointer move over stack, innermost zone first. pointerY is
// relative to the top of the innermost list zone, if any. Hovers while idle
// are ignored.
func (d *Drag) Hover(stack []Zone, pointerY float64) {
	if !d.active {
		return
	}
	d.Highlights.Hover(stack, d.payload.Kind)
	if d.overSource(stack) {
		d.Reorder.Hover(pointerY)
	} else {
		d.Reorder.Leave()
	}
}

// Drop releases the item over stack and returns the resulting state. A drop
// on the source list commits a reorder; anything else goes to Dispatch. An
// empty stack cancels the drag. The drag always ends.
func (d *Drag) Drop(s planner.State, stack []Zone) planner.State {
	if !d.active {
		return s
	}
	defer d.End()

	if d.overSource(stack) {
		if mv, ok := d.Reorder.End(true); ok {
			log.Debug().Str("id", mv.ID).Int("from", mv.From).Int("to", mv.To).Msg("drag reorder")
			if d.source == planner.Pool {
				return s.ReorderUnscheduled(mv.From, mv.To)
			}
			return s.ReorderDay(d.source, mv.From, mv.To)
		}
	}

	res := Dispatch(s, stack, d.payload)
	if !res.Handled {
		log.Debug().Str("id", d.payload.Item.ID).Msg("drag cancelled")
		return s
	}
	log.Debug().Str("id", d.payload.Item.ID).Str("zone", res.Zone).Msg("drag drop")
	return res.State
}

// End is the global drag-end signal. It clears all transient state whether
// or not a zone was entered and is a no-op while idle.
func (d *Drag) End() {
	if !d.active {
		return
	}
	d.Reorder.End(false)
	d.Highlights.Reset()
	d.payload = Payload{}
	d.source = 0
	d.active = false
}

// overSource reports whether the first accepting zone in stack is the list
// the drag started from.
func (d *Drag) overSource(stack []Zone) bool {
	for _, z := range stack {
		if !z.Accepts(d.payload.Kind) {
			continue
		}
		lz, ok := z.(ListZone)
		return ok && lz.List() == d.source
	}
	return false
}
