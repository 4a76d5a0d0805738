// Package planner holds the weekly planner state and the pure transitions
// that mutate it.
package planner

import (
	"fmt"
	"time"

	"tableflip.dev/weekplan/pkg/item"
	"tableflip.dev/weekplan/pkg/week"
)

// Pool is the Location.Day value for the unscheduled list.
const Pool = -1

// State is the complete planner: the unscheduled pool plus one bucket per day
// of the active week. Transitions never modify their receiver.
type State struct {
	Unscheduled []item.Item            `json:"unscheduled"`
	Days        [week.Days]week.Bucket `json:"days"`
}

// Location is where an item lives. Day is Pool for the unscheduled list.
type Location struct {
	Day   int
	Index int
}

func (l Location) Scheduled() bool {
	return l.Day != Pool
}

// New returns an empty state for the week containing now.
func New(now time.Time) State {
	return State{
		Unscheduled: []item.Item{},
		Days:        week.New(now),
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{Unscheduled: item.Copy(s.Unscheduled), Days: s.Days}
	for i := range out.Days {
		out.Days[i].Items = item.Copy(s.Days[i].Items)
	}
	return out
}

// AddItem appends a new item to the pool. Blank text is rejected and the
// state is returned unchanged.
func (s State) AddItem(text string) (State, item.Item, bool) {
	it, ok := item.New(text)
	if !ok {
		return s, item.Item{}, false
	}
	out := s.Clone()
	out.Unscheduled = append(out.Unscheduled, it)
	return out, it, true
}

// RemoveItem deletes id from wherever it lives.
func (s State) RemoveItem(id string) State {
	if _, ok := s.Locate(id); !ok {
		return s
	}
	out := s.Clone()
	out.Unscheduled = item.Without(out.Unscheduled, id)
	for i := range out.Days {
		out.Days[i].Items = item.Without(out.Days[i].Items, id)
	}
	return out
}

// MoveToDay schedules id on day, appending it to that day's items. Dropping
// an item on the day that already holds it changes nothing. When the item
// is known, its stored copy wins over it.
func (s State) MoveToDay(id string, day int, it item.Item) State {
	if day < 0 || day >= week.Days {
		return s
	}
	it.ID = id
	loc, found := s.Locate(id)
	if found && loc.Day == day {
		return s
	}
	if found {
		it = s.at(loc)
	}

	out := s.Clone()
	if found && loc.Scheduled() {
		out.Days[loc.Day].Items = item.Without(out.Days[loc.Day].Items, id)
	} else {
		out.Unscheduled = item.Without(out.Unscheduled, id)
	}
	out.Days[day].Items = append(out.Days[day].Items, it)
	return out
}

// MoveToUnscheduled returns id to the end of the pool unless it is already
// there.
func (s State) MoveToUnscheduled(id string, it item.Item) State {
	it.ID = id
	loc, found := s.Locate(id)
	if found && !loc.Scheduled() {
		return s
	}
	if found {
		it = s.at(loc)
	}

	out := s.Clone()
	for i := range out.Days {
		out.Days[i].Items = item.Without(out.Days[i].Items, id)
	}
	out.Unscheduled = append(out.Unscheduled, it)
	return out
}

// ReorderUnscheduled moves the pool item at from to position to.
func (s State) ReorderUnscheduled(from, to int) State {
	out := s.Clone()
	out.Unscheduled = Reorder(out.Unscheduled, from, to)
	return out
}

// ReorderDay moves the item at from to position to within one day.
func (s State) ReorderDay(day, from, to int) State {
	if day < 0 || day >= week.Days {
		return s
	}
	out := s.Clone()
	out.Days[day].Items = Reorder(out.Days[day].Items, from, to)
	return out
}

// List returns a copy of the items at a location's list (Pool or a day).
func (s State) List(day int) []item.Item {
	if day == Pool {
		return item.Copy(s.Unscheduled)
	}
	if day < 0 || day >= week.Days {
		return nil
	}
	return item.Copy(s.Days[day].Items)
}

// Locate finds id. The pool is searched before the days.
func (s State) Locate(id string) (Location, bool) {
	if i := item.Index(s.Unscheduled, id); i >= 0 {
		return Location{Day: Pool, Index: i}, true
	}
	for d := range s.Days {
		if i := item.Index(s.Days[d].Items, id); i >= 0 {
			return Location{Day: d, Index: i}, true
		}
	}
	return Location{}, false
}

// Find returns the stored item for id.
func (s State) Find(id string) (item.Item, bool) {
	loc, ok := s.Locate(id)
	if !ok {
		return item.Item{}, false
	}
	return s.at(loc), true
}

// All returns every item, pool first, then Monday through Sunday.
func (s State) All() []item.Item {
	out := item.Copy(s.Unscheduled)
	for _, d := range s.Days {
		out = append(out, d.Items...)
	}
	return out
}

// Validate reports an item id that appears in more than one place.
func (s State) Validate() error {
	seen := make(map[string]string)
	check := func(where string, items []item.Item) error {
		for _, it := range items {
			if prev, ok := seen[it.ID]; ok {
				return fmt.Errorf("planner: item %s in both %s and %s", it.ID, prev, where)
			}
			seen[it.ID] = where
		}
		return nil
	}
	if err := check("unscheduled", s.Unscheduled); err != nil {
		return err
	}
	for d, b := range s.Days {
		if err := check(fmt.Sprintf("day %d", d), b.Items); err != nil {
			return err
		}
	}
	return nil
}

// Equal compares two states structurally. Nil and empty lists are equal.
func (s State) Equal(o State) bool {
	if !equalItems(s.Unscheduled, o.Unscheduled) {
		return false
	}
	for i := range s.Days {
		a, b := s.Days[i], o.Days[i]
		if a.Date != b.Date || a.DayOfWeek != b.DayOfWeek || !equalItems(a.Items, b.Items) {
			return false
		}
	}
	return true
}

func (s State) at(loc Location) item.Item {
	if loc.Scheduled() {
		return s.Days[loc.Day].Items[loc.Index]
	}
	return s.Unscheduled[loc.Index]
}

func equalItems(a, b []item.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
