package planner

import (
	"sync"

	"tableflip.dev/weekplan/pkg/log"
)

// Transition computes the next state from the current one.
type Transition func(State) State

// Saver persists a state. Errors are logged by the controller and otherwise
// ignored.
type Saver interface {
	Save(State) error
}

// Controller owns the planner state. Every mutation goes through Apply, which
// always runs against the latest state.
type Controller struct {
	mu     sync.Mutex
	state  State
	saver  Saver
	loaded bool
}

// NewController starts with initial and does not write through until Load
// is called.
func NewController(initial State, saver Saver) *Controller {
	return &Controller{state: initial.Clone(), saver: saver}
}

// Load replaces the state with one read from storage and enables
// write-through.
func (c *Controller) Load(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s.Clone()
	c.loaded = true
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Apply runs t on the current state and stores the result. It reports
// whether anything changed.
func (c *Controller) Apply(t Transition) (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := t(c.state.Clone())
	if next.Equal(c.state) {
		return c.state.Clone(), false
	}
	if err := next.Validate(); err != nil {
		log.Error().Err(err).Msg("planner: transition rejected")
		return c.state.Clone(), false
	}
	c.state = next
	if c.loaded && c.saver != nil {
		if err := c.saver.Save(next.Clone()); err != nil {
			log.Warn().Err(err).Msg("planner: save failed")
		}
	}
	return next.Clone(), true
}

// Add is Apply(AddItem). Blank text leaves everything unchanged.
func (c *Controller) Add(text string) (State, bool) {
	var added bool
	s, _ := c.Apply(func(s State) State {
		next, _, ok := s.AddItem(text)
		added = ok
		return next
	})
	return s, added
}
