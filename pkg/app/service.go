package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/weekplan/pkg/item"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/store"
)

// Service opens the planner for CLIs and UIs so they share loading and id
// lookup.
type Service struct {
	Persistence store.Persistence
	// Now defaults to time.Now.
	Now func() time.Time
}

var (
	ErrNotFound  = errors.New("app: no item matches")
	ErrAmbiguous = errors.New("app: more than one item matches")
)

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Open loads the stored state into a controller that writes every change
// back to the store.
func (s *Service) Open() (*planner.Controller, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	now := s.now()
	c := planner.NewController(planner.New(now), s.Persistence)
	c.Load(s.Persistence.Load(now))
	return c, nil
}

// Reload reads the store again into an open controller without writing.
func (s *Service) Reload(c *planner.Controller) planner.State {
	st := s.Persistence.Load(s.now())
	c.Load(st)
	return st
}

// Resolve finds the item whose id is ref or starts with ref.
func Resolve(st planner.State, ref string) (item.Item, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return item.Item{}, ErrNotFound
	}
	if it, ok := st.Find(ref); ok {
		return it, nil
	}
	var found []item.Item
	for _, it := range st.All() {
		if strings.HasPrefix(it.ID, ref) {
			found = append(found, it)
		}
	}
	switch len(found) {
	case 0:
		return item.Item{}, fmt.Errorf("%w %q", ErrNotFound, ref)
	case 1:
		return found[0], nil
	default:
		return item.Item{}, fmt.Errorf("%w %q", ErrAmbiguous, ref)
	}
}
