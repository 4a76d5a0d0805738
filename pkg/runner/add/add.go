// Package add provides the runner logic for creating planner items.
package add

import (
	"context"
	"errors"

	"tableflip.dev/weekplan/pkg/app"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
	"tableflip.dev/weekplan/pkg/week"
)

// ErrBlank is returned when the item text is empty.
var ErrBlank = errors.New("add: item text is blank")

// Add creates an item in the pool, or on Day when it is set, and prints the
// week.
type Add struct {
	Message string
	Day     string
	Output  printers.Output

	Service *app.Service
}

func (n *Add) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no persistence")
	}
	day := planner.Pool
	if n.Day != "" {
		var err error
		if day, err = week.Index(n.Day); err != nil {
			return err
		}
	}
	c, err := n.Service.Open()
	if err != nil {
		return err
	}

	var added bool
	st, _ := c.Apply(func(s planner.State) planner.State {
		next, it, ok := s.AddItem(n.Message)
		if !ok {
			return s
		}
		added = true
		if day != planner.Pool {
			next = next.MoveToDay(it.ID, day, it)
		}
		return next
	})
	if !added {
		return ErrBlank
	}
	return n.Output.Print(st)
}
