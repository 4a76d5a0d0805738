// Package move schedules and unschedules items from the command line.
package move

import (
	"context"
	"errors"

	"tableflip.dev/weekplan/pkg/app"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
	"tableflip.dev/weekplan/pkg/week"
)

// Move puts an item on a day, or back in the pool when Day is empty.
type Move struct {
	ID     string
	Day    string
	Output printers.Output

	Service *app.Service
}

func (n *Move) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no persistence")
	}
	c, err := n.Service.Open()
	if err != nil {
		return err
	}
	it, err := app.Resolve(c.State(), n.ID)
	if err != nil {
		return err
	}

	var st planner.State
	if n.Day == "" {
		st, _ = c.Apply(func(s planner.State) planner.State {
			return s.MoveToUnscheduled(it.ID, it)
		})
	} else {
		idx, err := week.Index(n.Day)
		if err != nil {
			return err
		}
		st, _ = c.Apply(func(s planner.State) planner.State {
			return s.MoveToDay(it.ID, idx, it)
		})
	}
	return n.Output.Print(st)
}
