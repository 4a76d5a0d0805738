// Package remove deletes items from the command line.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/weekplan/pkg/app"
	"tableflip.dev/weekplan/pkg/dnd"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
)

// Remove deletes an item from wherever it is.
type Remove struct {
	ID     string
	Output printers.Output

	Service *app.Service
}

func (n *Remove) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no persistence")
	}
	c, err := n.Service.Open()
	if err != nil {
		return err
	}
	it, err := app.Resolve(c.State(), n.ID)
	if err != nil {
		return err
	}
	zone := dnd.NewDeleteZone()
	st, _ := c.Apply(func(s planner.State) planner.State {
		return dnd.Dispatch(s, []dnd.Zone{zone}, dnd.PayloadOf(it)).State
	})
	return n.Output.Print(st)
}
