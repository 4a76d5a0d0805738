// Package edit is the command line counterpart of the edit drop target.
package edit

import (
	"context"
	"errors"

	"tableflip.dev/weekplan/pkg/app"
	"tableflip.dev/weekplan/pkg/dnd"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
)

// Edit drops an item on the edit target: it is logged and returned to the
// pool. Changing the text is not supported.
type Edit struct {
	ID     string
	Output printers.Output

	Service *app.Service
}

func (n *Edit) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no persistence")
	}
	c, err := n.Service.Open()
	if err != nil {
		return err
	}
	it, err := app.Resolve(c.State(), n.ID)
	if err != nil {
		return err
	}
	zone := dnd.NewEditZone()
	st, _ := c.Apply(func(s planner.State) planner.State {
		return dnd.Dispatch(s, []dnd.Zone{zone}, dnd.PayloadOf(it)).State
	})
	return n.Output.Print(st)
}
