// Package get prints the planner.
package get

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/weekplan/pkg/app"
	"tableflip.dev/weekplan/pkg/printers"
	"tableflip.dev/weekplan/pkg/week"
)

type Get struct {
	// Day limits output to one day; empty prints the whole week.
	Day    string
	Output printers.Output

	Service *app.Service
}

func (n *Get) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no persistence")
	}
	c, err := n.Service.Open()
	if err != nil {
		return err
	}
	st := c.State()

	if n.Day == "" {
		return n.Output.Print(st)
	}
	idx, err := week.Index(n.Day)
	if err != nil {
		return err
	}
	if n.Output.JSON {
		return printers.JSON(color.Output, st.Days[idx])
	}
	n.Output.Pretty(st).Day(st.Days[idx])
	return nil
}
