// Package reorder moves an item within one list from the command line.
package reorder

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/weekplan/pkg/app"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
	"tableflip.dev/weekplan/pkg/week"
)

// Reorder moves the item at From to To in List, which is "pool" or a day.
// Indices are clamped to the list.
type Reorder struct {
	List   string
	From   int
	To     int
	Output printers.Output

	Service *app.Service
}

// ListIndex maps "pool" or a day name to planner.Pool or a day index.
func ListIndex(name string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pool", "unscheduled", "todo":
		return planner.Pool, nil
	}
	return week.Index(name)
}

func (n *Reorder) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not reorder, no persistence")
	}
	list, err := ListIndex(n.List)
	if err != nil {
		return err
	}
	c, err := n.Service.Open()
	if err != nil {
		return err
	}
	st, _ := c.Apply(func(s planner.State) planner.State {
		if list == planner.Pool {
			return s.ReorderUnscheduled(n.From, n.To)
		}
		return s.ReorderDay(list, n.From, n.To)
	})
	return n.Output.Print(st)
}
