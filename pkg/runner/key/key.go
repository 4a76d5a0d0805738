package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

type Key struct{}

type row struct {
	Gesture string
	Target  string
	Effect  string
}

var rows = []row{
	{"drag", "Unscheduled", "return the item to the pool"},
	{"drag", "a day", "schedule the item on that day"},
	{"drag", "its own list", "reorder within the list"},
	{"drag", "Edit", "return the item to the pool (editing is not supported yet)"},
	{"drag", "Delete", "remove the item"},
	{"release", "nowhere", "cancel, nothing changes"},
	{"enter", "input", "add an item; blank input is ignored"},
	{"ctrl+c", "", "quit"},
}

func (k *Key) Do(_ context.Context) error {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Gesture"), bold.Sprint("Target"), bold.Sprint("Effect"))
	for _, r := range rows {
		tbl.AddRow(r.Gesture, r.Target, r.Effect)
	}

	_, _ = fmt.Fprintln(color.Output, color.New(color.Bold, color.Underline).Sprint("\nDrag and drop"))
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
