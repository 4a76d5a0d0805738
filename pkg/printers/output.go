package printers

import (
	"time"

	"github.com/fatih/color"

	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/week"
)

// Output carries the print flags shared by runners.
type Output struct {
	JSON   bool
	ShowID bool
	// Now marks today in pretty output; zero means time.Now.
	Now time.Time
}

// Print writes s as JSON or as the pretty week.
func (o Output) Print(s planner.State) error {
	if o.JSON {
		return JSON(color.Output, s)
	}
	o.Pretty(s).Week(s)
	return nil
}

// Pretty returns a PrettyPrint that marks today when it falls in s's week.
func (o Output) Pretty(s planner.State) *PrettyPrint {
	pp := &PrettyPrint{ShowID: o.ShowID, Today: -1}
	now := o.Now
	if now.IsZero() {
		now = time.Now()
	}
	idx := (int(now.Weekday()) + 6) % 7
	if s.Days[idx].Date == week.New(now)[idx].Date {
		pp.Today = idx
	}
	return pp
}
