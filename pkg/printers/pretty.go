package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/weekplan/pkg/item"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/week"
)

// MaxText is the widest an item's text is printed before it is cut.
const MaxText = 60

type PrettyPrint struct {
	ShowID bool
	// Today marks one day index as the current day; -1 for none.
	Today int
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("1f0c2a9b  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

func (pp *PrettyPrint) List(items ...item.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = fmt.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for i, it := range items {
		text := truncate.StringWithTail(it.Text, MaxText, "…")
		pos := fmt.Sprintf("%d.", i)
		if pp.ShowID {
			tbl.AddRow(y.Sprint(it.ShortID()), pos, text)
		} else {
			tbl.AddRow(pos, text)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Week prints the pool followed by the seven days.
func (pp *PrettyPrint) Week(s planner.State) {
	pp.TitleWithCount("Unscheduled", len(s.Unscheduled))
	pp.List(s.Unscheduled...)

	for i, d := range s.Days {
		title := fmt.Sprintf("%s %s", d.DayOfWeek, d.Date)
		if i == pp.Today {
			title += " (today)"
		}
		pp.TitleWithCount(title, len(d.Items))
		pp.List(d.Items...)
	}
}

// Day prints one bucket.
func (pp *PrettyPrint) Day(b week.Bucket) {
	pp.TitleWithCount(fmt.Sprintf("%s %s", b.DayOfWeek, b.Date), len(b.Items))
	pp.List(b.Items...)
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
