// Package demo fills the planner with sample items.
package demo

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/weekplan/pkg/app"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/printers"
)

type sample struct {
	Text string
	// Day is planner.Pool or a day index.
	Day int
}

var samples = []sample{
	{"plan the sprint", 0},
	{"1:1 with Sam", 0},
	{"review design doc", 1},
	{"dentist 3pm", 2},
	{"ship the release", 3},
	{"team lunch", 4},
	{"long run", 5},
	{"call parents", 6},
	{"renew passport", planner.Pool},
	{"fix the bike", planner.Pool},
	{"read chapter 4", planner.Pool},
}

// StaticDemo returns the sample week for now.
func StaticDemo(now time.Time) planner.State {
	s := planner.New(now)
	for _, smp := range samples {
		st, it, ok := s.AddItem(smp.Text)
		if !ok {
			continue
		}
		s = st
		if smp.Day != planner.Pool {
			s = s.MoveToDay(it.ID, smp.Day, it)
		}
	}
	return s
}

// Demo adds the sample items to whatever is already stored.
type Demo struct {
	Output printers.Output

	Service *app.Service
}

func (d *Demo) Do(_ context.Context) error {
	if d.Service == nil {
		return errors.New("can not seed, no persistence")
	}
	c, err := d.Service.Open()
	if err != nil {
		return err
	}
	now := time.Now()
	if d.Service.Now != nil {
		now = d.Service.Now()
	}
	sampleState := StaticDemo(now)
	st, _ := c.Apply(func(s planner.State) planner.State {
		for _, it := range sampleState.Unscheduled {
			s = s.MoveToUnscheduled(it.ID, it)
		}
		for day, b := range sampleState.Days {
			for _, it := range b.Items {
				s = s.MoveToDay(it.ID, day, it)
			}
		}
		return s
	})
	return d.Output.Print(st)
}
