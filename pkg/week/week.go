// Package week computes ISO weeks and the seven day buckets of a planner week.
package week

import (
	"fmt"
	"time"

	"tableflip.dev/weekplan/pkg/item"
)

// Days is the number of buckets in a week.
const Days = 7

const (
	layoutDate = "01/02"
	layoutDay  = "Mon"
)

// ID is an ISO 8601 week: weeks start on Monday and week 1 holds the year's
// first Thursday.
type ID struct {
	Year int `json:"year"`
	Week int `json:"week"`
}

// Of returns the ISO week containing t.
func Of(t time.Time) ID {
	y, w := t.ISOWeek()
	return ID{Year: y, Week: w}
}

func (id ID) String() string {
	return fmt.Sprintf("%d-W%02d", id.Year, id.Week)
}

// Bucket holds the items scheduled on one calendar day.
type Bucket struct {
	Date      string      `json:"date"`
	DayOfWeek string      `json:"dayOfWeek"`
	Items     []item.Item `json:"todos"`
}

// Monday returns midnight of the Monday starting t's week, in t's location.
func Monday(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// New returns empty buckets for the week containing t, Monday first.
func New(t time.Time) [Days]Bucket {
	var out [Days]Bucket
	start := Monday(t)
	for i := range out {
		day := start.AddDate(0, 0, i)
		out[i] = Bucket{
			Date:      day.Format(layoutDate),
			DayOfWeek: day.Format(layoutDay),
			Items:     []item.Item{},
		}
	}
	return out
}

// Index maps a weekday name, abbreviation or number to a bucket index.
// Numbers run Monday=1 ... Sunday=7.
func Index(s string) (int, error) {
	switch s {
	case "1", "mon", "Mon", "monday", "Monday":
		return 0, nil
	case "2", "tue", "Tue", "tuesday", "Tuesday":
		return 1, nil
	case "3", "wed", "Wed", "wednesday", "Wednesday":
		return 2, nil
	case "4", "thu", "Thu", "thursday", "Thursday":
		return 3, nil
	case "5", "fri", "Fri", "friday", "Friday":
		return 4, nil
	case "6", "sat", "Sat", "saturday", "Saturday":
		return 5, nil
	case "7", "sun", "Sun", "sunday", "Sunday":
		return 6, nil
	}
	return -1, fmt.Errorf("week: unknown day %q", s)
}
