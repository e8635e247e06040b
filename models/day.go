package models

import (
	"fmt"
	"time"
)

// Day is a calendar date with no time of day, e.g. "2026-03-14".
//
// A Day is only meaningful relative to the location it was taken in, so
// always build it with [DayOf] and an explicit *time.Location.
type Day struct {
	Year  int
	Month time.Month
	Date  int
}

// DayOf truncates t to its calendar date in loc. A nil loc means UTC.
func DayOf(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Date: d}
}

// Equal reports whether both values denote the same calendar date.
func (d Day) Equal(o Day) bool {
	return d == o
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Date)
}
