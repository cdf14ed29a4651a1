package calendar

import (
	"fmt"
	"time"
)

// Week is an ISO 8601 week: Monday through Sunday, numbered within its ISO
// year. The ISO year may differ from the calendar year of the days it holds.
type Week struct {
	year int
	week int
}

// NewWeek validates that (isoYear, week) names a representable week.
func NewWeek(isoYear, week int) (Week, error) {
	first, err := FromISOWeekday(isoYear, week, time.Monday)
	if err != nil {
		return Week{}, err
	}
	return first.ISOWeek(), nil
}

// Year returns the ISO year.
func (w Week) Year() int { return w.year }

// Number returns the week number, 1..53.
func (w Week) Number() int { return w.week }

// FirstDate returns the Monday of w.
func (w Week) FirstDate() (Date, error) {
	return FromISOWeekday(w.year, w.week, time.Monday)
}

// LastDate returns the Sunday of w.
func (w Week) LastDate() (Date, error) {
	return FromISOWeekday(w.year, w.week, time.Sunday)
}

// Next returns the following week. It is derived from the dates, never by
// incrementing the week number, so 52/53 week years and ISO year rollover
// come out right.
func (w Week) Next() (Week, error) {
	first, err := w.FirstDate()
	if err != nil {
		return Week{}, err
	}
	next, err := first.AddWeeks(1)
	if err != nil {
		return Week{}, err
	}
	return next.ISOWeek(), nil
}

// Days returns Monday through Sunday of w.
func (w Week) Days() ([7]Date, error) {
	var days [7]Date
	d, err := w.FirstDate()
	if err != nil {
		return days, err
	}
	for i := range days {
		days[i] = d
		if i == len(days)-1 {
			break
		}
		if d, err = d.NextDay(); err != nil {
			return days, err
		}
	}
	return days, nil
}

// Contains reports whether d falls in w.
func (w Week) Contains(d Date) bool {
	return d.ISOWeek() == w
}

func (w Week) String() string {
	return fmt.Sprintf("%04d-W%02d", w.year, w.week)
}
