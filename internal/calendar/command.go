package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Command is a resolved rendering intent: a concrete run of months.
type Command interface {
	Months() ([]Month, error)
}

// Window renders Before months, the Center month and After months.
type Window struct {
	Center Month
	Before int
	After  int
}

// Months returns the contiguous run of months around Center.
func (w Window) Months() ([]Month, error) {
	if w.Before < 0 || w.After < 0 {
		return nil, errors.New("month counts must not be negative")
	}
	if w.Before > monthSpan || w.After > monthSpan || w.Before+w.After > monthSpan {
		return nil, overflow("window", "%v -%d +%d", w.Center, w.Before, w.After)
	}
	m, err := w.Center.Add(-w.Before)
	if err != nil {
		return nil, err
	}
	months := make([]Month, 0, w.Before+w.After+1)
	months = append(months, m)
	for range w.Before + w.After {
		if m, err = m.Next(); err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, nil
}

func (w Window) String() string {
	return fmt.Sprintf("%v -%d +%d", w.Center, w.Before, w.After)
}

// Year renders January through December of a single year.
type Year struct {
	Year int
}

// Months returns the twelve months of y.
func (y Year) Months() ([]Month, error) {
	months := make([]Month, 0, 12)
	for m := 1; m <= 12; m++ {
		month, err := NewMonth(y.Year, m)
		if err != nil {
			return nil, err
		}
		months = append(months, month)
	}
	return months, nil
}

func (y Year) String() string {
	return fmt.Sprintf("%d", y.Year)
}

// Request captures the parsed positional arguments and the resolved
// before/after counts.
type Request struct {
	Year     *int
	Month    *int
	FullYear bool
	Before   int
	After    int
}

// HasArgs reports whether any positional argument was supplied.
func (r Request) HasArgs() bool {
	return r.Year != nil || r.Month != nil
}

// Command converts r into a Command, using today when no year was given.
// A month without a year is a caller bug and panics.
func (r Request) Command(today Date) (Command, error) {
	switch {
	case r.Year == nil && r.Month != nil:
		panic("calendar: month requested without a year")
	case r.Year != nil && r.Month == nil:
		return Year{Year: *r.Year}, nil
	case r.Year != nil:
		center, err := NewMonth(*r.Year, *r.Month)
		if err != nil {
			return nil, err
		}
		return Window{Center: center, Before: r.Before, After: r.After}, nil
	case r.FullYear:
		return Year{Year: today.Year()}, nil
	}
	return Window{Center: MonthOf(today), Before: r.Before, After: r.After}, nil
}

// Today resolves the current date from now, once per run.
func Today(now func() time.Time) Date {
	return DateOf(now())
}
