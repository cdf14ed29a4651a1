package calendar

import (
	"fmt"
	"strconv"
	"time"
)

// Month is a calendar month of a given year. Values built by hand rather
// than with NewMonth or MonthOf are checked by the methods that derive new
// months, which fail with an *InvalidMonthError when Month is outside 1..12.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth validates month and the year range.
func NewMonth(year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, &InvalidMonthError{Value: strconv.Itoa(month)}
	}
	if year < MinYear || year > MaxYear {
		return Month{}, overflow("month", "%d-%02d", year, month)
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

// MonthOf returns the month containing d.
func MonthOf(d Date) Month {
	return Month{Year: d.Year(), Month: d.Month()}
}

// FirstDate returns the 1st of m.
func (m Month) FirstDate() (Date, error) {
	return NewDate(m.Year, m.Month, 1)
}

// FirstWeek returns the ISO week containing the 1st of m.
func (m Month) FirstWeek() (Week, error) {
	first, err := m.FirstDate()
	if err != nil {
		return Week{}, err
	}
	return first.ISOWeek(), nil
}

// ContainsDate reports whether d falls in m.
func (m Month) ContainsDate(d Date) bool {
	return d.Year() == m.Year && d.Month() == m.Month
}

// ContainsWeek reports whether the Monday or the Sunday of w falls in m. A
// week straddling two months is therefore contained in both.
func (m Month) ContainsWeek(w Week) bool {
	if first, err := w.FirstDate(); err == nil && m.ContainsDate(first) {
		return true
	}
	if last, err := w.LastDate(); err == nil && m.ContainsDate(last) {
		return true
	}
	return false
}

// Weeks returns the ISO weeks that overlap m, in order.
func (m Month) Weeks() ([]Week, error) {
	w, err := m.FirstWeek()
	if err != nil {
		return nil, err
	}
	weeks := make([]Week, 0, 6)
	for m.ContainsWeek(w) {
		weeks = append(weeks, w)
		if w, err = w.Next(); err != nil {
			return nil, err
		}
	}
	return weeks, nil
}

func (m Month) validate() error {
	if m.Month < time.January || m.Month > time.December {
		return &InvalidMonthError{Value: strconv.Itoa(int(m.Month))}
	}
	return nil
}

// Previous returns the preceding month.
func (m Month) Previous() (Month, error) {
	if err := m.validate(); err != nil {
		return Month{}, err
	}
	if m.Month > time.January {
		return Month{Year: m.Year, Month: m.Month - 1}, nil
	}
	if m.Year <= MinYear {
		return Month{}, overflow("previous month", "%v", m)
	}
	return Month{Year: m.Year - 1, Month: time.December}, nil
}

// Next returns the following month.
func (m Month) Next() (Month, error) {
	if err := m.validate(); err != nil {
		return Month{}, err
	}
	if m.Month < time.December {
		return Month{Year: m.Year, Month: m.Month + 1}, nil
	}
	if m.Year >= MaxYear {
		return Month{}, overflow("next month", "%v", m)
	}
	return Month{Year: m.Year + 1, Month: time.January}, nil
}

// Add returns m shifted by n months, which may be negative.
func (m Month) Add(n int) (Month, error) {
	if err := m.validate(); err != nil {
		return Month{}, err
	}
	if n > monthSpan || n < -monthSpan {
		return Month{}, overflow("add months", "%v%+d", m, n)
	}
	idx := m.Year*12 + int(m.Month) - 1 + n
	year, month := floorDiv(idx, 12), idx-floorDiv(idx, 12)*12
	if year < MinYear || year > MaxYear {
		return Month{}, overflow("add months", "%v%+d", m, n)
	}
	return Month{Year: year, Month: time.Month(month + 1)}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
