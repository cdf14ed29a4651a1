package calendar

import (
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/datetime"
)

// Representable year range. Arithmetic that would produce a date outside
// [MinYear-01-01, MaxYear-12-31] fails with an *OverflowError.
const (
	MinYear = -262144
	MaxYear = 262143
)

// Bounds on any day or month offset between two representable dates.
const (
	maxSpanDays = (MaxYear - MinYear + 1) * 366
	monthSpan   = (MaxYear - MinYear + 1) * 12
)

// Date is a proleptic Gregorian calendar date. The zero value is not a
// valid date; use NewDate or DateOf.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate validates year, month and day.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, &InvalidMonthError{Value: strconv.Itoa(int(month))}
	}
	if year < MinYear || year > MaxYear {
		return Date{}, overflow("date", "%d-%02d-%02d", year, int(month), day)
	}
	if day < 1 || day > datetime.DaysInMonth(year, datetime.Month(month)) {
		return Date{}, fmt.Errorf("invalid day %d for %d-%02d", day, year, int(month))
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustDate is like NewDate but panics on error. Intended for tests and
// constants.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) Year() int { return d.year }

func (d Date) Month() time.Month { return d.month }

func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.time().Weekday()
}

// NextDay returns the date following d.
func (d Date) NextDay() (Date, error) {
	if d.day < datetime.DaysInMonth(d.year, datetime.Month(d.month)) {
		d.day++
		return d, nil
	}
	if d.month < time.December {
		return Date{year: d.year, month: d.month + 1, day: 1}, nil
	}
	if d.year >= MaxYear {
		return Date{}, overflow("next day", "%v", d)
	}
	return Date{year: d.year + 1, month: time.January, day: 1}, nil
}

// AddDays returns d shifted by n days, which may be negative.
func (d Date) AddDays(n int) (Date, error) {
	if n > maxSpanDays || n < -maxSpanDays {
		return Date{}, overflow("add days", "%v%+d", d, n)
	}
	return fromTime(d.time().AddDate(0, 0, n), "add days")
}

// AddWeeks returns d shifted by n weeks, which may be negative.
func (d Date) AddWeeks(n int) (Date, error) {
	if n > maxSpanDays/7 || n < -maxSpanDays/7 {
		return Date{}, overflow("add weeks", "%v%+dw", d, n)
	}
	next, err := d.AddDays(7 * n)
	if err != nil {
		return Date{}, overflow("add weeks", "%v%+dw", d, n)
	}
	return next, nil
}

// ISOWeek returns the ISO 8601 week containing d.
func (d Date) ISOWeek() Week {
	y, w := d.time().ISOWeek()
	return Week{year: y, week: w}
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// FromISOWeekday returns the date of weekday wd in ISO week (isoYear, week).
func FromISOWeekday(isoYear, week int, wd time.Weekday) (Date, error) {
	if isoYear < MinYear-1 || isoYear > MaxYear+1 {
		return Date{}, overflow("iso week", "%04d-W%02d", isoYear, week)
	}
	if week < 1 || week > weeksInYear(isoYear) {
		return Date{}, fmt.Errorf("iso year %d has no week %d", isoYear, week)
	}
	// January 4th is always in week 1.
	jan4 := time.Date(isoYear, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, 1-isoWeekday(jan4.Weekday()))
	t := monday.AddDate(0, 0, (week-1)*7+isoWeekday(wd)-1)
	return fromTime(t, "iso week")
}

func weeksInYear(isoYear int) int {
	// December 28th is always in the last week of its ISO year.
	_, w := time.Date(isoYear, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// isoWeekday maps Monday..Sunday to 1..7.
func isoWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

func (d Date) time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func fromTime(t time.Time, op string) (Date, error) {
	y, m, day := t.Date()
	if y < MinYear || y > MaxYear {
		return Date{}, overflow(op, "%04d-%02d-%02d", y, int(m), day)
	}
	return Date{year: y, month: m, day: day}, nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
