package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestWeekRoundTrip(t *testing.T) {
	d := MustDate(2015, time.December, 1)
	end := MustDate(2027, time.February, 1)
	for d.Before(end) {
		w := d.ISOWeek()
		first, err := w.FirstDate()
		if err != nil {
			t.Fatalf("FirstDate(%v): %v", w, err)
		}
		if got := first.ISOWeek(); got != w {
			t.Fatalf("round trip of %v gave %v", w, got)
		}
		if first.Weekday() != time.Monday {
			t.Fatalf("FirstDate(%v)=%v is a %v", w, first, first.Weekday())
		}
		if !w.Contains(d) {
			t.Fatalf("%v should contain %v", w, d)
		}
		var err2 error
		if d, err2 = d.NextDay(); err2 != nil {
			t.Fatal(err2)
		}
	}
}

func TestWeekNextHandlesWeek53(t *testing.T) {
	w, err := NewWeek(2020, 53)
	if err != nil {
		t.Fatalf("NewWeek: %v", err)
	}
	next, err := w.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if next.Year() != 2021 || next.Number() != 1 {
		t.Fatalf("week after 2020-W53 should be 2021-W01, got %v", next)
	}
	w, _ = NewWeek(2021, 52)
	next, _ = w.Next()
	if next.Year() != 2022 || next.Number() != 1 {
		t.Fatalf("week after 2021-W52 should be 2022-W01, got %v", next)
	}
}

func TestWeekDays(t *testing.T) {
	w := MustDate(2024, time.January, 29).ISOWeek()
	days, err := w.Days()
	if err != nil {
		t.Fatalf("Days: %v", err)
	}
	want := []int{29, 30, 31, 1, 2, 3, 4}
	for i, d := range days {
		if d.Day() != want[i] {
			t.Fatalf("day %d = %v want %d", i, d, want[i])
		}
	}
	if days[6].Weekday() != time.Sunday {
		t.Fatalf("last day should be Sunday, got %v", days[6].Weekday())
	}
}

func TestMonthWeekCounts(t *testing.T) {
	tests := []struct {
		year, month int
		want        int
	}{
		{2021, 2, 4},
		{2024, 1, 5},
		{2021, 8, 6},
		{2021, 1, 5},
	}
	for _, tt := range tests {
		m, err := NewMonth(tt.year, tt.month)
		if err != nil {
			t.Fatalf("NewMonth: %v", err)
		}
		weeks, err := m.Weeks()
		if err != nil {
			t.Fatalf("Weeks(%v): %v", m, err)
		}
		if len(weeks) != tt.want {
			t.Fatalf("%v spans %d weeks, want %d", m, len(weeks), tt.want)
		}
	}
}

func TestStraddleWeekBelongsToBothMonths(t *testing.T) {
	w, _ := NewWeek(2020, 53)
	dec := Month{Year: 2020, Month: time.December}
	jan := Month{Year: 2021, Month: time.January}
	if !dec.ContainsWeek(w) || !jan.ContainsWeek(w) {
		t.Fatalf("2020-W53 should be in December 2020 and January 2021")
	}
	feb := Month{Year: 2021, Month: time.February}
	if feb.ContainsWeek(w) {
		t.Fatalf("2020-W53 should not be in February 2021")
	}
	first, err := jan.FirstWeek()
	if err != nil || first != w {
		t.Fatalf("January 2021 should start in 2020-W53, got %v (%v)", first, err)
	}
}

func TestMonthPreviousNextRoundTrip(t *testing.T) {
	for year := 1999; year <= 2001; year++ {
		for month := 1; month <= 12; month++ {
			m, err := NewMonth(year, month)
			if err != nil {
				t.Fatal(err)
			}
			prev, err := m.Previous()
			if err != nil {
				t.Fatalf("Previous(%v): %v", m, err)
			}
			if back, err := prev.Next(); err != nil || back != m {
				t.Fatalf("%v.Previous().Next() = %v, %v", m, back, err)
			}
			next, err := m.Next()
			if err != nil {
				t.Fatalf("Next(%v): %v", m, err)
			}
			if back, err := next.Previous(); err != nil || back != m {
				t.Fatalf("%v.Next().Previous() = %v, %v", m, back, err)
			}
		}
	}
}

func TestMonthBoundaries(t *testing.T) {
	first := Month{Year: MinYear, Month: time.January}
	if _, err := first.Previous(); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected overflow before %v, got %v", first, err)
	}
	last := Month{Year: MaxYear, Month: time.December}
	if _, err := last.Next(); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected overflow after %v, got %v", last, err)
	}
	if _, err := NewMonth(2024, 13); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("expected invalid month, got %v", err)
	}
	if _, err := NewMonth(9999999999, 1); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
}

func TestMonthAdd(t *testing.T) {
	m := Month{Year: 2023, Month: time.June}
	tests := []struct {
		n    int
		want Month
	}{
		{0, m},
		{-6, Month{Year: 2022, Month: time.December}},
		{7, Month{Year: 2024, Month: time.January}},
		{-18, Month{Year: 2021, Month: time.December}},
	}
	for _, tt := range tests {
		got, err := m.Add(tt.n)
		if err != nil || got != tt.want {
			t.Fatalf("%v.Add(%d)=%v, %v want %v", m, tt.n, got, err, tt.want)
		}
	}
	neg := Month{Year: -1, Month: time.January}
	if got, _ := neg.Add(-1); got != (Month{Year: -2, Month: time.December}) {
		t.Fatalf("(-1-01).Add(-1)=%v", got)
	}
}

func TestUnnormalizedMonthIsRejected(t *testing.T) {
	for _, m := range []Month{{Year: 2024, Month: 0}, {Year: 2024, Month: 13}} {
		if _, err := m.Previous(); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("%v.Previous() err=%v want invalid month", m, err)
		}
		if _, err := m.Next(); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("%v.Next() err=%v want invalid month", m, err)
		}
		if _, err := m.Add(1); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("%v.Add(1) err=%v want invalid month", m, err)
		}
		if _, err := m.FirstDate(); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("%v.FirstDate() err=%v want invalid month", m, err)
		}
	}
}
