package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow indicates calendar arithmetic left the representable range.
	ErrOverflow = errors.New("date out of representable range")
	// ErrInvalidMonth indicates the month is not in the 1..12 range.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// OverflowError reports the operation whose result fell outside
// [MinYear, MaxYear].
type OverflowError struct {
	Op    string
	Value string
}

func (e *OverflowError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Op, ErrOverflow)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Value, ErrOverflow)
}

// Is makes errors.Is(err, ErrOverflow) succeed.
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

func overflow(op string, format string, args ...any) error {
	return &OverflowError{Op: op, Value: fmt.Sprintf(format, args...)}
}

// InvalidMonthError carries the rejected month value.
type InvalidMonthError struct {
	Value string
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month %q: %v", e.Value, ErrInvalidMonth)
}

// Is makes errors.Is(err, ErrInvalidMonth) succeed.
func (e *InvalidMonthError) Is(target error) bool {
	return target == ErrInvalidMonth
}
