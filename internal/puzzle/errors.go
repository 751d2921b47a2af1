package puzzle

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is recorded for a part that has no solution yet.
var ErrNotImplemented = errors.New("not implemented")

// Error types for proper error handling with errors.Is/As
type (
	// UnknownDayError is returned when no puzzle is registered for a day.
	UnknownDayError struct {
		Day int
	}

	// ParseError is returned when a day's grammar rejects its input.
	ParseError struct {
		Day int
		Err error
	}

	// MismatchError is recorded when an example answer differs from the expected one.
	MismatchError struct {
		Day  int
		Part int
		Got  string
		Want string
	}
)

func (e *UnknownDayError) Error() string {
	return fmt.Sprintf("unknown day: %d", e.Day)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("day %d: could not parse input: %v", e.Day, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("day %d part %d: got %q, want %q", e.Day, e.Part, e.Got, e.Want)
}
