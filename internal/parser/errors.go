package parser

import (
	"errors"
	"fmt"
	"strconv"
)

// Common errors for parse failures
var (
	// ErrNoMatch is returned when the expected lexical pattern is absent at the current position.
	ErrNoMatch = errors.New("no match")

	// ErrTrailingInput is returned by ParseAll when the grammar succeeded but left input unconsumed.
	ErrTrailingInput = errors.New("trailing input")
)

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// KindNoMatch covers every failure at a position, including input that ends too early.
	KindNoMatch ErrorKind = iota
	KindTrailingInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindNoMatch:
		return "NoMatch"
	case KindTrailingInput:
		return "TrailingInput"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	if k == KindTrailingInput {
		return ErrTrailingInput
	}
	return ErrNoMatch
}

// snippetLen limits how much of the remainder is shown in error messages.
const snippetLen = 24

// Error describes a parse failure and the input left at the point of failure.
type Error struct {
	Kind ErrorKind

	// Expected is a human readable description of what the parser wanted.
	Expected string

	// Remainder is the unconsumed input at the failure position.
	Remainder string

	// Cause is the error returned by a transform or validator.
	Cause error

	// Variants holds the error of every alternative when Alt fails.
	Variants []error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindTrailingInput:
		msg = fmt.Sprintf("input not fully parsed, remaining %s", snippet(e.Remainder))
	default:
		msg = fmt.Sprintf("expected %s at %s", e.Expected, snippet(e.Remainder))
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes the kind sentinel and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return append(errs, e.Variants...)
}

func snippet(s string) string {
	if s == "" {
		return "end of input"
	}
	if len(s) > snippetLen {
		return strconv.Quote(s[:snippetLen]) + "..."
	}
	return strconv.Quote(s)
}

func noMatch(expected, input string) *Error {
	return &Error{Kind: KindNoMatch, Expected: expected, Remainder: input}
}

func noMatchCause(expected, input string, cause error) *Error {
	return &Error{Kind: KindNoMatch, Expected: expected, Remainder: input, Cause: cause}
}

// expectation extracts the Expected text of a parse error, falling back to the error message.
func expectation(err error) string {
	var perr *Error
	if errors.As(err, &perr) && perr.Expected != "" {
		return perr.Expected
	}
	return err.Error()
}
