package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

// ExitCodeError represents an error that only carries an exit code without a message
type ExitCodeError struct {
	exitCode int
}

// Error implements the error interface
func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code: %d", e.exitCode)
}

// NewExitCodeError creates a new ExitCodeError
func NewExitCodeError(exitCode int) error {
	if exitCode == exitCodeSuccess {
		return nil
	}

	return &ExitCodeError{
		exitCode: exitCode,
	}
}

// GetExitCode returns the appropriate exit code based on the error type.
// It checks for ExitCodeError first and returns its exit code if found.
// Otherwise, it returns exitCodeSuccess for nil errors and exitCodeError for all other errors.
func GetExitCode(err error) int {
	if err == nil {
		return exitCodeSuccess
	}

	var exitCodeErr *ExitCodeError
	if errors.As(err, &exitCodeErr) {
		return exitCodeErr.exitCode
	}

	return exitCodeError
}

// silent reports whether err has already been shown to the user.
func silent(err error) bool {
	var exitCodeErr *ExitCodeError
	return errors.As(err, &exitCodeErr)
}

// describeError renders err for the terminal, adding hints for the errors a user can act on.
func describeError(err error, registry *puzzle.Registry) string {
	var unknownDay *puzzle.UnknownDayError
	if errors.As(err, &unknownDay) && registry != nil {
		days := lo.Map(registry.Days(), func(d int, _ int) string { return fmt.Sprint(d) })
		return fmt.Sprintf("%v (available: %s)", err, strings.Join(days, ", "))
	}

	var parseErr *parser.Error
	if errors.As(err, &parseErr) && errors.Is(err, parser.ErrTrailingInput) {
		return fmt.Sprintf("%v\nhint: the grammar stopped before the end of the input", err)
	}
	return err.Error()
}
