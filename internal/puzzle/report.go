package puzzle

import (
	"time"
)

// PartResult is the outcome of one part of a day.
type PartResult struct {
	Part    int
	Answer  string
	Elapsed time.Duration

	// Want is the expected answer; it is only set when checking the example.
	Want string

	Err error
}

// Report collects the results of one day.
type Report struct {
	Day       int
	Title     string
	Example   bool
	ParseTime time.Duration
	Parts     []PartResult
}

// Failed reports whether any part returned an error or a mismatching answer.
func (r *Report) Failed() bool {
	for _, p := range r.Parts {
		if p.Err != nil {
			return true
		}
	}
	return false
}
