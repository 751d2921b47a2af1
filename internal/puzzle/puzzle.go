// Package puzzle runs daily puzzle solutions: it parses an input once with the
// day's grammar and computes both parts, timing each.
package puzzle

import (
	"fmt"
	"time"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
)

// Part computes one answer from a parsed input.
type Part[T any] func(input T) (string, error)

// Answer adapts a typed part function into a Part by formatting its result with fmt.Sprint.
func Answer[T, R any](f func(T) (R, error)) Part[T] {
	return func(input T) (string, error) {
		r, err := f(input)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(r), nil
	}
}

// Expected holds the known answers for the example input.
type Expected struct {
	PartOne string
	PartTwo string
}

// Puzzle binds a day's grammar to its two parts.
type Puzzle[T any] struct {
	Number  int
	Name    string
	Grammar parser.Parser[T]
	PartOne Part[T]
	PartTwo Part[T]

	// ExampleInput is the small example from the puzzle statement.
	ExampleInput string
	Want         Expected
}

// Solver is the type-erased view of a Puzzle used by the registry and the CLI.
type Solver interface {
	Day() int
	Title() string
	Example() string

	// Solve parses input and computes both parts.
	// A parse failure aborts the whole day; a part failure is recorded on that part.
	Solve(input string) (*Report, error)

	// Check solves the example and compares it with the expected answers.
	Check() (*Report, error)

	// Dump returns the structured value produced by the grammar.
	Dump(input string) (any, error)
}

var _ Solver = (*Puzzle[int])(nil)

// Day implements Solver.
func (p *Puzzle[T]) Day() int { return p.Number }

// Title implements Solver.
func (p *Puzzle[T]) Title() string { return p.Name }

// Example implements Solver.
func (p *Puzzle[T]) Example() string { return p.ExampleInput }

// Parse applies the grammar to the whole input.
func (p *Puzzle[T]) Parse(input string) (T, error) {
	value, err := parser.ParseAll(p.Grammar, input)
	if err != nil {
		return value, &ParseError{Day: p.Number, Err: err}
	}
	return value, nil
}

// Dump implements Solver.
func (p *Puzzle[T]) Dump(input string) (any, error) {
	return p.Parse(input)
}

// Solve implements Solver.
func (p *Puzzle[T]) Solve(input string) (*Report, error) {
	start := time.Now()
	value, err := p.Parse(input)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Day:       p.Number,
		Title:     p.Name,
		ParseTime: time.Since(start),
	}
	for i, part := range []Part[T]{p.PartOne, p.PartTwo} {
		report.Parts = append(report.Parts, runPart(i+1, part, value))
	}
	return report, nil
}

// Check implements Solver.
func (p *Puzzle[T]) Check() (*Report, error) {
	report, err := p.Solve(p.ExampleInput)
	if err != nil {
		return nil, err
	}
	report.Example = true

	for i, want := range []string{p.Want.PartOne, p.Want.PartTwo} {
		result := &report.Parts[i]
		result.Want = want
		if result.Err == nil && result.Answer != want {
			result.Err = &MismatchError{Day: p.Number, Part: result.Part, Got: result.Answer, Want: want}
		}
	}
	return report, nil
}

func runPart[T any](number int, part Part[T], value T) PartResult {
	if part == nil {
		return PartResult{Part: number, Err: ErrNotImplemented}
	}

	start := time.Now()
	answer, err := part(value)
	return PartResult{
		Part:    number,
		Answer:  answer,
		Elapsed: time.Since(start),
		Err:     err,
	}
}
