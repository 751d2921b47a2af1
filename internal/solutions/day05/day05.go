// Package day05 solves "Supply Stacks".
package day05

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

// Move relocates Count crates from stack From to stack To. Stacks are numbered from 1.
type Move struct {
	Count, From, To int
}

// Plan is the starting arrangement and the rearrangement procedure.
type Plan struct {
	// Stacks hold crates bottom first.
	Stacks [][]rune
	Moves  []Move
}

const gap rune = 0

func isUpper(r rune) bool { return 'A' <= r && r <= 'Z' }

var (
	crate = parser.Delimited(
		parser.Char('['),
		parser.Verify(parser.AnyChar(), "uppercase letter", isUpper),
		parser.Char(']'),
	)

	cell     = parser.Alt(crate, parser.Value(gap, parser.Tag("   ")))
	crateRow = parser.Terminated(parser.SeparatedList1(parser.Char(' '), cell), parser.Newline())

	label    = parser.Delimited(parser.Char(' '), parser.Uint[uint](), parser.Char(' '))
	labelRow = parser.Terminated(parser.SeparatedList1(parser.Char(' '), label), parser.Newline())

	positive = uint(1)
	number   = parser.WithValidation(parser.Uint[uint](), parser.CreateRangeValidator(&positive, nil))
	moveLine = parser.Map(
		parser.Tuple3(
			parser.Preceded(parser.Tag("move "), number),
			parser.Preceded(parser.Tag(" from "), number),
			parser.Delimited(parser.Tag(" to "), number, parser.Newline()),
		),
		func(t parser.Triple[uint, uint, uint]) Move {
			return Move{Count: int(t.First), From: int(t.Second), To: int(t.Third)}
		},
	)

	drawing = parser.Tuple(parser.Many1(crateRow), labelRow)
)

// Grammar reads the crate drawing, a blank line and the move list.
var Grammar = parser.WithTransform(
	parser.SeparatedPair(drawing, parser.Newline(), parser.Many1(moveLine)),
	func(p parser.Pair[parser.Pair[[][]rune, []uint], []Move]) (Plan, error) {
		stacks, err := stack(p.First.First, p.First.Second)
		if err != nil {
			return Plan{}, err
		}
		return Plan{Stacks: stacks, Moves: p.Second}, nil
	},
)

func stack(rows [][]rune, labels []uint) ([][]rune, error) {
	for i, l := range labels {
		if int(l) != i+1 {
			return nil, fmt.Errorf("stack label %d at position %d", l, i+1)
		}
	}
	stacks := make([][]rune, len(labels))
	for i := len(rows) - 1; i >= 0; i-- {
		if len(rows[i]) > len(stacks) {
			return nil, fmt.Errorf("crate row %d has %d cells for %d stacks", i+1, len(rows[i]), len(stacks))
		}
		for j, c := range rows[i] {
			if c == gap {
				continue
			}
			if len(stacks[j]) != len(rows)-1-i {
				return nil, fmt.Errorf("crate %c in stack %d is floating", c, j+1)
			}
			stacks[j] = append(stacks[j], c)
		}
	}
	return stacks, nil
}

func rearrange(plan Plan, keepOrder bool) (string, error) {
	stacks := make([][]rune, len(plan.Stacks))
	for i, s := range plan.Stacks {
		stacks[i] = slices.Clone(s)
	}

	for n, m := range plan.Moves {
		if m.From > len(stacks) || m.To > len(stacks) {
			return "", fmt.Errorf("move %d: no such stack in %+v", n+1, m)
		}
		from, to := &stacks[m.From-1], &stacks[m.To-1]
		if len(*from) < m.Count {
			return "", fmt.Errorf("move %d: stack %d holds only %d crates", n+1, m.From, len(*from))
		}
		moved := slices.Clone((*from)[len(*from)-m.Count:])
		*from = (*from)[:len(*from)-m.Count]
		if !keepOrder {
			slices.Reverse(moved)
		}
		*to = append(*to, moved...)
	}

	tops := make([]rune, 0, len(stacks))
	for i, s := range stacks {
		if len(s) == 0 {
			return "", fmt.Errorf("stack %d is empty", i+1)
		}
		tops = append(tops, s[len(s)-1])
	}
	return string(tops), nil
}

// PartOne returns the top crates when the crane moves one crate at a time.
func PartOne(plan Plan) (string, error) {
	return rearrange(plan, false)
}

// PartTwo returns the top crates when the crane moves several crates at once.
func PartTwo(plan Plan) (string, error) {
	return rearrange(plan, true)
}

var Puzzle = &puzzle.Puzzle[Plan]{
	Number:       5,
	Name:         "Supply Stacks",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      puzzle.Answer(PartTwo),
	ExampleInput: example,
	Want:         puzzle.Expected{PartOne: "CMZ", PartTwo: "MCD"},
}
