// Package day04 solves "Camp Cleanup".
package day04

import (
	_ "embed"
	"fmt"

	"github.com/samber/lo"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

// Range is an inclusive range of section IDs.
type Range struct {
	Start, End uint
}

func (r Range) Contains(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

func (r Range) Overlaps(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

type Assignment = parser.Pair[Range, Range]

var sectionRange = parser.WithTransform(
	parser.SeparatedPair(parser.Uint[uint](), parser.Char('-'), parser.Uint[uint]()),
	func(p parser.Pair[uint, uint]) (Range, error) {
		if p.First > p.Second {
			return Range{}, fmt.Errorf("reversed range %d-%d", p.First, p.Second)
		}
		return Range{Start: p.First, End: p.Second}, nil
	},
)

// Grammar reads one pair of assignments per line, e.g. "2-4,6-8".
var Grammar = parser.Many1(parser.Terminated(
	parser.SeparatedPair(sectionRange, parser.Char(','), sectionRange),
	parser.Newline(),
))

// PartOne counts pairs where one range fully contains the other.
func PartOne(pairs []Assignment) (int, error) {
	return lo.CountBy(pairs, func(p Assignment) bool {
		return p.First.Contains(p.Second) || p.Second.Contains(p.First)
	}), nil
}

// PartTwo counts pairs whose ranges overlap at all.
func PartTwo(pairs []Assignment) (int, error) {
	return lo.CountBy(pairs, func(p Assignment) bool {
		return p.First.Overlaps(p.Second)
	}), nil
}

var Puzzle = &puzzle.Puzzle[[]Assignment]{
	Number:       4,
	Name:         "Camp Cleanup",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      puzzle.Answer(PartTwo),
	ExampleInput: example,
	Want:         puzzle.Expected{PartOne: "2", PartTwo: "4"},
}
