// Package day01 solves "Calorie Counting".
package day01

import (
	_ "embed"
	"slices"

	"github.com/samber/lo"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

// Grammar reads blank-line separated groups of calorie counts, one group per elf.
var Grammar = parser.Terminated(
	parser.SeparatedList1(parser.Tag("\n\n"),
		parser.SeparatedList1(parser.Newline(), parser.Int[int]())),
	parser.Newline(),
)

func totals(elves [][]int) []int {
	return lo.Map(elves, func(items []int, _ int) int { return lo.Sum(items) })
}

// PartOne returns the calories carried by the elf carrying the most.
func PartOne(elves [][]int) (int, error) {
	return lo.Max(totals(elves)), nil
}

// PartTwo returns the calories carried by the top three elves.
func PartTwo(elves [][]int) (int, error) {
	sums := totals(elves)
	slices.Sort(sums)
	slices.Reverse(sums)
	return lo.Sum(sums[:min(3, len(sums))]), nil
}

var Puzzle = &puzzle.Puzzle[[][]int]{
	Number:       1,
	Name:         "Calorie Counting",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      puzzle.Answer(PartTwo),
	ExampleInput: example,
	Want:         puzzle.Expected{PartOne: "24000", PartTwo: "45000"},
}
