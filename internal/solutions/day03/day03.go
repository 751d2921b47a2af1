// Package day03 solves "Rucksack Reorganization".
package day03

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

// Grammar reads one rucksack per line.
var Grammar = parser.Many1(parser.Terminated(parser.Alpha1(), parser.Newline()))

func priority(item rune) int {
	if 'a' <= item && item <= 'z' {
		return int(item-'a') + 1
	}
	return int(item-'A') + 27
}

// common returns the single item type present in every group.
func common(groups ...string) (rune, error) {
	shared := lo.Uniq([]rune(groups[0]))
	for _, g := range groups[1:] {
		shared = lo.Filter(shared, func(r rune, _ int) bool { return strings.ContainsRune(g, r) })
	}
	if len(shared) != 1 {
		return 0, fmt.Errorf("want exactly one shared item in %q, got %q", groups, string(shared))
	}
	return shared[0], nil
}

// PartOne sums the priorities of the item found in both compartments of each rucksack.
func PartOne(rucksacks []string) (int, error) {
	total := 0
	for _, r := range rucksacks {
		if len(r)%2 != 0 {
			return 0, fmt.Errorf("rucksack %q has an odd number of items", r)
		}
		item, err := common(r[:len(r)/2], r[len(r)/2:])
		if err != nil {
			return 0, err
		}
		total += priority(item)
	}
	return total, nil
}

// PartTwo sums the priorities of the badge shared by each group of three elves.
func PartTwo(rucksacks []string) (int, error) {
	if len(rucksacks)%3 != 0 {
		return 0, fmt.Errorf("%d rucksacks do not form groups of three", len(rucksacks))
	}
	total := 0
	for _, group := range lo.Chunk(rucksacks, 3) {
		badge, err := common(group...)
		if err != nil {
			return 0, err
		}
		total += priority(badge)
	}
	return total, nil
}

var Puzzle = &puzzle.Puzzle[[]string]{
	Number:       3,
	Name:         "Rucksack Reorganization",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      puzzle.Answer(PartTwo),
	ExampleInput: example,
	Want:         puzzle.Expected{PartOne: "157", PartTwo: "70"},
}
