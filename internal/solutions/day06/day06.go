// Package day06 solves "Tuning Trouble".
package day06

import (
	_ "embed"
	"fmt"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

// Grammar reads the datastream buffer.
var Grammar = parser.Terminated(parser.Alpha1(), parser.Newline())

// marker returns the number of characters processed when the last n characters
// first become pairwise distinct.
func marker(stream string, n int) (int, error) {
	var counts [256]int
	duplicates := 0
	for i := 0; i < len(stream); i++ {
		counts[stream[i]]++
		if counts[stream[i]] == 2 {
			duplicates++
		}
		if i >= n {
			out := stream[i-n]
			counts[out]--
			if counts[out] == 1 {
				duplicates--
			}
		}
		if i >= n-1 && duplicates == 0 {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("no window of %d distinct characters", n)
}

// PartOne finds the end of the start-of-packet marker.
func PartOne(stream string) (int, error) {
	return marker(stream, 4)
}

// PartTwo finds the end of the start-of-message marker.
func PartTwo(stream string) (int, error) {
	return marker(stream, 14)
}

var Puzzle = &puzzle.Puzzle[string]{
	Number:       6,
	Name:         "Tuning Trouble",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      puzzle.Answer(PartTwo),
	ExampleInput: example,
	Want:         puzzle.Expected{PartOne: "7", PartTwo: "19"},
}
