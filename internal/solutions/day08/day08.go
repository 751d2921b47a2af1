// Package day08 solves "Treetop Tree House".
package day08

import (
	_ "embed"
	"fmt"

	"github.com/samber/lo"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

// Grid holds tree heights by row.
type Grid [][]int

var row = parser.Map(parser.Digit1(), func(digits string) []int {
	return lo.Map([]byte(digits), func(b byte, _ int) int { return int(b - '0') })
})

// Grammar reads a rectangular grid of single-digit heights.
var Grammar = parser.WithTransform(
	parser.Many1(parser.Terminated(row, parser.Newline())),
	func(rows [][]int) (Grid, error) {
		for i, r := range rows {
			if len(r) != len(rows[0]) {
				return nil, fmt.Errorf("row %d has %d trees, want %d", i+1, len(r), len(rows[0]))
			}
		}
		return Grid(rows), nil
	},
)

var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// look walks from (y, x) in direction d and reports how many trees are seen and
// whether the view reaches the edge.
func (g Grid) look(y, x int, d [2]int) (int, bool) {
	height := g[y][x]
	seen := 0
	for y, x = y+d[0], x+d[1]; y >= 0 && y < len(g) && x >= 0 && x < len(g[y]); y, x = y+d[0], x+d[1] {
		seen++
		if g[y][x] >= height {
			return seen, false
		}
	}
	return seen, true
}

// PartOne counts trees visible from outside the grid.
func PartOne(g Grid) (int, error) {
	visible := 0
	for y := range g {
		for x := range g[y] {
			if lo.SomeBy(directions[:], func(d [2]int) bool {
				_, edge := g.look(y, x, d)
				return edge
			}) {
				visible++
			}
		}
	}
	return visible, nil
}

// PartTwo returns the highest scenic score.
func PartTwo(g Grid) (int, error) {
	best := 0
	for y := range g {
		for x := range g[y] {
			score := 1
			for _, d := range directions {
				seen, _ := g.look(y, x, d)
				score *= seen
			}
			best = max(best, score)
		}
	}
	return best, nil
}

var Puzzle = &puzzle.Puzzle[Grid]{
	Number:       8,
	Name:         "Treetop Tree House",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      puzzle.Answer(PartTwo),
	ExampleInput: example,
	Want:         puzzle.Expected{PartOne: "21", PartTwo: "8"},
}
