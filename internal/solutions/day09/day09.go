// Package day09 solves "Rope Bridge".
package day09

import (
	_ "embed"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

var (
	Up    = Point{0, 1}
	Down  = Point{0, -1}
	Left  = Point{-1, 0}
	Right = Point{1, 0}
)

// Motion moves the head Steps times in Direction.
type Motion struct {
	Direction Point
	Steps     int
}

var direction = parser.Enum(
	parser.Case[Point]{Tag: "U", Value: Up},
	parser.Case[Point]{Tag: "D", Value: Down},
	parser.Case[Point]{Tag: "L", Value: Left},
	parser.Case[Point]{Tag: "R", Value: Right},
)

// Grammar reads one motion per line, e.g. "R 4".
var Grammar = parser.Many1(parser.Terminated(
	parser.Map(
		parser.SeparatedPair(direction, parser.Char(' '), parser.Uint[uint]()),
		func(p parser.Pair[Point, uint]) Motion { return Motion{Direction: p.First, Steps: int(p.Second)} },
	),
	parser.Newline(),
))

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// follow moves knot one step towards leader unless they already touch.
func follow(knot, leader Point) Point {
	dx, dy := leader.X-knot.X, leader.Y-knot.Y
	if max(abs(dx), abs(dy)) <= 1 {
		return knot
	}
	return Point{knot.X + sign(dx), knot.Y + sign(dy)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// simulate returns the number of positions visited by the tail of a rope of n knots.
func simulate(motions []Motion, n int) int {
	rope := make([]Point, n)
	visited := map[Point]struct{}{rope[n-1]: {}}
	for _, m := range motions {
		for range m.Steps {
			rope[0] = rope[0].Add(m.Direction)
			for i := 1; i < n; i++ {
				rope[i] = follow(rope[i], rope[i-1])
			}
			visited[rope[n-1]] = struct{}{}
		}
	}
	return len(visited)
}

// PartOne counts tail positions for a rope of two knots.
func PartOne(motions []Motion) (int, error) {
	return simulate(motions, 2), nil
}

// PartTwo counts tail positions for a rope of ten knots.
func PartTwo(motions []Motion) (int, error) {
	return simulate(motions, 10), nil
}

var Puzzle = &puzzle.Puzzle[[]Motion]{
	Number:       9,
	Name:         "Rope Bridge",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      puzzle.Answer(PartTwo),
	ExampleInput: example,
	Want:         puzzle.Expected{PartOne: "13", PartTwo: "1"},
}
