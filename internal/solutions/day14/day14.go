// Package day14 solves "Regolith Reservoir".
package day14

import (
	_ "embed"
	"fmt"

	"github.com/samber/lo"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

type Point struct {
	X, Y int
}

// Path is a polyline of rock made of horizontal and vertical segments.
type Path []Point

var point = parser.Map(
	parser.SeparatedPair(parser.Int[int](), parser.Char(','), parser.Int[int]()),
	func(p parser.Pair[int, int]) Point { return Point{p.First, p.Second} },
)

var path = parser.WithTransform(
	parser.SeparatedList1(parser.Tag(" -> "), point),
	func(points []Point) (Path, error) {
		for i := 1; i < len(points); i++ {
			a, b := points[i-1], points[i]
			if a.X != b.X && a.Y != b.Y {
				return nil, fmt.Errorf("diagonal segment %v -> %v", a, b)
			}
		}
		return Path(points), nil
	},
)

// Grammar reads one rock path per line.
var Grammar = parser.Many1(parser.Terminated(path, parser.Newline()))

var source = Point{500, 0}

type cave struct {
	blocked map[Point]bool
	depth   int
}

func newCave(paths []Path) *cave {
	c := &cave{blocked: make(map[Point]bool)}
	for _, p := range paths {
		for i := range p {
			a, b := p[i], p[lo.Clamp(i+1, 0, len(p)-1)]
			for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
				for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
					c.blocked[Point{x, y}] = true
					c.depth = max(c.depth, y)
				}
			}
		}
	}
	return c
}

// drop lets one unit of sand fall from the source and returns where it rests.
// With a floor the sand always rests; without one it reports false once sand
// passes the lowest rock.
func (c *cave) drop(floor bool) (Point, bool) {
	p := source
	for {
		if !floor && p.Y > c.depth {
			return p, false
		}
		if floor && p.Y == c.depth+1 {
			return p, true
		}
		moved := false
		for _, dx := range []int{0, -1, 1} {
			next := Point{p.X + dx, p.Y + 1}
			if !c.blocked[next] {
				p, moved = next, true
				break
			}
		}
		if !moved {
			return p, true
		}
	}
}

func (c *cave) fill(floor bool) int {
	units := 0
	for !c.blocked[source] {
		p, rests := c.drop(floor)
		if !rests {
			break
		}
		c.blocked[p] = true
		units++
	}
	return units
}

// PartOne counts the units of sand that come to rest before sand flows into the abyss.
func PartOne(paths []Path) (int, error) {
	return newCave(paths).fill(false), nil
}

// PartTwo counts the units of sand that come to rest on an infinite floor two
// below the lowest rock until the source is blocked.
func PartTwo(paths []Path) (int, error) {
	return newCave(paths).fill(true), nil
}

var Puzzle = &puzzle.Puzzle[[]Path]{
	Number:       14,
	Name:         "Regolith Reservoir",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      puzzle.Answer(PartTwo),
	ExampleInput: example,
	Want:         puzzle.Expected{PartOne: "24", PartTwo: "93"},
}
