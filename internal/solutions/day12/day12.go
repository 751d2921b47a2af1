// Package day12 solves "Hill Climbing Algorithm".
package day12

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

type Point struct {
	Row, Col int
}

// Map is the heightmap with the start and the best signal location.
type Map struct {
	Heights    [][]byte
	Start, End Point
}

var row = parser.TakeWhile1("elevation", func(r rune) bool {
	return 'a' <= r && r <= 'z' || r == 'S' || r == 'E'
})

// Grammar reads a rectangular grid of elevations with exactly one S and one E.
var Grammar = parser.WithTransform(
	parser.Many1(parser.Terminated(row, parser.Newline())),
	func(rows []string) (Map, error) {
		m := Map{Heights: make([][]byte, len(rows))}
		var starts, ends int
		for r, line := range rows {
			if len(line) != len(rows[0]) {
				return Map{}, fmt.Errorf("row %d has width %d, want %d", r+1, len(line), len(rows[0]))
			}
			m.Heights[r] = []byte(line)
			if c := strings.IndexByte(line, 'S'); c >= 0 {
				m.Start, m.Heights[r][c] = Point{r, c}, 'a'
				starts += strings.Count(line, "S")
			}
			if c := strings.IndexByte(line, 'E'); c >= 0 {
				m.End, m.Heights[r][c] = Point{r, c}, 'z'
				ends += strings.Count(line, "E")
			}
		}
		if starts != 1 || ends != 1 {
			return Map{}, fmt.Errorf("want one S and one E, got %d and %d", starts, ends)
		}
		return m, nil
	},
)

var errUnreachable = errors.New("no path")

// climb runs a breadth-first search from start and returns the number of steps to the
// first point accepted by done. canStep decides whether a move between heights is allowed.
func (m Map) climb(start Point, done func(Point) bool, canStep func(from, to byte) bool) (int, error) {
	dist := map[Point]int{start: 0}
	queue := []Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if done(p) {
			return dist[p], nil
		}
		for _, d := range []Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			n := Point{p.Row + d.Row, p.Col + d.Col}
			if n.Row < 0 || n.Row >= len(m.Heights) || n.Col < 0 || n.Col >= len(m.Heights[n.Row]) {
				continue
			}
			if _, ok := dist[n]; ok || !canStep(m.Heights[p.Row][p.Col], m.Heights[n.Row][n.Col]) {
				continue
			}
			dist[n] = dist[p] + 1
			queue = append(queue, n)
		}
	}
	return 0, errUnreachable
}

// PartOne returns the fewest steps from S to E.
func PartOne(m Map) (int, error) {
	return m.climb(m.Start,
		func(p Point) bool { return p == m.End },
		func(from, to byte) bool { return to <= from+1 })
}

// PartTwo returns the fewest steps from any square at elevation a to E.
// It searches downhill from E.
func PartTwo(m Map) (int, error) {
	return m.climb(m.End,
		func(p Point) bool { return m.Heights[p.Row][p.Col] == 'a' },
		func(from, to byte) bool { return from <= to+1 })
}

var Puzzle = &puzzle.Puzzle[Map]{
	Number:       12,
	Name:         "Hill Climbing Algorithm",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      puzzle.Answer(PartTwo),
	ExampleInput: example,
	Want:         puzzle.Expected{PartOne: "31", PartTwo: "29"},
}
