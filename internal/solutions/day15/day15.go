// Package day15 solves "Beacon Exclusion Zone".
package day15

import (
	_ "embed"
	"errors"
	"slices"

	"github.com/samber/lo"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

type Point struct {
	X, Y int
}

func (p Point) Distance(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type Sensor struct {
	Position Point
	Beacon   Point
}

// Radius is the distance covered by the sensor.
func (s Sensor) Radius() int {
	return s.Position.Distance(s.Beacon)
}

func coordinates(prefix string) parser.Parser[Point] {
	return parser.Map(
		parser.Tuple(
			parser.Preceded(parser.Tag(prefix+"x="), parser.Int[int]()),
			parser.Preceded(parser.Tag(", y="), parser.Int[int]()),
		),
		func(p parser.Pair[int, int]) Point { return Point{p.First, p.Second} },
	)
}

var sensor = parser.Map(
	parser.Tuple(coordinates("Sensor at "), coordinates(": closest beacon is at ")),
	func(p parser.Pair[Point, Point]) Sensor { return Sensor{Position: p.First, Beacon: p.Second} },
)

// Grammar reads one sensor report per line.
var Grammar = parser.Many1(parser.Terminated(sensor, parser.Newline()))

// The example has fewer sensors than any real input and uses a smaller search area.
const exampleSensors = 20

func scale(sensors []Sensor) (row, limit int) {
	if len(sensors) < exampleSensors {
		return 10, 20
	}
	return 2000000, 4000000
}

type interval struct {
	lo, hi int
}

// coverage returns the merged, sorted intervals of x covered on row y.
func coverage(sensors []Sensor, y int, buf []interval) []interval {
	buf = buf[:0]
	for _, s := range sensors {
		reach := s.Radius() - abs(s.Position.Y-y)
		if reach < 0 {
			continue
		}
		buf = append(buf, interval{s.Position.X - reach, s.Position.X + reach})
	}
	slices.SortFunc(buf, func(a, b interval) int { return a.lo - b.lo })

	merged := buf[:0]
	for _, iv := range buf {
		if n := len(merged); n > 0 && iv.lo <= merged[n-1].hi+1 {
			merged[n-1].hi = max(merged[n-1].hi, iv.hi)
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

func excluded(sensors []Sensor, y int) int {
	covered := lo.SumBy(coverage(sensors, y, nil), func(iv interval) int { return iv.hi - iv.lo + 1 })
	beacons := lo.Uniq(lo.FilterMap(sensors, func(s Sensor, _ int) (Point, bool) {
		return s.Beacon, s.Beacon.Y == y
	}))
	return covered - len(beacons)
}

// distress finds the only uncovered position with both coordinates in [0, limit].
func distress(sensors []Sensor, limit int) (Point, error) {
	var buf []interval
	for y := 0; y <= limit; y++ {
		buf = coverage(sensors, y, buf)
		x := 0
		for _, iv := range buf {
			if iv.lo > x {
				break
			}
			x = max(x, iv.hi+1)
		}
		if x <= limit {
			return Point{x, y}, nil
		}
	}
	return Point{}, errors.New("no uncovered position")
}

// PartOne counts the positions on the target row where no beacon can be present.
func PartOne(sensors []Sensor) (int, error) {
	row, _ := scale(sensors)
	return excluded(sensors, row), nil
}

// PartTwo returns the tuning frequency of the distress beacon.
func PartTwo(sensors []Sensor) (int, error) {
	_, limit := scale(sensors)
	p, err := distress(sensors, limit)
	if err != nil {
		return 0, err
	}
	return p.X*4000000 + p.Y, nil
}

var Puzzle = &puzzle.Puzzle[[]Sensor]{
	Number:       15,
	Name:         "Beacon Exclusion Zone",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      puzzle.Answer(PartTwo),
	ExampleInput: example,
	Want:         puzzle.Expected{PartOne: "26", PartTwo: "56000011"},
}
