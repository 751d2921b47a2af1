// Package day13 solves "Distress Signal".
package day13

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

// Packet is an integer or a list of packets.
type Packet struct {
	Value  int
	List   []Packet
	IsList bool
}

func Int(v int) Packet { return Packet{Value: v} }

func List(items ...Packet) Packet {
	if items == nil {
		items = []Packet{}
	}
	return Packet{List: items, IsList: true}
}

func (p Packet) String() string {
	if !p.IsList {
		return strconv.Itoa(p.Value)
	}
	return "[" + strings.Join(lo.Map(p.List, func(q Packet, _ int) string { return q.String() }), ",") + "]"
}

// Compare orders packets: integers numerically, lists element by element, and an
// integer against a list as if it were a one-element list.
func Compare(a, b Packet) int {
	switch {
	case !a.IsList && !b.IsList:
		return a.Value - b.Value
	case !a.IsList:
		return Compare(List(a), b)
	case !b.IsList:
		return Compare(a, List(b))
	}
	for i := range min(len(a.List), len(b.List)) {
		if c := Compare(a.List[i], b.List[i]); c != 0 {
			return c
		}
	}
	return len(a.List) - len(b.List)
}

func packet() parser.Parser[Packet] {
	return parser.Alt(
		parser.Map(parser.Uint[uint](), func(v uint) Packet { return Int(int(v)) }),
		parser.Map(
			parser.Delimited(parser.Char('['), parser.SeparatedList0(parser.Char(','), parser.Lazy(packet)), parser.Char(']')),
			func(items []Packet) Packet { return List(items...) },
		),
	)
}

type PacketPair = parser.Pair[Packet, Packet]

var line = parser.Terminated(packet(), parser.Newline())

// Grammar reads pairs of packets separated by blank lines.
var Grammar = parser.SeparatedList1(parser.Newline(), parser.Tuple(line, line))

// PartOne sums the 1-based indices of the pairs that are in the right order.
func PartOne(pairs []PacketPair) (int, error) {
	total := 0
	for i, p := range pairs {
		if Compare(p.First, p.Second) < 0 {
			total += i + 1
		}
	}
	return total, nil
}

// PartTwo places the divider packets [[2]] and [[6]] among all packets in sorted order
// and multiplies their 1-based positions.
func PartTwo(pairs []PacketPair) (int, error) {
	packets := lo.FlatMap(pairs, func(p PacketPair, _ int) []Packet {
		return []Packet{p.First, p.Second}
	})
	dividers := []Packet{List(List(Int(2))), List(List(Int(6)))}

	key := 1
	for i, d := range dividers {
		before := lo.CountBy(packets, func(p Packet) bool { return Compare(p, d) < 0 })
		key *= before + i + 1
	}
	return key, nil
}

var Puzzle = &puzzle.Puzzle[[]PacketPair]{
	Number:       13,
	Name:         "Distress Signal",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      puzzle.Answer(PartTwo),
	ExampleInput: example,
	Want:         puzzle.Expected{PartOne: "13", PartTwo: "140"},
}
