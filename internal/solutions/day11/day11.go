// Package day11 solves "Monkey in the Middle".
package day11

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

type Operator int

const (
	Add Operator = iota
	Multiply
)

// Operand is either the old worry level or a constant.
type Operand struct {
	Old   bool
	Value uint64
}

// Operation computes the new worry level from the old one.
type Operation struct {
	Operator Operator
	Operand  Operand
}

func (o Operation) Apply(old uint64) uint64 {
	v := o.Operand.Value
	if o.Operand.Old {
		v = old
	}
	if o.Operator == Multiply {
		return old * v
	}
	return old + v
}

type Monkey struct {
	ID        int
	Items     []uint64
	Operation Operation
	Divisor   uint64
	IfTrue    int
	IfFalse   int
}

func line[T any](prefix string, p parser.Parser[T]) parser.Parser[T] {
	return parser.Delimited(parser.Tag(prefix), p, parser.Newline())
}

var (
	index = parser.Uint[uint]()
	worry = parser.Uint[uint64]()

	operator = parser.Enum(
		parser.Case[Operator]{Tag: "+", Value: Add},
		parser.Case[Operator]{Tag: "*", Value: Multiply},
	)
	operand = parser.Alt(
		parser.Value(Operand{Old: true}, parser.Tag("old")),
		parser.Map(worry, func(v uint64) Operand { return Operand{Value: v} }),
	)
	operation = parser.Map(
		parser.SeparatedPair(operator, parser.Char(' '), operand),
		func(p parser.Pair[Operator, Operand]) Operation { return Operation{Operator: p.First, Operand: p.Second} },
	)

	header = parser.Delimited(parser.Tag("Monkey "), index, parser.Tag(":\n"))
	items  = line("  Starting items: ", parser.SeparatedList1(parser.Tag(", "), worry))
	op     = line("  Operation: new = old ", operation)
	test   = line("  Test: divisible by ", parser.WithValidation(worry, func(v uint64) error {
		if v == 0 {
			return fmt.Errorf("divisor must not be zero")
		}
		return nil
	}))
	ifTrue  = line("    If true: throw to monkey ", index)
	ifFalse = line("    If false: throw to monkey ", index)

	monkey = parser.Map(
		parser.Tuple(parser.Tuple3(header, items, op), parser.Tuple3(test, ifTrue, ifFalse)),
		func(p parser.Pair[parser.Triple[uint, []uint64, Operation], parser.Triple[uint64, uint, uint]]) Monkey {
			return Monkey{
				ID:        int(p.First.First),
				Items:     p.First.Second,
				Operation: p.First.Third,
				Divisor:   p.Second.First,
				IfTrue:    int(p.Second.Second),
				IfFalse:   int(p.Second.Third),
			}
		},
	)
)

// Grammar reads the monkey notes, separated by blank lines.
var Grammar = parser.WithTransform(
	parser.SeparatedList1(parser.Newline(), monkey),
	func(monkeys []Monkey) ([]Monkey, error) {
		for i, m := range monkeys {
			if m.ID != i {
				return nil, fmt.Errorf("monkey %d listed at position %d", m.ID, i)
			}
			for _, target := range []int{m.IfTrue, m.IfFalse} {
				if target == i || target >= len(monkeys) {
					return nil, fmt.Errorf("monkey %d throws to invalid monkey %d", i, target)
				}
			}
		}
		return monkeys, nil
	},
)

// business runs the given number of rounds and multiplies the two highest inspection counts.
func business(monkeys []Monkey, rounds int, relieve func(uint64) uint64) (int, error) {
	if len(monkeys) < 2 {
		return 0, fmt.Errorf("need at least two monkeys, got %d", len(monkeys))
	}
	held := lo.Map(monkeys, func(m Monkey, _ int) []uint64 { return slices.Clone(m.Items) })
	inspected := make([]int, len(monkeys))

	for range rounds {
		for i, m := range monkeys {
			for _, item := range held[i] {
				level := relieve(m.Operation.Apply(item))
				target := lo.Ternary(level%m.Divisor == 0, m.IfTrue, m.IfFalse)
				held[target] = append(held[target], level)
			}
			inspected[i] += len(held[i])
			held[i] = held[i][:0]
		}
	}

	slices.Sort(inspected)
	return inspected[len(inspected)-1] * inspected[len(inspected)-2], nil
}

// PartOne runs 20 rounds, dividing worry levels by three after each inspection.
func PartOne(monkeys []Monkey) (int, error) {
	return business(monkeys, 20, func(v uint64) uint64 { return v / 3 })
}

// PartTwo runs 10000 rounds and keeps worry levels bounded by the product of the divisors.
func PartTwo(monkeys []Monkey) (int, error) {
	modulus := lo.Reduce(monkeys, func(acc uint64, m Monkey, _ int) uint64 { return acc * m.Divisor }, uint64(1))
	return business(monkeys, 10000, func(v uint64) uint64 { return v % modulus })
}

var Puzzle = &puzzle.Puzzle[[]Monkey]{
	Number:       11,
	Name:         "Monkey in the Middle",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      puzzle.Answer(PartTwo),
	ExampleInput: example,
	Want:         puzzle.Expected{PartOne: "10605", PartTwo: "2713310158"},
}
