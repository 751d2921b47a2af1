// Package day02 solves "Rock Paper Scissors".
package day02

import (
	_ "embed"

	"github.com/samber/lo"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

// Shape is a hand shape. Its value is also its score.
type Shape int

const (
	Rock Shape = iota + 1
	Paper
	Scissors
)

// Beats returns the shape that s defeats.
func (s Shape) Beats() Shape { return (s+1)%3 + 1 }

// LosesTo returns the shape that defeats s.
func (s Shape) LosesTo() Shape { return s%3 + 1 }

// Column is the second, still ambiguous, column of the strategy guide.
type Column int

const (
	X Column = iota
	Y
	Z
)

type Round struct {
	Opponent Shape
	Response Column
}

var opponent = parser.Enum(
	parser.Case[Shape]{Tag: "A", Value: Rock},
	parser.Case[Shape]{Tag: "B", Value: Paper},
	parser.Case[Shape]{Tag: "C", Value: Scissors},
)

var response = parser.Enum(
	parser.Case[Column]{Tag: "X", Value: X},
	parser.Case[Column]{Tag: "Y", Value: Y},
	parser.Case[Column]{Tag: "Z", Value: Z},
)

// Grammar reads one round per line, e.g. "A Y".
var Grammar = parser.Many1(parser.Terminated(
	parser.Map(parser.SeparatedPair(opponent, parser.Char(' '), response),
		func(p parser.Pair[Shape, Column]) Round { return Round{Opponent: p.First, Response: p.Second} }),
	parser.Newline(),
))

func score(opponent, me Shape) int {
	switch {
	case me == opponent:
		return int(me) + 3
	case me.Beats() == opponent:
		return int(me) + 6
	default:
		return int(me)
	}
}

// PartOne reads the second column as the shape to play.
func PartOne(rounds []Round) (int, error) {
	return lo.SumBy(rounds, func(r Round) int {
		return score(r.Opponent, Shape(r.Response)+Rock)
	}), nil
}

// PartTwo reads the second column as the outcome: X lose, Y draw, Z win.
func PartTwo(rounds []Round) (int, error) {
	return lo.SumBy(rounds, func(r Round) int {
		var me Shape
		switch r.Response {
		case X:
			me = r.Opponent.Beats()
		case Y:
			me = r.Opponent
		case Z:
			me = r.Opponent.LosesTo()
		}
		return score(r.Opponent, me)
	}), nil
}

var Puzzle = &puzzle.Puzzle[[]Round]{
	Number:       2,
	Name:         "Rock Paper Scissors",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      puzzle.Answer(PartTwo),
	ExampleInput: example,
	Want:         puzzle.Expected{PartOne: "15", PartTwo: "12"},
}
