// Package day10 solves "Cathode-Ray Tube".
package day10

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

type Op int

const (
	Noop Op = iota
	Addx
)

// Instruction is a CPU instruction. Arg is only meaningful for Addx.
type Instruction struct {
	Op  Op
	Arg int
}

var opcode = parser.Enum(
	parser.Case[Op]{Tag: "noop", Value: Noop},
	parser.Case[Op]{Tag: "addx", Value: Addx},
)

var instruction = parser.WithTransform(
	parser.Tuple(opcode, parser.Opt(parser.Preceded(parser.Char(' '), parser.Int[int]()))),
	func(p parser.Pair[Op, *int]) (Instruction, error) {
		switch {
		case p.First == Addx && p.Second == nil:
			return Instruction{}, fmt.Errorf("addx needs an operand")
		case p.First == Noop && p.Second != nil:
			return Instruction{}, fmt.Errorf("noop takes no operand")
		case p.First == Addx:
			return Instruction{Op: Addx, Arg: *p.Second}, nil
		default:
			return Instruction{Op: Noop}, nil
		}
	},
)

// Grammar reads one instruction per line.
var Grammar = parser.Many1(parser.Terminated(instruction, parser.Newline()))

// trace returns the value of the X register during each cycle, starting with cycle 1,
// and the value left in X once the program ends.
func trace(program []Instruction) ([]int, int) {
	x := 1
	var xs []int
	for _, in := range program {
		switch in.Op {
		case Noop:
			xs = append(xs, x)
		case Addx:
			xs = append(xs, x, x)
			x += in.Arg
		}
	}
	return xs, x
}

// PartOne sums the signal strengths at cycles 20, 60, 100 and so on.
func PartOne(program []Instruction) (int, error) {
	xs, _ := trace(program)
	total := 0
	for cycle := 20; cycle <= len(xs); cycle += 40 {
		total += cycle * xs[cycle-1]
	}
	return total, nil
}

const (
	screenWidth  = 40
	screenHeight = 6
)

// PartTwo renders the CRT. Once the program ends the sprite stays where the last
// instruction left it.
func PartTwo(program []Instruction) (string, error) {
	xs, final := trace(program)
	var sb strings.Builder
	for cycle := range screenWidth * screenHeight {
		sprite := final
		if cycle < len(xs) {
			sprite = xs[cycle]
		}
		column := cycle % screenWidth
		if column >= sprite-1 && column <= sprite+1 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
		if column == screenWidth-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

var Puzzle = &puzzle.Puzzle[[]Instruction]{
	Number:       10,
	Name:         "Cathode-Ray Tube",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      PartTwo,
	ExampleInput: example,
	Want: puzzle.Expected{
		PartOne: "13140",
		PartTwo: "##..##..##..##..##..##..##..##..##..##..\n" +
			"###...###...###...###...###...###...###.\n" +
			"####....####....####....####....####....\n" +
			"#####.....#####.....#####.....#####.....\n" +
			"######......######......######......####\n" +
			"#######.......#######.......#######.....\n",
	},
}
