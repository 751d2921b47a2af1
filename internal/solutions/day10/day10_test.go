package day10

import (
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
)

func TestGrammar(t *testing.T) {
	got, err := parser.ParseAll(Grammar, heredoc.Doc(`
		noop
		addx 3
		addx -5
	`))
	require.NoError(t, err)
	assert.Equal(t, []Instruction{{Op: Noop}, {Op: Addx, Arg: 3}, {Op: Addx, Arg: -5}}, got)
}

func TestGrammar_Operands(t *testing.T) {
	_, err := parser.ParseAll(Grammar, "addx\n")
	assert.ErrorContains(t, err, "addx needs an operand")

	_, err = parser.ParseAll(Grammar, "noop 1\n")
	assert.ErrorContains(t, err, "noop takes no operand")
}

func TestTrace(t *testing.T) {
	program := []Instruction{{Op: Noop}, {Op: Addx, Arg: 3}, {Op: Addx, Arg: -5}}
	xs, final := trace(program)
	assert.Equal(t, []int{1, 1, 1, 4, 4}, xs)
	assert.Equal(t, -1, final)
}

func TestPartTwo_AfterProgramEnds(t *testing.T) {
	got, err := PartTwo([]Instruction{{Op: Addx, Arg: 29}})
	require.NoError(t, err)

	rest := strings.Repeat(".", 29) + "###" + strings.Repeat(".", 8) + "\n"
	want := "##" + strings.Repeat(".", 27) + "###" + strings.Repeat(".", 8) + "\n" + strings.Repeat(rest, 5)
	assert.Equal(t, want, got)
}

func TestParts(t *testing.T) {
	program, err := parser.ParseAll(Grammar, example)
	require.NoError(t, err)
	xs, _ := trace(program)
	require.Len(t, xs, 240)

	one, err := PartOne(program)
	require.NoError(t, err)
	assert.Equal(t, 13140, one)

	two, err := PartTwo(program)
	require.NoError(t, err)
	assert.Equal(t, Puzzle.Want.PartTwo, two)
}

func TestCheck(t *testing.T) {
	report, err := Puzzle.Check()
	require.NoError(t, err)
	assert.False(t, report.Failed())
}
