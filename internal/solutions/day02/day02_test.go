package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
)

func TestShape(t *testing.T) {
	assert.Equal(t, Scissors, Rock.Beats())
	assert.Equal(t, Rock, Paper.Beats())
	assert.Equal(t, Paper, Scissors.Beats())
	assert.Equal(t, Paper, Rock.LosesTo())
	assert.Equal(t, Scissors, Paper.LosesTo())
	assert.Equal(t, Rock, Scissors.LosesTo())
}

func TestGrammar(t *testing.T) {
	got, err := parser.ParseAll(Grammar, example)
	require.NoError(t, err)
	assert.Equal(t, []Round{{Rock, Y}, {Paper, X}, {Scissors, Z}}, got)

	_, err = parser.ParseAll(Grammar, "A W\n")
	assert.ErrorIs(t, err, parser.ErrNoMatch)
}

func TestParts(t *testing.T) {
	rounds, err := parser.ParseAll(Grammar, example)
	require.NoError(t, err)

	one, err := PartOne(rounds)
	require.NoError(t, err)
	assert.Equal(t, 15, one)

	two, err := PartTwo(rounds)
	require.NoError(t, err)
	assert.Equal(t, 12, two)
}

func TestCheck(t *testing.T) {
	report, err := Puzzle.Check()
	require.NoError(t, err)
	assert.False(t, report.Failed())
}
