package day14

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
)

func TestGrammar(t *testing.T) {
	got, err := parser.ParseAll(Grammar, "498,4 -> 498,6 -> 496,6\n")
	require.NoError(t, err)
	assert.Equal(t, []Path{{{498, 4}, {498, 6}, {496, 6}}}, got)

	_, err = parser.ParseAll(Grammar, "1,1 -> 2,2\n")
	assert.ErrorContains(t, err, "diagonal segment")
}

func TestNewCave(t *testing.T) {
	c := newCave([]Path{{{498, 4}, {498, 6}, {496, 6}}, {{500, 9}}})
	assert.Len(t, c.blocked, 6)
	assert.True(t, c.blocked[Point{497, 6}])
	assert.True(t, c.blocked[Point{500, 9}])
	assert.Equal(t, 9, c.depth)
}

func TestParts(t *testing.T) {
	paths, err := parser.ParseAll(Grammar, example)
	require.NoError(t, err)

	one, err := PartOne(paths)
	require.NoError(t, err)
	assert.Equal(t, 24, one)

	two, err := PartTwo(paths)
	require.NoError(t, err)
	assert.Equal(t, 93, two)
}

func TestCheck(t *testing.T) {
	report, err := Puzzle.Check()
	require.NoError(t, err)
	assert.False(t, report.Failed())
}
