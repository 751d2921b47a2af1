package day09

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
)

func TestGrammar(t *testing.T) {
	got, err := parser.ParseAll(Grammar, "R 4\nU 12\n")
	require.NoError(t, err)
	assert.Equal(t, []Motion{{Right, 4}, {Up, 12}}, got)

	_, err = parser.ParseAll(Grammar, "X 4\n")
	assert.ErrorIs(t, err, parser.ErrNoMatch)
}

func TestFollow(t *testing.T) {
	tests := []struct {
		knot, leader, want Point
	}{
		{Point{0, 0}, Point{1, 1}, Point{0, 0}},
		{Point{0, 0}, Point{2, 0}, Point{1, 0}},
		{Point{0, 0}, Point{2, 1}, Point{1, 1}},
		{Point{0, 0}, Point{-2, -2}, Point{-1, -1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, follow(tt.knot, tt.leader), "follow(%v, %v)", tt.knot, tt.leader)
	}
}

func TestParts(t *testing.T) {
	motions, err := parser.ParseAll(Grammar, example)
	require.NoError(t, err)

	one, err := PartOne(motions)
	require.NoError(t, err)
	assert.Equal(t, 13, one)

	two, err := PartTwo(motions)
	require.NoError(t, err)
	assert.Equal(t, 1, two)
}

func TestPartTwo_LargerExample(t *testing.T) {
	motions, err := parser.ParseAll(Grammar, heredoc.Doc(`
		R 5
		U 8
		L 8
		D 3
		R 17
		D 10
		L 25
		U 20
	`))
	require.NoError(t, err)

	got, err := PartTwo(motions)
	require.NoError(t, err)
	assert.Equal(t, 36, got)
}

func TestCheck(t *testing.T) {
	report, err := Puzzle.Check()
	require.NoError(t, err)
	assert.False(t, report.Failed())
}
