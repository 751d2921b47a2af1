package day05

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
)

func TestGrammar(t *testing.T) {
	plan, err := parser.ParseAll(Grammar, example)
	require.NoError(t, err)

	want := Plan{
		Stacks: [][]rune{{'Z', 'N'}, {'M', 'C', 'D'}, {'P'}},
		Moves: []Move{
			{Count: 1, From: 2, To: 1},
			{Count: 3, From: 1, To: 3},
			{Count: 2, From: 2, To: 1},
			{Count: 1, From: 1, To: 2},
		},
	}
	if diff := cmp.Diff(want, plan); diff != "" {
		t.Errorf("Grammar mismatch (-want +got):\n%s", diff)
	}
}

func TestGrammar_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lowercase crate", "[a]\n 1 \n\nmove 1 from 1 to 1\n"},
		{"non-ASCII crate", "[Ä]\n 1 \n\nmove 1 from 1 to 1\n"},
		{"zero count", "[A]\n 1 \n\nmove 0 from 1 to 1\n"},
		{"floating crate", "[A]    \n    [B]\n 1   2 \n\nmove 1 from 1 to 2\n"},
		{"labels out of order", "[A] [B]\n 2   1 \n\nmove 1 from 1 to 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseAll(Grammar, tt.input)
			assert.ErrorIs(t, err, parser.ErrNoMatch)
		})
	}
}

func TestParts(t *testing.T) {
	plan, err := parser.ParseAll(Grammar, example)
	require.NoError(t, err)

	one, err := PartOne(plan)
	require.NoError(t, err)
	assert.Equal(t, "CMZ", one)

	two, err := PartTwo(plan)
	require.NoError(t, err)
	assert.Equal(t, "MCD", two)

	// Parts must not share state through the plan.
	assert.Equal(t, []rune{'Z', 'N'}, plan.Stacks[0])
}

func TestRearrange_Errors(t *testing.T) {
	plan := Plan{Stacks: [][]rune{{'A'}, {'B'}}}

	plan.Moves = []Move{{Count: 2, From: 1, To: 2}}
	_, err := PartOne(plan)
	assert.ErrorContains(t, err, "holds only 1 crates")

	plan.Moves = []Move{{Count: 1, From: 3, To: 2}}
	_, err = PartOne(plan)
	assert.ErrorContains(t, err, "no such stack")

	plan.Moves = []Move{{Count: 1, From: 1, To: 2}}
	_, err = PartTwo(plan)
	assert.ErrorContains(t, err, "stack 1 is empty")
}

func TestCheck(t *testing.T) {
	report, err := Puzzle.Check()
	require.NoError(t, err)
	assert.False(t, report.Failed())
}
