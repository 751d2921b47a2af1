package day07

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
)

func TestGrammar(t *testing.T) {
	input := heredoc.Doc(`
		$ cd /
		$ ls
		dir a
		14848514 b.txt
		$ cd a
		$ cd ..
	`)

	got, err := parser.ParseAll(Grammar, input)
	require.NoError(t, err)
	assert.Equal(t, []Line{
		{Kind: CdRoot},
		{Kind: Ls},
		{Kind: Dir, Name: "a"},
		{Kind: File, Name: "b.txt", Size: 14848514},
		{Kind: Cd, Name: "a"},
		{Kind: CdUp},
	}, got)
}

func TestSizes(t *testing.T) {
	lines, err := parser.ParseAll(Grammar, example)
	require.NoError(t, err)

	totals, err := sizes(lines)
	require.NoError(t, err)
	assert.Equal(t, 584, totals["/a/e"])
	assert.Equal(t, 94853, totals["/a"])
	assert.Equal(t, 24933642, totals["/d"])
	assert.Equal(t, 48381165, totals["/"])
}

func TestSizes_ListingTwice(t *testing.T) {
	input := heredoc.Doc(`
		$ cd /
		$ ls
		10 a
		$ ls
		10 a
	`)
	lines, err := parser.ParseAll(Grammar, input)
	require.NoError(t, err)

	totals, err := sizes(lines)
	require.NoError(t, err)
	assert.Equal(t, 10, totals["/"])
}

func TestSizes_Errors(t *testing.T) {
	_, err := sizes([]Line{{Kind: Ls}})
	assert.ErrorIs(t, err, errNoRoot)

	_, err = sizes([]Line{{Kind: CdRoot}, {Kind: CdUp}})
	assert.ErrorContains(t, err, "above root")
}

func TestParts(t *testing.T) {
	lines, err := parser.ParseAll(Grammar, example)
	require.NoError(t, err)

	one, err := PartOne(lines)
	require.NoError(t, err)
	assert.Equal(t, 95437, one)

	two, err := PartTwo(lines)
	require.NoError(t, err)
	assert.Equal(t, 24933642, two)
}

func TestCheck(t *testing.T) {
	report, err := Puzzle.Check()
	require.NoError(t, err)
	assert.False(t, report.Failed())
}
