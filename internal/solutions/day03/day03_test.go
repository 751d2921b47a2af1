package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
)

func TestPriority(t *testing.T) {
	assert.Equal(t, 1, priority('a'))
	assert.Equal(t, 26, priority('z'))
	assert.Equal(t, 27, priority('A'))
	assert.Equal(t, 52, priority('Z'))
}

func TestParts(t *testing.T) {
	rucksacks, err := parser.ParseAll(Grammar, example)
	require.NoError(t, err)
	require.Len(t, rucksacks, 6)

	one, err := PartOne(rucksacks)
	require.NoError(t, err)
	assert.Equal(t, 157, one)

	two, err := PartTwo(rucksacks)
	require.NoError(t, err)
	assert.Equal(t, 70, two)
}

func TestErrors(t *testing.T) {
	_, err := PartOne([]string{"abc"})
	assert.ErrorContains(t, err, "odd number")

	_, err = PartOne([]string{"abcd"})
	assert.ErrorContains(t, err, "exactly one shared item")

	_, err = PartTwo([]string{"ab", "ab"})
	assert.ErrorContains(t, err, "groups of three")
}

func TestCheck(t *testing.T) {
	report, err := Puzzle.Check()
	require.NoError(t, err)
	assert.False(t, report.Failed())
}
