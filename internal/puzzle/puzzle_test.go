package puzzle_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sumLines() *puzzle.Puzzle[[]int] {
	return &puzzle.Puzzle[[]int]{
		Number:  1,
		Name:    "Sum",
		Grammar: parser.Many1(parser.Terminated(parser.Int[int](), parser.Newline())),
		PartOne: puzzle.Answer(func(xs []int) (int, error) {
			total := 0
			for _, x := range xs {
				total += x
			}
			return total, nil
		}),
		PartTwo: func(xs []int) (string, error) {
			if len(xs) < 3 {
				return "", errors.New("no answer")
			}
			return strconv.Itoa(xs[2]), nil
		},
		ExampleInput: "1\n2\n3\n",
		Want:         puzzle.Expected{PartOne: "6", PartTwo: "3"},
	}
}

func TestSolve(t *testing.T) {
	p := sumLines()

	report, err := p.Solve("10\n-4\n")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Day)
	assert.Equal(t, "Sum", report.Title)
	assert.False(t, report.Example)
	require.Len(t, report.Parts, 2)

	assert.Equal(t, "6", report.Parts[0].Answer)
	assert.NoError(t, report.Parts[0].Err)
	assert.EqualError(t, report.Parts[1].Err, "no answer")
	assert.True(t, report.Failed())
}

func TestSolve_ParseFailure(t *testing.T) {
	p := sumLines()

	_, err := p.Solve("1\n2\nX")
	require.Error(t, err)

	var parseErr *puzzle.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Day)
	assert.ErrorIs(t, err, parser.ErrTrailingInput)
}

func TestSolve_NotImplemented(t *testing.T) {
	p := sumLines()
	p.PartTwo = nil

	report, err := p.Solve("5\n")
	require.NoError(t, err)
	assert.ErrorIs(t, report.Parts[1].Err, puzzle.ErrNotImplemented)
}

func TestCheck(t *testing.T) {
	t.Run("matching answers", func(t *testing.T) {
		report, err := sumLines().Check()
		require.NoError(t, err)
		assert.True(t, report.Example)
		assert.False(t, report.Failed())
		assert.Equal(t, "6", report.Parts[0].Want)
		assert.Equal(t, "3", report.Parts[1].Want)
	})

	t.Run("mismatch is recorded on the part", func(t *testing.T) {
		p := sumLines()
		p.Want.PartOne = "7"

		report, err := p.Check()
		require.NoError(t, err)
		assert.True(t, report.Failed())

		var mismatch *puzzle.MismatchError
		require.ErrorAs(t, report.Parts[0].Err, &mismatch)
		assert.Equal(t, "6", mismatch.Got)
		assert.Equal(t, "7", mismatch.Want)
		assert.NoError(t, report.Parts[1].Err)
	})
}

func TestDump(t *testing.T) {
	v, err := sumLines().Dump("4\n5\n")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, v)
}
