package puzzle_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

func withDay(day int) puzzle.Solver {
	p := sumLines()
	p.Number = day
	return p
}

func TestRegistry(t *testing.T) {
	r, err := puzzle.NewRegistry(withDay(3), withDay(1), withDay(12))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 12}, r.Days())
	assert.Equal(t, []int{1, 3, 12}, lo.Map(r.All(), func(s puzzle.Solver, _ int) int { return s.Day() }))

	latest, err := r.Latest()
	require.NoError(t, err)
	assert.Equal(t, 12, latest.Day())

	s, err := r.Lookup(3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Day())
}

func TestRegistry_UnknownDay(t *testing.T) {
	r, err := puzzle.NewRegistry(withDay(1))
	require.NoError(t, err)

	_, err = r.Lookup(2)
	var unknown *puzzle.UnknownDayError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, 2, unknown.Day)
	assert.EqualError(t, err, "unknown day: 2")
}

func TestRegistry_RegisterErrors(t *testing.T) {
	_, err := puzzle.NewRegistry(withDay(1), withDay(1))
	assert.ErrorContains(t, err, "already registered")

	_, err = puzzle.NewRegistry(withDay(26))
	assert.ErrorContains(t, err, "out of range")

	empty, err := puzzle.NewRegistry()
	require.NoError(t, err)
	_, err = empty.Latest()
	assert.Error(t, err)
}
