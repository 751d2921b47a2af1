package day06

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarker(t *testing.T) {
	tests := []struct {
		stream   string
		one, two int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tt := range tests {
		t.Run(tt.stream, func(t *testing.T) {
			one, err := PartOne(tt.stream)
			require.NoError(t, err)
			assert.Equal(t, tt.one, one)

			two, err := PartTwo(tt.stream)
			require.NoError(t, err)
			assert.Equal(t, tt.two, two)
		})
	}
}

func TestMarker_NotFound(t *testing.T) {
	_, err := PartOne("aabb")
	assert.ErrorContains(t, err, "no window of 4")
}

func TestCheck(t *testing.T) {
	report, err := Puzzle.Check()
	require.NoError(t, err)
	assert.False(t, report.Failed())
}
