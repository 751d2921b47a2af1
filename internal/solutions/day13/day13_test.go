package day13

import (
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
)

func TestPacketGrammar(t *testing.T) {
	tests := []struct {
		input string
		want  Packet
	}{
		{"[]", List()},
		{"[10]", List(Int(10))},
		{"[1,[2,3]]", List(Int(1), List(Int(2), Int(3)))},
		{"[[[]]]", List(List(List()))},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parser.ParseAll(packet(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}

	_, err := parser.ParseAll(packet(), "[1,2")
	assert.ErrorIs(t, err, parser.ErrNoMatch)

	_, err = parser.ParseAll(packet(), "[1,]")
	assert.ErrorIs(t, err, parser.ErrNoMatch)
}

func TestCompare(t *testing.T) {
	pairs, err := parser.ParseAll(Grammar, example)
	require.NoError(t, err)
	require.Len(t, pairs, 8)

	ordered := lo.Map(pairs, func(p PacketPair, _ int) bool { return Compare(p.First, p.Second) < 0 })
	assert.Equal(t, []bool{true, true, false, true, false, true, false, false}, ordered)
}

func TestSortedPackets(t *testing.T) {
	pairs, err := parser.ParseAll(Grammar, example)
	require.NoError(t, err)

	packets := lo.FlatMap(pairs, func(p PacketPair, _ int) []Packet { return []Packet{p.First, p.Second} })
	slices.SortStableFunc(packets, Compare)
	assert.Equal(t, "[]", packets[0].String())
	assert.Equal(t, "[9]", packets[len(packets)-1].String())
}

func TestParts(t *testing.T) {
	pairs, err := parser.ParseAll(Grammar, example)
	require.NoError(t, err)

	one, err := PartOne(pairs)
	require.NoError(t, err)
	assert.Equal(t, 13, one)

	two, err := PartTwo(pairs)
	require.NoError(t, err)
	assert.Equal(t, 140, two)
}

func TestCheck(t *testing.T) {
	report, err := Puzzle.Check()
	require.NoError(t, err)
	assert.False(t, report.Failed())
}
