package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/advent-of-code-2022/enums"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

func sampleReports() []*puzzle.Report {
	return []*puzzle.Report{
		{
			Day:       10,
			Title:     "Cathode-Ray Tube",
			ParseTime: 1500 * time.Nanosecond,
			Parts: []puzzle.PartResult{
				{Part: 1, Answer: "13140", Elapsed: 2 * time.Microsecond},
				{Part: 2, Answer: "#.\n.#\n", Elapsed: 3 * time.Microsecond},
			},
		},
		{
			Day:     3,
			Title:   "Rucksack Reorganization",
			Example: true,
			Parts: []puzzle.PartResult{
				{Part: 1, Answer: "157", Want: "157"},
				{Part: 2, Want: "70", Err: errors.New("no answer")},
			},
		},
	}
}

func TestWritePlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePlain(&buf, sampleReports(), newStatusStyle(false)))

	want := strings.Join([]string{
		"Day 10: Cathode-Ray Tube (parse 2µs)",
		"  Part 1: 13140 (2µs)",
		"  Part 2: (3µs)",
		"    #.",
		"    .#",
		"Day 3: Rucksack Reorganization [example] (parse 0s)",
		"  Part 1: 157 (0s) PASS",
		"  Part 2: error: no answer FAIL",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("writePlain() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, sampleReports(), newStatusStyle(false)))

	got := buf.String()
	assert.True(t, strings.HasPrefix(got, "+"), "table should start with a border:\n%s", got)
	for _, want := range []string{"Day", "Answer", "Want", "Status", "13140", "Rucksack Reorganization", "PASS", "FAIL", "error: no answer"} {
		assert.Contains(t, got, want)
	}
}

func TestWriteStructured(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeStructured(&buf, sampleReports(), false))

	var got []reportView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 10, got[0].Day)
	assert.Equal(t, "#.\n.#\n", got[0].Parts[1].Answer)
	assert.True(t, got[1].Example)
	assert.Equal(t, "no answer", got[1].Parts[1].Error)
	assert.Empty(t, got[0].Parts[0].Error)
}

func TestWriteStructured_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeStructured(&buf, sampleReports()[:1], true))

	got := buf.String()
	assert.True(t, strings.HasPrefix(got, "["), "JSON output should be an array: %s", got)
	assert.Contains(t, got, `"Cathode-Ray Tube"`)
}

func TestFormatterFor(t *testing.T) {
	for _, format := range enums.OutputFormatValues() {
		f, err := formatterFor(format, false)
		require.NoError(t, err, format)

		var buf bytes.Buffer
		require.NoError(t, f(&buf, sampleReports()), format)
		assert.Contains(t, buf.String(), "13140", format)
	}

	_, err := formatterFor(enums.OutputFormat(99), false)
	assert.Error(t, err)
}

func TestStatusStyle(t *testing.T) {
	st := newStatusStyle(false)
	report := &puzzle.Report{Example: true}

	assert.Equal(t, "PASS", st.status(report, puzzle.PartResult{Answer: "1", Want: "1"}))
	assert.Equal(t, "MISMATCH", st.status(report, puzzle.PartResult{
		Answer: "2", Want: "1", Err: &puzzle.MismatchError{Got: "2", Want: "1"},
	}))
	assert.Equal(t, "FAIL", st.status(report, puzzle.PartResult{Err: errors.New("boom")}))
	assert.Empty(t, st.status(&puzzle.Report{}, puzzle.PartResult{Answer: "1"}))

	colored := newStatusStyle(true)
	assert.Contains(t, colored.status(report, puzzle.PartResult{Answer: "1", Want: "1"}), "\x1b[")
}
