// Package day07 solves "No Space Left On Device".
package day07

import (
	_ "embed"
	"errors"
	"fmt"
	"path"

	"github.com/samber/lo"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

//go:embed example.txt
var example string

type Kind int

const (
	CdRoot Kind = iota
	CdUp
	Cd
	Ls
	Dir
	File
)

// Line is one line of terminal output.
type Line struct {
	Kind Kind
	Name string
	Size int
}

var (
	name = parser.TakeWhile1("name", func(r rune) bool { return r != '\n' })
	size = parser.Uint[uint64]()

	// Fixed commands are tried before "$ cd <name>".
	command = parser.Enum(
		parser.Case[Line]{Tag: "$ cd /", Value: Line{Kind: CdRoot}},
		parser.Case[Line]{Tag: "$ cd ..", Value: Line{Kind: CdUp}},
		parser.Case[Line]{Tag: "$ ls", Value: Line{Kind: Ls}},
	)
	cd = parser.Map(parser.Preceded(parser.Tag("$ cd "), name), func(n string) Line {
		return Line{Kind: Cd, Name: n}
	})
	dir = parser.Map(parser.Preceded(parser.Tag("dir "), name), func(n string) Line {
		return Line{Kind: Dir, Name: n}
	})
	file = parser.Map(parser.SeparatedPair(size, parser.Char(' '), name), func(p parser.Pair[uint64, string]) Line {
		return Line{Kind: File, Name: p.Second, Size: int(p.First)}
	})
)

// Grammar reads the terminal session.
var Grammar = parser.Many1(parser.Terminated(parser.Alt(command, cd, dir, file), parser.Newline()))

var errNoRoot = errors.New("command before cd /")

// sizes returns the total size of every directory keyed by its absolute path.
func sizes(lines []Line) (map[string]int, error) {
	totals := make(map[string]int)
	seen := make(map[string]bool)
	var cwd []string
	for i, l := range lines {
		if l.Kind != CdRoot && cwd == nil {
			return nil, fmt.Errorf("line %d: %w", i+1, errNoRoot)
		}
		switch l.Kind {
		case CdRoot:
			cwd = []string{"/"}
		case CdUp:
			if len(cwd) == 1 {
				return nil, fmt.Errorf("line %d: cd .. above root", i+1)
			}
			cwd = cwd[:len(cwd)-1]
		case Cd:
			cwd = append(cwd, path.Join(cwd[len(cwd)-1], l.Name))
		case File:
			p := path.Join(cwd[len(cwd)-1], l.Name)
			if seen[p] {
				continue
			}
			seen[p] = true
			for _, d := range cwd {
				totals[d] += l.Size
			}
		}
	}
	if cwd == nil {
		return nil, errNoRoot
	}
	return totals, nil
}

// PartOne sums the sizes of directories of at most 100000.
func PartOne(lines []Line) (int, error) {
	totals, err := sizes(lines)
	if err != nil {
		return 0, err
	}
	return lo.Sum(lo.Filter(lo.Values(totals), func(s int, _ int) bool { return s <= 100000 })), nil
}

const (
	diskSize   = 70000000
	updateSize = 30000000
)

// PartTwo finds the size of the smallest directory whose deletion frees enough space.
func PartTwo(lines []Line) (int, error) {
	totals, err := sizes(lines)
	if err != nil {
		return 0, err
	}
	need := updateSize - (diskSize - totals["/"])
	candidates := lo.Filter(lo.Values(totals), func(s int, _ int) bool { return s >= need })
	if len(candidates) == 0 {
		return 0, errors.New("no directory frees enough space")
	}
	return lo.Min(candidates), nil
}

var Puzzle = &puzzle.Puzzle[[]Line]{
	Number:       7,
	Name:         "No Space Left On Device",
	Grammar:      Grammar,
	PartOne:      puzzle.Answer(PartOne),
	PartTwo:      puzzle.Answer(PartTwo),
	ExampleInput: example,
	Want:         puzzle.Expected{PartOne: "95437", PartTwo: "24933642"},
}
