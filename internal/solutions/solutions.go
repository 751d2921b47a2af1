// Package solutions registers every implemented day.
package solutions

import (
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day01"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day02"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day03"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day04"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day05"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day06"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day07"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day08"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day09"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day10"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day11"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day12"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day13"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day14"
	"github.com/apstndb/advent-of-code-2022/internal/solutions/day15"
)

// Solvers returns the solver of every day in order.
func Solvers() []puzzle.Solver {
	return []puzzle.Solver{
		day01.Puzzle,
		day02.Puzzle,
		day03.Puzzle,
		day04.Puzzle,
		day05.Puzzle,
		day06.Puzzle,
		day07.Puzzle,
		day08.Puzzle,
		day09.Puzzle,
		day10.Puzzle,
		day11.Puzzle,
		day12.Puzzle,
		day13.Puzzle,
		day14.Puzzle,
		day15.Puzzle,
	}
}

// Registry returns a registry of all days.
func Registry() *puzzle.Registry {
	r, err := puzzle.NewRegistry(Solvers()...)
	if err != nil {
		panic(err)
	}
	return r
}
