//
// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/apstndb/advent-of-code-2022/enums"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

// Cli runs the selected days and prints their reports.
type Cli struct {
	Fs        afero.Fs
	OutStream io.Writer
	ErrStream io.Writer
	Logger    *zap.Logger
	Registry  *puzzle.Registry

	InputDir string
	Format   enums.OutputFormat
	Color    bool
}

// RunOptions selects the days and the mode of a run.
type RunOptions struct {
	Day     int
	All     bool
	Example bool
	Check   bool
	Dump    bool
}

func (c *Cli) selectSolvers(opts RunOptions) ([]puzzle.Solver, error) {
	switch {
	case opts.All:
		return c.Registry.All(), nil
	case opts.Day != 0:
		s, err := c.Registry.Lookup(opts.Day)
		if err != nil {
			return nil, err
		}
		return []puzzle.Solver{s}, nil
	default:
		s, err := c.Registry.Latest()
		if err != nil {
			return nil, err
		}
		return []puzzle.Solver{s}, nil
	}
}

// inputPath returns the path of the puzzle input for day.
func (c *Cli) inputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("%02d.txt", day))
}

func (c *Cli) readInput(s puzzle.Solver, example bool) (string, error) {
	if example {
		c.Logger.Debug("using example input", zap.Int("day", s.Day()))
		return s.Example(), nil
	}

	path := c.inputPath(s.Day())
	c.Logger.Debug("reading input", zap.Int("day", s.Day()), zap.String("path", path))
	b, err := SafeReadFile(c.Fs, path, nil)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (c *Cli) runOne(s puzzle.Solver, opts RunOptions) (*puzzle.Report, error) {
	if opts.Check {
		return s.Check()
	}
	input, err := c.readInput(s, opts.Example)
	if err != nil {
		return nil, err
	}
	return s.Solve(input)
}

// Run solves the selected days and writes the reports in the configured format.
// A parse failure aborts the remaining days. A failing part is shown in its report
// and the run ends with an ExitCodeError that carries no further message.
func (c *Cli) Run(opts RunOptions) error {
	solvers, err := c.selectSolvers(opts)
	if err != nil {
		return err
	}

	if opts.Dump {
		return c.dump(solvers, opts.Example)
	}

	var reports []*puzzle.Report
	for _, s := range solvers {
		report, err := c.runOne(s, opts)
		if err != nil {
			c.Logger.Error("solve failed", zap.Int("day", s.Day()), zap.Error(err))
			return err
		}
		c.Logger.Debug("solved",
			zap.Int("day", s.Day()),
			zap.Duration("parse", report.ParseTime),
			zap.Bool("failed", report.Failed()))
		reports = append(reports, report)
	}

	formatter, err := formatterFor(c.Format, c.Color)
	if err != nil {
		return err
	}
	if err := formatter(c.OutStream, reports); err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}

	for _, r := range reports {
		if r.Failed() {
			return NewExitCodeError(exitCodeError)
		}
	}
	return nil
}

// dump pretty-prints the structured value produced by each day's grammar.
func (c *Cli) dump(solvers []puzzle.Solver, example bool) error {
	printer := pp.New()
	printer.SetColoringEnabled(c.Color)
	printer.SetOutput(c.OutStream)

	for _, s := range solvers {
		input, err := c.readInput(s, example)
		if err != nil {
			return err
		}
		v, err := s.Dump(input)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.OutStream, "Day %d: %s\n", s.Day(), s.Title())
		if _, err := printer.Println(v); err != nil {
			return err
		}
	}
	return nil
}
