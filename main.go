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

// Package main is a command line tool that runs Advent of Code 2022 solutions
package main

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/apstndb/advent-of-code-2022/enums"
	"github.com/apstndb/advent-of-code-2022/internal/solutions"
)

type globalOptions struct {
	AoC aocOptions `group:"aoc"`
}

// We can't use `default` because the config file and the command line are processed by separate flags.NewParser() calls.
type aocOptions struct {
	Day      int    `long:"day" short:"d" description:"Day to run. Defaults to the latest implemented day."`
	All      bool   `long:"all" short:"a" description:"Run every implemented day."`
	Example  bool   `long:"example" short:"e" description:"Use the example from the puzzle statement instead of the input file."`
	Check    bool   `long:"check" short:"c" description:"Solve the examples and compare them with the expected answers."`
	InputDir string `long:"input-dir" env:"AOC_INPUT_DIR" description:"Directory containing the puzzle inputs named NN.txt." default-mask:"inputs"`
	Format   string `long:"format" short:"f" description:"Output format (TABLE|PLAIN|YAML|JSON)." default-mask:"TABLE on a terminal, PLAIN otherwise"`
	Dump     bool   `long:"dump" description:"Print the parsed input instead of solving."`
	Scaffold int    `long:"scaffold" description:"Create the skeleton of a new day and exit."`
	NoColor  bool   `long:"no-color" description:"Disable colored output."`
	Verbose  bool   `long:"verbose" short:"v" description:"Display verbose output."`
	Help     bool   `long:"help" short:"h" hidden:"true"`
}

const defaultInputDir = "inputs"

func main() {
	var gopts globalOptions

	// process config files at first
	configFileParser := flags.NewParser(&gopts, flags.Default)
	if err := readConfigFile(configFileParser); err != nil {
		exitf("Invalid config file format: %v\n", err)
	}

	// then, process environment variables and command line options
	// use another parser to process environment variables with higher precedence than configuration files
	flagParser := flags.NewParser(&gopts, flags.PrintErrors|flags.PassDoubleDash)

	// TODO: Workaround to avoid to display config value as default
	parserForHelp := flags.NewParser(&globalOptions{}, flags.Default)

	if _, err := flagParser.Parse(); flags.WroteHelp(err) {
		// exit successfully
		return
	} else if err != nil {
		parserForHelp.WriteHelp(os.Stderr)
		exitf("Invalid options\n")
	} else if gopts.AoC.Help {
		parserForHelp.WriteHelp(os.Stderr)
		return
	}

	opts := gopts.AoC

	if err := validateOptions(&opts); err != nil {
		exitf("invalid parameters: %v\n", err)
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	format, err := resolveFormat(opts.Format, interactive)
	if err != nil {
		exitf("invalid parameters: %v\n", err)
	}

	logger, err := newLogger(opts.Verbose)
	if err != nil {
		exitf("failed to create logger: %v\n", err)
	}
	defer func() { _ = logger.Sync() }()

	inputDir := cmp.Or(opts.InputDir, defaultInputDir)
	fsys := afero.NewOsFs()

	if opts.Scaffold != 0 {
		created, err := scaffold(fsys, opts.Scaffold, inputDir)
		for _, path := range created {
			fmt.Println("created", path)
		}
		if err != nil {
			exitf("scaffold failed: %v\n", err)
		}
		fmt.Printf("register day%02d.Puzzle in %s/solutions.go\n", opts.Scaffold, solutionsDir)
		return
	}

	registry := solutions.Registry()
	cli := &Cli{
		Fs:        fsys,
		OutStream: os.Stdout,
		ErrStream: os.Stderr,
		Logger:    logger,
		Registry:  registry,
		InputDir:  inputDir,
		Format:    format,
		Color:     !opts.NoColor && interactive && !color.NoColor,
	}

	err = cli.Run(RunOptions{
		Day:     opts.Day,
		All:     opts.All,
		Example: opts.Example,
		Check:   opts.Check,
		Dump:    opts.Dump,
	})
	if err != nil && !silent(err) {
		fmt.Fprintln(os.Stderr, describeError(err, registry))
	}

	_ = logger.Sync()
	os.Exit(GetExitCode(err))
}

func validateOptions(opts *aocOptions) error {
	switch {
	case opts.All && opts.Day != 0:
		return errors.New("--all and --day are mutually exclusive")
	case opts.Check && opts.Dump:
		return errors.New("--check and --dump are mutually exclusive")
	case opts.Check && opts.Example:
		return errors.New("--check always uses the examples; drop --example")
	case opts.Day < 0 || opts.Day > 25:
		return fmt.Errorf("--day must be between 1 and 25, got %d", opts.Day)
	case opts.Scaffold != 0 && (opts.All || opts.Day != 0 || opts.Check || opts.Dump):
		return errors.New("--scaffold cannot be combined with other modes")
	}
	return nil
}

// resolveFormat parses the --format value. Without one, tables are used on a terminal.
func resolveFormat(s string, interactive bool) (enums.OutputFormat, error) {
	if s == "" {
		return lo.Ternary(interactive, enums.OutputFormatTable, enums.OutputFormatPlain), nil
	}
	return enums.ParseOutputFormat(s)
}

func exitf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	os.Exit(exitCodeError)
}

const cnfFileName = ".aoc2022.cnf"

func readConfigFile(parser *flags.Parser) error {
	var cnfFiles []string
	if currentUser, err := user.Current(); err == nil {
		cnfFiles = append(cnfFiles, filepath.Join(currentUser.HomeDir, cnfFileName))
	}

	cwd, _ := os.Getwd() // ignore err
	cwdCnfFile := filepath.Join(cwd, cnfFileName)
	cnfFiles = append(cnfFiles, cwdCnfFile)

	iniParser := flags.NewIniParser(parser)
	for _, cnfFile := range cnfFiles {
		// skip if missing
		if _, err := os.Stat(cnfFile); err != nil {
			continue
		}
		if err := iniParser.ParseFile(cnfFile); err != nil {
			return err
		}
	}

	return nil
}
