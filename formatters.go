package main

// This file contains output formatters for puzzle reports.
// All formatters propagate write errors instead of logging and ignoring them.

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/apstndb/lox"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-runewidth"
	"github.com/ngicks/go-iterator-helper/hiter"
	"github.com/ngicks/go-iterator-helper/x/exp/xiter"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/apstndb/advent-of-code-2022/enums"
	"github.com/apstndb/advent-of-code-2022/internal/puzzle"
)

// writeBuffered writes to a temporary buffer first, and only writes to out if no error occurs.
// This is useful for formats that need to build the entire output before writing.
func writeBuffered(out io.Writer, buildFunc func(out io.Writer) error) error {
	var buf strings.Builder
	err := buildFunc(&buf)
	if err != nil {
		return err
	}

	output := buf.String()
	if output != "" {
		_, err = fmt.Fprint(out, output)
		return err
	}
	return nil
}

// FormatFunc writes a batch of reports.
type FormatFunc func(out io.Writer, reports []*puzzle.Report) error

func formatterFor(format enums.OutputFormat, colored bool) (FormatFunc, error) {
	st := newStatusStyle(colored)
	switch format {
	case enums.OutputFormatTable:
		return func(out io.Writer, reports []*puzzle.Report) error {
			return writeBuffered(out, func(out io.Writer) error { return writeTable(out, reports, st) })
		}, nil
	case enums.OutputFormatPlain, enums.OutputFormatUnspecified:
		return func(out io.Writer, reports []*puzzle.Report) error {
			return writeBuffered(out, func(out io.Writer) error { return writePlain(out, reports, st) })
		}, nil
	case enums.OutputFormatYAML:
		return func(out io.Writer, reports []*puzzle.Report) error {
			return writeStructured(out, reports, false)
		}, nil
	case enums.OutputFormatJSON:
		return func(out io.Writer, reports []*puzzle.Report) error {
			return writeStructured(out, reports, true)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %v", format)
	}
}

type statusStyle struct {
	pass, fail *color.Color
}

func newStatusStyle(colored bool) statusStyle {
	st := statusStyle{
		pass: color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{st.pass, st.fail} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return st
}

// status renders the outcome of a part. Parts of a plain solve that succeed have no status.
func (st statusStyle) status(r *puzzle.Report, p puzzle.PartResult) string {
	var mismatch *puzzle.MismatchError
	switch {
	case errors.As(p.Err, &mismatch):
		return st.fail.Sprint("MISMATCH")
	case p.Err != nil:
		return st.fail.Sprint("FAIL")
	case r.Example && p.Want != "":
		return st.pass.Sprint("PASS")
	default:
		return ""
	}
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}

func hasWant(reports []*puzzle.Report) bool {
	return slices.ContainsFunc(reports, func(r *puzzle.Report) bool { return r.Example })
}

// writeTable writes the reports as an ASCII table with one row per part.
func writeTable(w io.Writer, reports []*puzzle.Report, st statusStyle) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithTrimSpace(tw.Off),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	).Configure(func(config *tablewriter.Config) {
		config.Row.Formatting.AutoWrap = tw.WrapNone
	})

	checking := hasWant(reports)
	headers := []string{"Day", "Title", "Part", "Answer", "Elapsed"}
	if checking {
		headers = append(headers, "Want", "Status")
	}
	table.Header(headers)

	for _, r := range reports {
		for _, p := range r.Parts {
			row := []string{
				fmt.Sprint(r.Day),
				r.Title,
				fmt.Sprint(p.Part),
				answerCell(p),
				formatDuration(p.Elapsed),
			}
			if checking {
				row = append(row, p.Want, st.status(r, p))
			}
			if err := table.Append(row); err != nil {
				return fmt.Errorf("failed to append row: %w", err)
			}
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// answerCell returns the text shown in the answer column: the answer or the error.
func answerCell(p puzzle.PartResult) string {
	if p.Err != nil && p.Answer == "" {
		return "error: " + p.Err.Error()
	}
	return strings.TrimSuffix(p.Answer, "\n")
}

func partLabel(p puzzle.PartResult) string {
	return fmt.Sprintf("Part %d:", p.Part)
}

// writePlain writes one block per day. Multi-line answers start on their own line.
func writePlain(w io.Writer, reports []*puzzle.Report, st statusStyle) error {
	for _, r := range reports {
		if _, err := fmt.Fprintf(w, "Day %d: %s%s (parse %s)\n",
			r.Day, r.Title, lox.IfOrEmpty(r.Example, " [example]"), formatDuration(r.ParseTime)); err != nil {
			return err
		}

		width := hiter.Max(xiter.Map(func(p puzzle.PartResult) int {
			return runewidth.StringWidth(partLabel(p))
		}, slices.Values(r.Parts)))

		for _, p := range r.Parts {
			label := runewidth.FillRight(partLabel(p), width)
			status := lox.IfOrEmpty(st.status(r, p) != "", " "+st.status(r, p))
			var err error
			switch {
			case p.Err != nil && p.Answer == "":
				_, err = fmt.Fprintf(w, "  %s error: %v%s\n", label, p.Err, status)
			case strings.Contains(p.Answer, "\n"):
				_, err = fmt.Fprintf(w, "  %s (%s)%s\n%s", label, formatDuration(p.Elapsed), status, indent(p.Answer, "    "))
			default:
				_, err = fmt.Fprintf(w, "  %s %s (%s)%s\n", label, p.Answer, formatDuration(p.Elapsed), status)
			}
			if err != nil {
				return err
			}
			if p.Err != nil && p.Answer != "" {
				if _, err := fmt.Fprintf(w, "    %v\n", p.Err); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var sb strings.Builder
	for _, l := range lines {
		if l == "" {
			continue
		}
		sb.WriteString(prefix + l)
	}
	if !strings.HasSuffix(s, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}

type partView struct {
	Part    int    `yaml:"part"`
	Answer  string `yaml:"answer,omitempty"`
	Want    string `yaml:"want,omitempty"`
	Elapsed string `yaml:"elapsed"`
	Error   string `yaml:"error,omitempty"`
}

type reportView struct {
	Day       int        `yaml:"day"`
	Title     string     `yaml:"title"`
	Example   bool       `yaml:"example,omitempty"`
	ParseTime string     `yaml:"parse_time"`
	Parts     []partView `yaml:"parts"`
}

func toView(r *puzzle.Report) reportView {
	v := reportView{
		Day:       r.Day,
		Title:     r.Title,
		Example:   r.Example,
		ParseTime: formatDuration(r.ParseTime),
	}
	for _, p := range r.Parts {
		pv := partView{
			Part:    p.Part,
			Answer:  p.Answer,
			Want:    p.Want,
			Elapsed: formatDuration(p.Elapsed),
		}
		if p.Err != nil {
			pv.Error = p.Err.Error()
		}
		v.Parts = append(v.Parts, pv)
	}
	return v
}

// writeStructured encodes the reports as YAML, or as JSON when asJSON is set.
func writeStructured(w io.Writer, reports []*puzzle.Report, asJSON bool) error {
	options := []yaml.EncodeOption{yaml.UseJSONMarshaler()}
	if asJSON {
		options = append(options, yaml.JSON())
	}

	views := make([]reportView, 0, len(reports))
	for _, r := range reports {
		views = append(views, toView(r))
	}
	return yaml.NewEncoder(w, options...).Encode(views)
}
