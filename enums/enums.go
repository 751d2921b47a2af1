package enums

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/apstndb/advent-of-code-2022/internal/parser"
)

// OutputFormat represents the format used to print puzzle reports
//
//go:generate enumer -type=OutputFormat -trimprefix=OutputFormat -transform=snake_upper
type OutputFormat int

const (
	OutputFormatUnspecified OutputFormat = iota
	OutputFormatTable
	OutputFormatPlain
	OutputFormatYAML
	OutputFormatJSON
)

var outputFormatParser = parser.NewEnumParser(lo.FilterMap(OutputFormatValues(), func(f OutputFormat, _ int) (parser.Case[OutputFormat], bool) {
	return parser.Case[OutputFormat]{Tag: f.String(), Value: f}, f != OutputFormatUnspecified
})...)

// ParseOutputFormat parses a selectable format name case-insensitively.
func ParseOutputFormat(s string) (OutputFormat, error) {
	v, err := parser.ParseAll[OutputFormat](outputFormatParser, strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return OutputFormatUnspecified, fmt.Errorf("%q does not belong to OutputFormat values %v", s, outputFormatParser.Tags())
	}
	return v, nil
}
