package parser

// Case maps a literal tag to the value it stands for.
type Case[T any] struct {
	Tag   string
	Value T
}

// EnumParser parses one of a fixed, ordered set of tags into enum values.
// Tags are tried in declared order, so a tag that is a prefix of a later one
// must be declared after it.
type EnumParser[T any] struct {
	BaseParser[T]
	cases []Case[T]
}

// NewEnumParser creates a new enum parser with the given cases.
func NewEnumParser[T any](cases ...Case[T]) *EnumParser[T] {
	variants := make([]Parser[T], 0, len(cases))
	for _, c := range cases {
		variants = append(variants, Value(c.Value, Tag(c.Tag)))
	}

	p := &EnumParser[T]{cases: cases}
	p.BaseParser = BaseParser[T]{
		ParseFunc: Alt(variants...).Parse,
	}
	return p
}

// Tags returns the accepted tags in declared order.
func (p *EnumParser[T]) Tags() []string {
	tags := make([]string, 0, len(p.cases))
	for _, c := range p.cases {
		tags = append(tags, c.Tag)
	}
	return tags
}

// Enum is a shorthand for NewEnumParser.
func Enum[T any](cases ...Case[T]) Parser[T] {
	return NewEnumParser(cases...)
}

// NewEnumStringParser creates a parser for string enum values.
func NewEnumStringParser(values ...string) *EnumParser[string] {
	cases := make([]Case[string], 0, len(values))
	for _, v := range values {
		cases = append(cases, Case[string]{Tag: v, Value: v})
	}
	return NewEnumParser(cases...)
}
