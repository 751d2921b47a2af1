package parser

// OptionalParser wraps a parser so that a missing match is not a failure.
type OptionalParser[T any] struct {
	base Parser[T]
}

// NewOptionalParser creates a parser that returns nil when base does not match.
func NewOptionalParser[T any](base Parser[T]) *OptionalParser[T] {
	return &OptionalParser[T]{base: base}
}

// Parse returns a pointer to the value of base, or nil without consuming input.
func (p *OptionalParser[T]) Parse(input string) (*T, string, error) {
	v, rest, err := p.base.Parse(input)
	if err != nil {
		return nil, input, nil
	}
	return &v, rest, nil
}

// Opt is a shorthand for NewOptionalParser.
func Opt[T any](base Parser[T]) Parser[*T] {
	return NewOptionalParser(base)
}
