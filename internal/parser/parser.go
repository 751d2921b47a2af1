package parser

// Parser is the core interface for consuming a prefix of text as a value of type T.
type Parser[T any] interface {
	// Parse consumes a prefix of input.
	// On success it returns the value and the remaining suffix of input.
	// On failure it returns a *Error and input unchanged.
	Parse(input string) (value T, rest string, err error)
}

// Func adapts an ordinary function to the Parser interface.
type Func[T any] func(input string) (T, string, error)

// Parse implements the Parser interface.
func (f Func[T]) Parse(input string) (T, string, error) {
	return f(input)
}

// BaseParser provides a foundation for implementing parsers.
// It runs ParseFunc and then ValidateFunc on the parsed value.
type BaseParser[T any] struct {
	ParseFunc    func(input string) (T, string, error)
	ValidateFunc func(T) error

	// Name describes the parser in validation failures.
	Name string
}

// Parse implements the Parser interface.
func (p *BaseParser[T]) Parse(input string) (T, string, error) {
	var zero T
	if p.ParseFunc == nil {
		return zero, input, noMatch("parse function", input)
	}

	value, rest, err := p.ParseFunc(input)
	if err != nil {
		return zero, input, err
	}

	if err := p.Validate(value); err != nil {
		return zero, input, noMatchCause(p.describe(), input, err)
	}
	return value, rest, nil
}

// Validate runs ValidateFunc, accepting every value when it is nil.
func (p *BaseParser[T]) Validate(value T) error {
	if p.ValidateFunc == nil {
		return nil
	}
	return p.ValidateFunc(value)
}

func (p *BaseParser[T]) describe() string {
	if p.Name != "" {
		return p.Name
	}
	return "valid value"
}

// ParseAll applies p to the whole input and requires it to consume all of it.
// Unconsumed input is reported as a KindTrailingInput error carrying the remainder.
func ParseAll[T any](p Parser[T], input string) (T, error) {
	var zero T
	value, rest, err := p.Parse(input)
	if err != nil {
		return zero, err
	}
	if rest != "" {
		return zero, &Error{Kind: KindTrailingInput, Remainder: rest}
	}
	return value, nil
}
