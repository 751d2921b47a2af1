package parser

// TransformParser transforms the output of one parser into another type.
type TransformParser[T, U any] struct {
	BaseParser[U]
	innerParser Parser[T]
	transform   func(T) (U, error)
}

// NewTransformParser creates a parser that transforms values from type T to type U.
// A transform error fails the parse at the position where innerParser started.
func NewTransformParser[T, U any](innerParser Parser[T], transform func(T) (U, error)) *TransformParser[T, U] {
	p := &TransformParser[T, U]{
		innerParser: innerParser,
		transform:   transform,
	}

	p.BaseParser = BaseParser[U]{
		ParseFunc: func(input string) (U, string, error) {
			var zero U
			value, rest, err := innerParser.Parse(input)
			if err != nil {
				return zero, input, err
			}
			converted, err := transform(value)
			if err != nil {
				return zero, input, noMatchCause("convertible value", input, err)
			}
			return converted, rest, nil
		},
	}

	return p
}

// WithTransform creates a new parser that transforms the output of an existing parser.
func WithTransform[T, U any](parser Parser[T], transform func(T) (U, error)) Parser[U] {
	return NewTransformParser(parser, transform)
}
