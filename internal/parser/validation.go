package parser

import (
	"fmt"
)

// Validator is a function type for value validation.
type Validator[T any] func(value T) error

// ChainValidators combines multiple validators into a single validator.
// All validators must pass for the value to be considered valid.
func ChainValidators[T any](validators ...Validator[T]) Validator[T] {
	return func(value T) error {
		for _, validator := range validators {
			if err := validator(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithValidation wraps an existing parser with additional validation.
// A value rejected by any validator turns the success into a KindNoMatch failure.
func WithValidation[T any](parser Parser[T], validators ...Validator[T]) Parser[T] {
	return &BaseParser[T]{
		ParseFunc:    parser.Parse,
		ValidateFunc: ChainValidators(validators...),
	}
}

// Verify accepts only values for which pred returns true.
// The name describes the accepted values in error messages.
func Verify[T any](parser Parser[T], name string, pred func(T) bool) Parser[T] {
	return &BaseParser[T]{
		Name:      name,
		ParseFunc: parser.Parse,
		ValidateFunc: func(value T) error {
			if !pred(value) {
				return fmt.Errorf("%v is not a %s", formatValue(value), name)
			}
			return nil
		},
	}
}

func formatValue(v any) string {
	if r, ok := v.(rune); ok {
		return fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf("%v", v)
}

// CreateRangeValidator creates a validation function for numeric types with min/max constraints.
func CreateRangeValidator[T interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}](min, max *T) Validator[T] {
	return func(v T) error {
		if min != nil && v < *min {
			return fmt.Errorf("value %v is less than minimum %v", v, *min)
		}
		if max != nil && v > *max {
			return fmt.Errorf("value %v is greater than maximum %v", v, *max)
		}
		return nil
	}
}
