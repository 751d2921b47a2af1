package parser

import (
	"strings"
	"sync"
)

// Pair holds the results of a two-parser sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the results of a three-parser sequence.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple runs a then b on the remainder of a and returns both values.
func Tuple[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return Func[Pair[A, B]](func(input string) (Pair[A, B], string, error) {
		var zero Pair[A, B]
		va, rest, err := a.Parse(input)
		if err != nil {
			return zero, input, err
		}
		vb, rest, err := b.Parse(rest)
		if err != nil {
			return zero, input, err
		}
		return Pair[A, B]{First: va, Second: vb}, rest, nil
	})
}

// Tuple3 runs a, b and c in order and returns all three values.
func Tuple3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Triple[A, B, C]] {
	return Map(Tuple(a, Tuple(b, c)), func(p Pair[A, Pair[B, C]]) Triple[A, B, C] {
		return Triple[A, B, C]{First: p.First, Second: p.Second.First, Third: p.Second.Second}
	})
}

// Preceded runs prefix then p and keeps only the value of p.
func Preceded[P, T any](prefix Parser[P], p Parser[T]) Parser[T] {
	return Map(Tuple(prefix, p), func(v Pair[P, T]) T { return v.Second })
}

// Terminated runs p then suffix and keeps only the value of p.
func Terminated[T, S any](p Parser[T], suffix Parser[S]) Parser[T] {
	return Map(Tuple(p, suffix), func(v Pair[T, S]) T { return v.First })
}

// Delimited runs left, p and right and keeps only the value of p.
func Delimited[L, T, R any](left Parser[L], p Parser[T], right Parser[R]) Parser[T] {
	return Preceded(left, Terminated(p, right))
}

// SeparatedPair runs a, sep and b and keeps the values of a and b.
func SeparatedPair[A, S, B any](a Parser[A], sep Parser[S], b Parser[B]) Parser[Pair[A, B]] {
	return Tuple(Terminated(a, sep), b)
}

// Alt tries each variant on the same input in declared order and returns the
// first success. When every variant fails, the error lists all expectations
// and wraps every variant error.
func Alt[T any](variants ...Parser[T]) Parser[T] {
	return Func[T](func(input string) (T, string, error) {
		var zero T
		errs := make([]error, 0, len(variants))
		for _, variant := range variants {
			value, rest, err := variant.Parse(input)
			if err == nil {
				return value, rest, nil
			}
			errs = append(errs, err)
		}

		expected := make([]string, 0, len(errs))
		for _, err := range errs {
			expected = append(expected, expectation(err))
		}
		return zero, input, &Error{
			Kind:      KindNoMatch,
			Expected:  strings.Join(expected, " or "),
			Remainder: input,
			Variants:  errs,
		}
	})
}

// many repeats p while it succeeds. A success that consumes nothing is a failure.
func many[T any](p Parser[T], min int) Parser[[]T] {
	return Func[[]T](func(input string) ([]T, string, error) {
		var values []T
		rest := input
		for {
			value, next, err := p.Parse(rest)
			if err != nil {
				if len(values) < min {
					return nil, input, err
				}
				break
			}
			if len(next) >= len(rest) {
				return nil, input, noMatch("progress under repetition", rest)
			}
			values = append(values, value)
			rest = next
		}
		if values == nil {
			values = []T{}
		}
		return values, rest, nil
	})
}

// Many0 repeats p greedily until it fails and collects the values in parse order.
// p must consume input whenever it succeeds.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return many(p, 0)
}

// Many1 is Many0 that additionally fails when p does not match at least once.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return many(p, 1)
}

// separatedList parses elements interleaved with sep. When sep matches but the
// following element does not, the list ends before that separator.
func separatedList[S, T any](sep Parser[S], elem Parser[T], min int) Parser[[]T] {
	next := Preceded(sep, elem)
	return Func[[]T](func(input string) ([]T, string, error) {
		first, rest, err := elem.Parse(input)
		if err != nil {
			if min > 0 {
				return nil, input, err
			}
			return []T{}, input, nil
		}

		values := []T{first}
		for {
			value, after, err := next.Parse(rest)
			if err != nil {
				break
			}
			if len(after) >= len(rest) {
				return nil, input, noMatch("progress under repetition", rest)
			}
			values = append(values, value)
			rest = after
		}
		return values, rest, nil
	})
}

// SeparatedList0 parses zero or more elements separated by sep.
func SeparatedList0[S, T any](sep Parser[S], elem Parser[T]) Parser[[]T] {
	return separatedList(sep, elem, 0)
}

// SeparatedList1 parses one or more elements separated by sep.
func SeparatedList1[S, T any](sep Parser[S], elem Parser[T]) Parser[[]T] {
	return separatedList(sep, elem, 1)
}

// Map converts the value of a successful parse with f.
// The remainder and failures of p are unchanged.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return Func[U](func(input string) (U, string, error) {
		var zero U
		value, rest, err := p.Parse(input)
		if err != nil {
			return zero, input, err
		}
		return f(value), rest, nil
	})
}

// Value replaces the value of a successful parse with v.
func Value[T, U any](v U, p Parser[T]) Parser[U] {
	return Map(p, func(T) U { return v })
}

// Recognize returns the text consumed by p instead of its value.
func Recognize[T any](p Parser[T]) Parser[string] {
	return Func[string](func(input string) (string, string, error) {
		_, rest, err := p.Parse(input)
		if err != nil {
			return "", input, err
		}
		return input[:len(input)-len(rest)], rest, nil
	})
}

// Lazy defers building a parser until it is first used.
// It allows recursive grammars such as nested lists.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	get := sync.OnceValue(build)
	return Func[T](func(input string) (T, string, error) {
		return get().Parse(input)
	})
}
