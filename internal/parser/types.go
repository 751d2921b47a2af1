package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Char matches exactly the rune r.
func Char(r rune) Parser[rune] {
	expected := strconv.QuoteRune(r)
	return Func[rune](func(input string) (rune, string, error) {
		got, size := utf8.DecodeRuneInString(input)
		if size == 0 || got != r {
			return 0, input, noMatch(expected, input)
		}
		return r, input[size:], nil
	})
}

// Newline matches a single '\n'.
func Newline() Parser[rune] {
	return Char('\n')
}

// OneOf matches any single rune contained in chars.
func OneOf(chars string) Parser[rune] {
	return Satisfy("one of "+strconv.Quote(chars), func(r rune) bool {
		return strings.ContainsRune(chars, r)
	})
}

// AnyChar matches any single rune. It fails only at the end of input.
func AnyChar() Parser[rune] {
	return Satisfy("any character", func(rune) bool { return true })
}

// Satisfy matches a single rune for which pred returns true.
// The name is used only for error messages.
func Satisfy(name string, pred func(rune) bool) Parser[rune] {
	return Func[rune](func(input string) (rune, string, error) {
		r, size := utf8.DecodeRuneInString(input)
		if size == 0 || !pred(r) {
			return 0, input, noMatch(name, input)
		}
		return r, input[size:], nil
	})
}

// Tag matches the literal text s.
func Tag(s string) Parser[string] {
	expected := strconv.Quote(s)
	return Func[string](func(input string) (string, string, error) {
		if !strings.HasPrefix(input, s) {
			return "", input, noMatch(expected, input)
		}
		return s, input[len(s):], nil
	})
}

// TakeWhile1 matches the longest non-empty run of runes satisfying pred.
func TakeWhile1(name string, pred func(rune) bool) Parser[string] {
	return Func[string](func(input string) (string, string, error) {
		end := strings.IndexFunc(input, func(r rune) bool { return !pred(r) })
		if end < 0 {
			end = len(input)
		}
		if end == 0 {
			return "", input, noMatch(name, input)
		}
		return input[:end], input[end:], nil
	})
}

func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isASCIIAlpha(r rune) bool {
	return r < utf8.RuneSelf && unicode.IsLetter(r)
}

// Digit1 matches a non-empty run of ASCII digits.
func Digit1() Parser[string] {
	return TakeWhile1("digit", isASCIIDigit)
}

// Alpha1 matches a non-empty run of ASCII letters.
func Alpha1() Parser[string] {
	return TakeWhile1("letter", isASCIIAlpha)
}

// Uint matches a run of digits and converts it to T.
// Values that do not fit in T fail rather than wrap.
func Uint[T constraints.Unsigned]() Parser[T] {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	return WithTransform(Digit1(), func(digits string) (T, error) {
		n, err := strconv.ParseUint(digits, 10, bits)
		if err != nil {
			return 0, err
		}
		return T(n), nil
	})
}

// Int matches an optional '-' followed by a run of digits and converts it to T.
// Values that do not fit in T fail rather than wrap.
func Int[T constraints.Signed]() Parser[T] {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	return WithTransform(
		Recognize(Tuple(Opt(Char('-')), Digit1())),
		func(text string) (T, error) {
			n, err := strconv.ParseInt(text, 10, bits)
			if err != nil {
				return 0, err
			}
			return T(n), nil
		},
	)
}
