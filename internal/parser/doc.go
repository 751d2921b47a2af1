// Package parser provides a generic framework for parsing line-oriented puzzle
// input with small composable parsers.
//
// # Overview
//
// Every parser consumes a prefix of its input and returns the typed value it
// recognised together with the unconsumed remainder:
//
//	value, rest, err := parser.Int[int]().Parse("-42,7")
//	// value == -42, rest == ",7"
//
// A grammar is a fixed composition of parsers built once per input format and
// applied once to the whole input with ParseAll, which additionally requires
// the grammar to consume everything.
//
// # Key Design Principles
//
//  1. Type Safety Through Generics: parsers are strongly typed, so a grammar's
//     result type is checked at compile time.
//
//  2. Immutable Input: parsers never modify their input; the remainder is
//     always a suffix of the string they were given.
//
//  3. Ordered Choice: Alt tries its variants in declared order and the first
//     success wins. There is no longest-match preference.
//
//  4. Composable Validation: validation is separated from lexing and can be
//     attached with WithValidation or Verify.
//
// # Usage Examples
//
//	// "move 3 from 1 to 2"
//	move := parser.Tuple3(
//	    parser.Preceded(parser.Tag("move "), parser.Uint[uint]()),
//	    parser.Preceded(parser.Tag(" from "), parser.Uint[uint]()),
//	    parser.Preceded(parser.Tag(" to "), parser.Uint[uint]()),
//	)
//
//	// "[A]" where the letter must be uppercase
//	crate := parser.Delimited(
//	    parser.Char('['),
//	    parser.Verify(parser.AnyChar(), "uppercase letter", unicode.IsUpper),
//	    parser.Char(']'),
//	)
package parser
