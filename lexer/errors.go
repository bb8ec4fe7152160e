package lexer

import (
	"fmt"

	"github.com/alex-seifarth/prien/utf8"
)

// UTF8Error reports an encoding error in the source text. Pos is the
// position of the last character decoded before the broken sequence.
type UTF8Error struct {
	Pos utf8.Position
}

func (e UTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 encoding (%s)", e.Pos)
}

// UnexpectedEOFError reports an end of input inside a literal or escape.
type UnexpectedEOFError struct {
	Pos utf8.Position
}

func (e UnexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected end of input (%s)", e.Pos)
}

// UnexpectedCharError reports a character that cannot appear at its
// position: a stray byte, a wrong closing delimiter, or an unrecognized
// escape character.
type UnexpectedCharError struct {
	Pos  utf8.Position
	Char rune
}

func (e UnexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected character %q (%s)", e.Char, e.Pos)
}

// InvalidEscapeError reports a unicode escape whose value is not a valid
// Unicode scalar. It carries the raw hex digits and the computed value.
type InvalidEscapeError struct {
	Pos    utf8.Position
	Digits string
	Value  uint32
}

func (e InvalidEscapeError) Error() string {
	return fmt.Sprintf("invalid unicode escape \\u{%s}: %#x is not a scalar value (%s)", e.Digits, e.Value, e.Pos)
}

// ExpectedDigitError reports a numeric literal or exponent with no digits.
type ExpectedDigitError struct {
	Pos utf8.Position
}

func (e ExpectedDigitError) Error() string {
	return fmt.Sprintf("expected a digit (%s)", e.Pos)
}

// IntegerError reports an integer literal that could not be converted,
// e.g. one that overflows 64 bits. Digits is the literal text with the
// digit-group separators removed.
type IntegerError struct {
	Pos    utf8.Position
	Digits string
	Err    error
}

func (e IntegerError) Error() string {
	return fmt.Sprintf("invalid integer literal %q: %v (%s)", e.Digits, e.Err, e.Pos)
}

func (e IntegerError) Unwrap() error {
	return e.Err
}

// FloatError reports a float literal that could not be converted. Source is
// the full literal text including digit-group separators.
type FloatError struct {
	Pos    utf8.Position
	Source string
	Err    error
}

func (e FloatError) Error() string {
	return fmt.Sprintf("invalid float literal %q: %v (%s)", e.Source, e.Err, e.Pos)
}

func (e FloatError) Unwrap() error {
	return e.Err
}
