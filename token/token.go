// Package token defines the lexical vocabulary of the Prien language.
package token

import (
	"fmt"

	"github.com/alex-seifarth/prien/utf8"
)

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	EndOfFile Kind = iota

	// Single-character tokens.
	LeftParen       // '('
	RightParen      // ')'
	LeftBrace       // '{'
	RightBrace      // '}'
	LeftBracket     // '['
	RightBracket    // ']'
	Star            // '*'
	Minus           // '-'
	Plus            // '+'
	Slash           // '/'
	Assign          // '='
	Ampersand       // '&'
	Vert            // '|'
	Tilde           // '~'
	ExclamationMark // '!'
	Caret           // '^'
	Less            // '<'
	Greater         // '>'
	Colon           // ':'
	Semicolon       // ';'
	Comma           // ','
	Dot             // '.'
	Hash            // '#'

	// Compound operators.
	LessThan    // '<='
	GreaterThan // '>='
	Implies     // '=>'
	AddAssign   // '+='
	SubAssign   // '-='
	MulAssign   // '*='
	DivAssign   // '/='
	AndAssign   // '&='
	OrAssign    // '|='
	XorAssign   // '^='
	LogicAnd    // '&&'
	LogicOr     // '||'
	RightArrow  // '->'
	LeftArrow   // '<-'
	Range       // '..'
	ScopeSep    // '::'
	Equals      // '=='
	Unequal     // '!='
	ShiftRight  // '>>'
	ShiftLeft   // '<<'

	// Literals and identifiers.
	Identifier
	Comment
	Integer
	FloatNumber
	String
	Char

	// Reserved keywords.
	KwImport
	KwTypeI8
	KwTypeI16
	KwTypeI32
	KwTypeI64
	KwTypeU8
	KwTypeU16
	KwTypeU32
	KwTypeU64
	KwTypeBool
	KwTypeF32
	KwTypeF64
	KwTypeChar
	KwFn
	KwStruct
	KwEnum
	KwType
	KwBreak
	KwContinue
	KwExpect
	KwLet
	KwMut
	KwTrue
	KwFalse
)

var kindTexts = map[Kind]string{
	LeftParen:       "(",
	RightParen:      ")",
	LeftBrace:       "{",
	RightBrace:      "}",
	LeftBracket:     "[",
	RightBracket:    "]",
	Star:            "*",
	Minus:           "-",
	Plus:            "+",
	Slash:           "/",
	Assign:          "=",
	Ampersand:       "&",
	Vert:            "|",
	Tilde:           "~",
	ExclamationMark: "!",
	Caret:           "^",
	Less:            "<",
	Greater:         ">",
	Colon:           ":",
	Semicolon:       ";",
	Comma:           ",",
	Dot:             ".",
	Hash:            "#",
	LessThan:        "<=",
	GreaterThan:     ">=",
	Implies:         "=>",
	AddAssign:       "+=",
	SubAssign:       "-=",
	MulAssign:       "*=",
	DivAssign:       "/=",
	AndAssign:       "&=",
	OrAssign:        "|=",
	XorAssign:       "^=",
	LogicAnd:        "&&",
	LogicOr:         "||",
	RightArrow:      "->",
	LeftArrow:       "<-",
	Range:           "..",
	ScopeSep:        "::",
	Equals:          "==",
	Unequal:         "!=",
	ShiftRight:      ">>",
	ShiftLeft:       "<<",
	KwImport:        "import",
	KwTypeI8:        "i8",
	KwTypeI16:       "i16",
	KwTypeI32:       "i32",
	KwTypeI64:       "i64",
	KwTypeU8:        "u8",
	KwTypeU16:       "u16",
	KwTypeU32:       "u32",
	KwTypeU64:       "u64",
	KwTypeBool:      "bool",
	KwTypeF32:       "f32",
	KwTypeF64:       "f64",
	KwTypeChar:      "char",
	KwFn:            "fn",
	KwStruct:        "struct",
	KwEnum:          "enum",
	KwType:          "type",
	KwBreak:         "break",
	KwContinue:      "continue",
	KwExpect:        "expect",
	KwLet:           "let",
	KwMut:           "mut",
	KwTrue:          "true",
	KwFalse:         "false",
}

// Text returns the fixed surface text of a punctuation, operator, or keyword
// kind. It returns "" for EndOfFile and the literal kinds, whose text lives
// on the token itself.
func (k Kind) Text() string {
	return kindTexts[k]
}

// IsKeyword reports whether k is a reserved keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwImport && k <= KwFalse
}

// Token is one lexical unit of a Prien source text. Only the fields
// meaningful for Kind are set: every token carries Start; multi-character
// literals additionally carry End; Identifier, Comment, Integer,
// FloatNumber, and String carry their source text; Integer, FloatNumber,
// and Char carry the decoded value.
type Token struct {
	Kind   Kind
	Start  utf8.Position
	End    utf8.Position
	Source string
	Int    uint64
	Float  float64
	Char   rune
	Base   IntegerBase
}

// Text returns the surface text of the token: the literal source for
// literal kinds, the fixed text for everything else, "" for EndOfFile.
// String literals yield their decoded content.
func (t Token) Text() string {
	switch t.Kind {
	case Identifier, Comment, Integer, FloatNumber, String:
		return t.Source
	case Char:
		return string(t.Char)
	default:
		return t.Kind.Text()
	}
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %s}", t.Kind, t.Text(), t.Start)
}
