// Package lexer turns Prien source text into a stream of tokens.
package lexer

import (
	"strconv"

	"github.com/alex-seifarth/prien/token"
	"github.com/alex-seifarth/prien/utf8"
)

// Lexer produces tokens from a UTF-8 encoded byte buffer with exactly one
// token of look-ahead.
type Lexer struct {
	stream *utf8.Stream
	tok    token.Token
	err    error
}

// New creates a lexer over data and scans the first token.
func New(data []byte) *Lexer {
	l := &Lexer{stream: utf8.NewStream(data)}
	l.tok, l.err = l.scan()

	return l
}

// Peek returns the next token or lexical error without consuming it.
// Repeated calls without an intervening Get return the same result.
func (l *Lexer) Peek() (token.Token, error) {
	return l.tok, l.err
}

// Get returns the next token and advances. A lexical error is sticky: once
// scanning has failed, Get keeps returning the same error.
func (l *Lexer) Get() (token.Token, error) {
	tok, err := l.tok, l.err
	if err == nil {
		l.tok, l.err = l.scan()
	}

	return tok, err
}

// Pos returns the position of the last character consumed by the lexer.
func (l *Lexer) Pos() utf8.Position {
	return l.stream.Pos()
}

// Lex scans all of data and returns the tokens up to and including
// EndOfFile, or the tokens scanned so far and the first lexical error.
func Lex(data []byte) ([]token.Token, error) {
	l := New(data)
	var tokens []token.Token
	for {
		tok, err := l.Get()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EndOfFile {
			return tokens, nil
		}
	}
}

var keywords = map[string]token.Kind{
	"import":   token.KwImport,
	"i8":       token.KwTypeI8,
	"i16":      token.KwTypeI16,
	"i32":      token.KwTypeI32,
	"i64":      token.KwTypeI64,
	"u8":       token.KwTypeU8,
	"u16":      token.KwTypeU16,
	"u32":      token.KwTypeU32,
	"u64":      token.KwTypeU64,
	"bool":     token.KwTypeBool,
	"f32":      token.KwTypeF32,
	"f64":      token.KwTypeF64,
	"char":     token.KwTypeChar,
	"fn":       token.KwFn,
	"struct":   token.KwStruct,
	"enum":     token.KwEnum,
	"type":     token.KwType,
	"break":    token.KwBreak,
	"continue": token.KwContinue,
	"expect":   token.KwExpect,
	"let":      token.KwLet,
	"mut":      token.KwMut,
	"true":     token.KwTrue,
	"false":    token.KwFalse,
}

func (l *Lexer) getChar() (rune, bool, error) {
	ch, ok, err := l.stream.Get()
	if err != nil {
		return 0, false, UTF8Error{Pos: l.Pos()}
	}

	return ch, ok, nil
}

func (l *Lexer) scan() (token.Token, error) {
	for {
		ch, ok, err := l.getChar()
		if err != nil {
			return token.Token{}, err
		}
		if !ok {
			return token.Token{Kind: token.EndOfFile, Start: l.Pos()}, nil
		}
		switch ch {
		case ' ', '\n', '\t':
			continue
		}

		return l.scanChar(ch)
	}
}

func (l *Lexer) scanChar(ch rune) (token.Token, error) {
	switch ch {
	case '(':
		return l.single(token.LeftParen), nil
	case ')':
		return l.single(token.RightParen), nil
	case '{':
		return l.single(token.LeftBrace), nil
	case '}':
		return l.single(token.RightBrace), nil
	case '[':
		return l.single(token.LeftBracket), nil
	case ']':
		return l.single(token.RightBracket), nil
	case '~':
		return l.single(token.Tilde), nil
	case ';':
		return l.single(token.Semicolon), nil
	case ',':
		return l.single(token.Comma), nil
	case '#':
		return l.single(token.Hash), nil
	case '!':
		return l.compound(token.ExclamationMark, map[rune]token.Kind{'=': token.Unequal}), nil
	case '<':
		return l.compound(token.Less, map[rune]token.Kind{'=': token.LessThan, '-': token.LeftArrow, '<': token.ShiftLeft}), nil
	case '>':
		return l.compound(token.Greater, map[rune]token.Kind{'=': token.GreaterThan, '>': token.ShiftRight}), nil
	case '=':
		return l.compound(token.Assign, map[rune]token.Kind{'=': token.Equals, '>': token.Implies}), nil
	case '+':
		return l.compound(token.Plus, map[rune]token.Kind{'=': token.AddAssign}), nil
	case '-':
		return l.compound(token.Minus, map[rune]token.Kind{'=': token.SubAssign, '>': token.RightArrow}), nil
	case '*':
		return l.compound(token.Star, map[rune]token.Kind{'=': token.MulAssign}), nil
	case '&':
		return l.compound(token.Ampersand, map[rune]token.Kind{'&': token.LogicAnd, '=': token.AndAssign}), nil
	case '|':
		return l.compound(token.Vert, map[rune]token.Kind{'|': token.LogicOr, '=': token.OrAssign}), nil
	case '^':
		return l.compound(token.Caret, map[rune]token.Kind{'=': token.XorAssign}), nil
	case '.':
		return l.compound(token.Dot, map[rune]token.Kind{'.': token.Range}), nil
	case ':':
		return l.compound(token.Colon, map[rune]token.Kind{':': token.ScopeSep}), nil
	case '/':
		return l.scanSlash()
	case '"':
		return l.scanString()
	case '\'':
		return l.scanCharLiteral()
	}

	switch {
	case isIdentStart(ch):
		return l.scanIdentifier(ch)
	case isDigit(ch):
		return l.scanNumber(ch)
	}

	return token.Token{}, UnexpectedCharError{Pos: l.Pos(), Char: ch}
}

func (l *Lexer) single(kind token.Kind) token.Token {
	return token.Token{Kind: kind, Start: l.Pos()}
}

// compound emits a two-character operator when the peeked character matches
// one of the alternatives, otherwise the single-character kind.
func (l *Lexer) compound(single token.Kind, alts map[rune]token.Kind) token.Token {
	pos := l.Pos()
	if ch, ok, err := l.stream.Peek(); err == nil && ok {
		if kind, found := alts[ch]; found {
			l.stream.Advance()

			return token.Token{Kind: kind, Start: pos}
		}
	}

	return token.Token{Kind: single, Start: pos}
}

// scanSlash decides between '/', '/=', and a line comment. The comment text
// is collected verbatim up to, but excluding, the next newline.
func (l *Lexer) scanSlash() (token.Token, error) {
	pos := l.Pos()
	ch, ok, err := l.stream.Peek()
	if err != nil || !ok {
		return token.Token{Kind: token.Slash, Start: pos}, nil
	}
	switch ch {
	case '=':
		l.stream.Advance()

		return token.Token{Kind: token.DivAssign, Start: pos}, nil
	case '/':
		l.stream.Advance()
		var text []rune
		for {
			ch, ok, err := l.stream.Peek()
			if err != nil || !ok || ch == '\n' {
				break
			}
			l.stream.Advance()
			text = append(text, ch)
		}

		return token.Token{Kind: token.Comment, Start: pos, Source: string(text)}, nil
	}

	return token.Token{Kind: token.Slash, Start: pos}, nil
}

func (l *Lexer) scanIdentifier(first rune) (token.Token, error) {
	start := l.Pos()
	text := []rune{first}
	for {
		ch, ok, err := l.stream.Peek()
		if err != nil || !ok || !isIdentChar(ch) {
			break
		}
		l.stream.Advance()
		text = append(text, ch)
	}

	str := string(text)
	if kind, ok := keywords[str]; ok {
		return token.Token{Kind: kind, Start: start}, nil
	}

	return token.Token{Kind: token.Identifier, Start: start, End: l.Pos(), Source: str}, nil
}

// scanNumber dispatches on a '0x'/'0b' prefix into hexadecimal or binary
// scanning, otherwise scans a decimal literal that may turn into a float.
func (l *Lexer) scanNumber(first rune) (token.Token, error) {
	start := l.Pos()
	source := []rune{first}
	if ch, ok, err := l.stream.Peek(); err == nil && ok && first == '0' {
		switch ch {
		case 'x', 'X':
			l.stream.Advance()
			source = append(source, ch)

			return l.scanRadix(source, start, token.Hexadecimal, isHexDigit)
		case 'b', 'B':
			l.stream.Advance()
			source = append(source, ch)

			return l.scanRadix(source, start, token.Binary, isBinDigit)
		}
	}

	return l.scanDecimal(source, start)
}

func (l *Lexer) scanRadix(source []rune, start utf8.Position, base token.IntegerBase, isBaseDigit func(rune) bool) (token.Token, error) {
	var digits []rune
scan:
	for {
		ch, ok, err := l.stream.Peek()
		if err != nil || !ok {
			break
		}
		switch {
		case isBaseDigit(ch):
			l.stream.Advance()
			source = append(source, ch)
			digits = append(digits, ch)
		case ch == '\'':
			l.stream.Advance()
			source = append(source, ch)
		default:
			break scan
		}
	}
	if len(digits) == 0 {
		return token.Token{}, ExpectedDigitError{Pos: l.Pos()}
	}

	return l.integerToken(string(digits), string(source), start, base)
}

func (l *Lexer) scanDecimal(source []rune, start utf8.Position) (token.Token, error) {
	digits := append([]rune(nil), source...)
	for {
		ch, ok, err := l.stream.Peek()
		if err != nil || !ok {
			return l.integerToken(string(digits), string(source), start, token.Decimal)
		}
		switch {
		case isDigit(ch):
			l.stream.Advance()
			source = append(source, ch)
			digits = append(digits, ch)
		case ch == '\'':
			l.stream.Advance()
			source = append(source, ch)
		case ch == '.':
			l.stream.Advance()
			source = append(source, ch)
			digits = append(digits, ch)

			return l.scanFraction(start, source, digits)
		case ch == 'E' || ch == 'e':
			l.stream.Advance()
			source = append(source, ch)
			digits = append(digits, ch)

			return l.scanExponent(start, source, digits)
		default:
			return l.integerToken(string(digits), string(source), start, token.Decimal)
		}
	}
}

func (l *Lexer) scanFraction(start utf8.Position, source, digits []rune) (token.Token, error) {
	for {
		ch, ok, err := l.stream.Peek()
		if err != nil || !ok {
			return l.floatToken(string(digits), string(source), start)
		}
		switch {
		case isDigit(ch):
			l.stream.Advance()
			source = append(source, ch)
			digits = append(digits, ch)
		case ch == '\'':
			l.stream.Advance()
			source = append(source, ch)
		case ch == 'E' || ch == 'e':
			l.stream.Advance()
			source = append(source, ch)
			digits = append(digits, ch)

			return l.scanExponent(start, source, digits)
		default:
			return l.floatToken(string(digits), string(source), start)
		}
	}
}

// scanExponent scans an optional single sign followed by at least one digit.
func (l *Lexer) scanExponent(start utf8.Position, source, digits []rune) (token.Token, error) {
	signAllowed := true
	oneDigit := false
	for {
		ch, ok, err := l.stream.Peek()
		if err != nil || !ok {
			break
		}
		if ch == '+' || ch == '-' {
			if !signAllowed {
				break
			}
			l.stream.Advance()
			source = append(source, ch)
			digits = append(digits, ch)
			signAllowed = false
		} else if isDigit(ch) {
			l.stream.Advance()
			source = append(source, ch)
			digits = append(digits, ch)
			signAllowed = false
			oneDigit = true
		} else {
			break
		}
	}
	if !oneDigit {
		return token.Token{}, ExpectedDigitError{Pos: l.Pos()}
	}

	return l.floatToken(string(digits), string(source), start)
}

func (l *Lexer) integerToken(digits, source string, start utf8.Position, base token.IntegerBase) (token.Token, error) {
	value, err := strconv.ParseUint(digits, base.Radix(), 64)
	if err != nil {
		return token.Token{}, IntegerError{Pos: start, Digits: digits, Err: err}
	}

	return token.Token{Kind: token.Integer, Start: start, End: l.Pos(), Source: source, Int: value, Base: base}, nil
}

func (l *Lexer) floatToken(digits, source string, start utf8.Position) (token.Token, error) {
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return token.Token{}, FloatError{Pos: start, Source: source, Err: err}
	}

	return token.Token{Kind: token.FloatNumber, Start: start, End: l.Pos(), Source: source, Float: value}, nil
}

// scanString collects the decoded content of a string literal, with escape
// sequences applied, up to the closing quote.
func (l *Lexer) scanString() (token.Token, error) {
	start := l.Pos()
	var text []rune
	for {
		ch, ok, err := l.getChar()
		if err != nil {
			return token.Token{}, err
		}
		if !ok {
			return token.Token{}, UnexpectedEOFError{Pos: l.Pos()}
		}
		switch ch {
		case '"':
			return token.Token{Kind: token.String, Start: start, End: l.Pos(), Source: string(text)}, nil
		case '\\':
			escaped, err := l.scanEscape()
			if err != nil {
				return token.Token{}, err
			}
			text = append(text, escaped)
		default:
			text = append(text, ch)
		}
	}
}

func (l *Lexer) scanCharLiteral() (token.Token, error) {
	start := l.Pos()
	ch, ok, err := l.stream.Get()
	if err != nil {
		return token.Token{}, UTF8Error{Pos: start}
	}
	if !ok {
		return token.Token{}, UnexpectedEOFError{Pos: start}
	}
	if ch == '\\' {
		ch, err = l.scanEscape()
		if err != nil {
			return token.Token{}, err
		}
	}
	if err := l.expect('\''); err != nil {
		return token.Token{}, err
	}

	return token.Token{Kind: token.Char, Start: start, Char: ch}, nil
}

func (l *Lexer) scanEscape() (rune, error) {
	ch, ok, err := l.getChar()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, UnexpectedEOFError{Pos: l.Pos()}
	}
	switch ch {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case '\\', '\'', '"':
		return ch, nil
	case 'u', 'U':
		return l.scanUnicodeEscape()
	}

	return 0, UnexpectedCharError{Pos: l.Pos(), Char: ch}
}

func (l *Lexer) scanUnicodeEscape() (rune, error) {
	if err := l.expect('{'); err != nil {
		return 0, err
	}
	start := l.Pos()
	value, digits, err := l.scanHexDigits(4)
	if err != nil {
		return 0, err
	}
	if err := l.expect('}'); err != nil {
		return 0, err
	}
	if !utf8.IsScalar(value) {
		return 0, InvalidEscapeError{Pos: start, Digits: digits, Value: value}
	}

	return rune(value), nil
}

// scanHexDigits consumes up to count hex digits. A non-hex character inside
// the window is left unconsumed without raising an error here; the caller's
// closing-brace check reports it.
func (l *Lexer) scanHexDigits(count int) (uint32, string, error) {
	var digits []rune
	var value uint32
	for n := 0; n < count; n++ {
		ch, ok, err := l.stream.Peek()
		if err != nil {
			return 0, "", UTF8Error{Pos: l.Pos()}
		}
		if !ok {
			return 0, "", UnexpectedEOFError{Pos: l.Pos()}
		}
		if isHexDigit(ch) {
			l.stream.Advance()
			digits = append(digits, ch)
			value = value<<4 + hexValue(ch)
		}
	}

	return value, string(digits), nil
}

func (l *Lexer) expect(want rune) error {
	ch, ok, err := l.getChar()
	if err != nil {
		return err
	}
	if !ok {
		return UnexpectedEOFError{Pos: l.Pos()}
	}
	if ch != want {
		return UnexpectedCharError{Pos: l.Pos(), Char: ch}
	}

	return nil
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isBinDigit(ch rune) bool {
	return ch == '0' || ch == '1'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func hexValue(ch rune) uint32 {
	switch {
	case ch >= '0' && ch <= '9':
		return uint32(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return uint32(ch-'a') + 10
	default:
		return uint32(ch-'A') + 10
	}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
