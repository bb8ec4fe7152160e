package utf8

import "fmt"

// Position is a location within a source text. Line is 1-based. Column 0
// means "before the first character of the line"; it increments once per
// decoded character and resets to 0 on a line terminator.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line: %d, column: %d", p.Line, p.Column)
}

type result struct {
	ch  rune
	ok  bool
	err error
}

// Stream is a forward-only character cursor over a UTF-8 encoded byte
// buffer with one character of look-ahead. The buffer is owned by the
// stream for its lifetime.
//
// Once Get has returned an encoding error the stream is in a terminal
// failed state and any further Get or Advance panics; the error must be
// handled by the caller instead.
type Stream struct {
	data   []byte
	index  int
	dec    Decoder
	pos    Position
	peeked *result
	failed bool
}

// NewStream creates a stream positioned before the first character of data.
func NewStream(data []byte) *Stream {
	return &Stream{data: data, pos: Position{Line: 1, Column: 0}}
}

// Pos returns the position of the last successfully decoded character, or
// column 0 if no character of the current line has been read yet.
func (s *Stream) Pos() Position {
	return s.pos
}

// Get returns the next character and advances the position.
// The second return value is false at end of input.
func (s *Stream) Get() (rune, bool, error) {
	if s.failed {
		panic("utf8: Get on a stream in terminal error state")
	}

	var r result
	if s.peeked != nil {
		r = *s.peeked
		s.peeked = nil
	} else {
		r = s.nextChar()
	}

	if r.err != nil {
		s.failed = true

		return 0, false, r.err
	}
	if r.ok {
		s.advancePosition(r.ch)
	}

	return r.ch, r.ok, nil
}

// Peek returns what the next Get will return, without advancing. Repeated
// calls without an intervening Get or Advance return the cached result.
// A peeked error does not put the stream into the terminal failed state.
func (s *Stream) Peek() (rune, bool, error) {
	if s.peeked == nil {
		r := s.nextChar()
		s.peeked = &r
	}

	return s.peeked.ch, s.peeked.ok, s.peeked.err
}

// Advance consumes the next character without returning it. It is meant to
// follow a Peek that confirmed a valid character and panics if the consumed
// result is an error.
func (s *Stream) Advance() {
	if _, _, err := s.Get(); err != nil {
		panic(fmt.Sprintf("utf8: Advance onto encoding error: %v", err))
	}
}

func (s *Stream) nextChar() result {
	if s.index >= len(s.data) {
		return result{}
	}

	for {
		ch, ok, err := s.dec.Decode(s.data[s.index])
		s.index++
		switch {
		case err != nil:
			return result{err: err}
		case ok:
			return result{ch: ch, ok: true}
		case s.index >= len(s.data):
			return result{err: ErrTruncated}
		}
	}
}

func (s *Stream) advancePosition(ch rune) {
	switch ch {
	case '\n', '\u0085', '\u2028', '\u2029':
		s.pos.Line++
		s.pos.Column = 0
	default:
		s.pos.Column++
	}
}
