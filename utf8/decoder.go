// Package utf8 provides an incremental UTF-8 decoder and a position-tracking
// character stream over an in-memory byte buffer.
package utf8

import "errors"

var (
	// ErrLeadByte reports a byte that is neither a valid lead byte nor a
	// continuation byte at the start of a sequence.
	ErrLeadByte = errors.New("invalid UTF-8 lead byte")
	// ErrContinuationByte reports a byte inside a multi-byte sequence that
	// does not match the 10xxxxxx continuation pattern.
	ErrContinuationByte = errors.New("invalid UTF-8 continuation byte")
	// ErrScalarValue reports a completed sequence whose accumulated code
	// point is not a valid Unicode scalar value.
	ErrScalarValue = errors.New("not a Unicode scalar value")
	// ErrTruncated reports a multi-byte sequence cut off by end of input.
	ErrTruncated = errors.New("truncated UTF-8 sequence")
)

// IsScalar reports whether code is a valid Unicode scalar value,
// i.e. a code point outside the surrogate range.
func IsScalar(code uint32) bool {
	return code < 0xd800 || (code > 0xdfff && code <= 0x10ffff)
}

// Decoder reconstructs code points from a UTF-8 byte sequence fed to it one
// byte at a time. The zero value is ready to use.
type Decoder struct {
	code      uint32
	remaining uint32
}

// Decode consumes the next byte of the input.
// It returns (r, true, nil) when the byte completes a code point,
// (0, false, nil) when more bytes of the current sequence are expected,
// and (0, false, err) on an encoding error.
func (d *Decoder) Decode(b byte) (rune, bool, error) {
	if d.remaining == 0 {
		return d.decodeReady(b)
	}

	return d.decodeIncomplete(b)
}

// Reset discards any partially decoded sequence so that decoding can restart
// at the next byte boundary.
func (d *Decoder) Reset() {
	d.remaining = 0
}

func (d *Decoder) decodeReady(b byte) (rune, bool, error) {
	switch {
	case b&0x80 == 0x00:
		return rune(b), true, nil
	case b&0xe0 == 0xc0:
		d.code = uint32(b & 0x1f)
		d.remaining = 1
	case b&0xf0 == 0xe0:
		d.code = uint32(b & 0x0f)
		d.remaining = 2
	case b&0xf8 == 0xf0:
		d.code = uint32(b & 0x07)
		d.remaining = 3
	default:
		return 0, false, ErrLeadByte
	}

	return 0, false, nil
}

func (d *Decoder) decodeIncomplete(b byte) (rune, bool, error) {
	if b&0xc0 != 0x80 {
		return 0, false, ErrContinuationByte
	}
	d.code = (d.code << 6) | uint32(b&0x3f)
	d.remaining--
	if d.remaining == 0 {
		if !IsScalar(d.code) {
			return 0, false, ErrScalarValue
		}

		return rune(d.code), true, nil
	}

	return 0, false, nil
}
