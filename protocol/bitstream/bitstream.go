package bitstream

import (
	"github.com/pkg/errors"
)

// MAX_WIDTH is the widest field a single ReadBits call can return.
const MAX_WIDTH = 64

var (
	ErrInvalidHexCharacter   = errors.New("bitstream: invalid hex character")
	ErrUnexpectedEndOfStream = errors.New("bitstream: unexpected end of stream")
	ErrWidthTooLarge         = errors.New("bitstream: read width too large")
)

// Reader is a fixed bit buffer with a forward-only cursor.
type Reader struct {
	bits   []bool
	cursor int
}

// FromHex expands every hex digit into 4 bits, most significant first.
// Only 0-9 and A-F are accepted.
func FromHex(text string) (*Reader, error) {
	bits := make([]bool, 0, len(text)*4)
	for i := 0; i < len(text); i++ {
		nibble, ok := hexValue(text[i])
		if !ok {
			return nil, errors.Wrapf(ErrInvalidHexCharacter, "%q at offset %d", text[i], i)
		}

		for shift := 3; shift >= 0; shift-- {
			bits = append(bits, nibble>>uint(shift)&1 == 1)
		}
	}

	return &Reader{bits: bits}, nil
}

// FromBits wraps an already expanded bit sequence.
func FromBits(bits []bool) *Reader {
	return &Reader{bits: bits}
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ReadBits consumes the next n bits as an unsigned integer.
// On failure the cursor is left where it was.
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n < 0 || n > MAX_WIDTH {
		return 0, errors.Wrapf(ErrWidthTooLarge, "width %d", n)
	}
	if r.Remaining() < n {
		return 0, errors.Wrapf(ErrUnexpectedEndOfStream, "need %d bits at position %d, have %d", n, r.cursor, r.Remaining())
	}

	var value uint64
	for _, bit := range r.bits[r.cursor : r.cursor+n] {
		value <<= 1
		if bit {
			value |= 1
		}
	}
	r.cursor += n

	return value, nil
}

func (r *Reader) ReadBit() (bool, error) {
	v, err := r.ReadBits(1)
	if err != nil {
		return false, err
	}

	return v != 0, nil
}

// Position is the number of bits consumed so far.
func (r *Reader) Position() int {
	return r.cursor
}

// Remaining is the number of bits left after the cursor.
func (r *Reader) Remaining() int {
	return len(r.bits) - r.cursor
}

// Len is the total number of bits in the buffer.
func (r *Reader) Len() int {
	return len(r.bits)
}
