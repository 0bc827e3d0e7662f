package protocol

import (
	"github.com/go-zoox/bitpacket/protocol/bitstream"
	"github.com/pkg/errors"
)

var (
	ErrInvalidHexCharacter   = bitstream.ErrInvalidHexCharacter
	ErrUnexpectedEndOfStream = bitstream.ErrUnexpectedEndOfStream

	ErrLengthMismatch   = errors.New("protocol: sub-packets length mismatch")
	ErrUnknownOperation = errors.New("protocol: unknown operation")
	ErrLiteralOverflow  = errors.New("protocol: literal overflows 64 bits")
	ErrArity            = errors.New("protocol: comparison needs exactly two operands")
	ErrEmptyReduction   = errors.New("protocol: reduction over no operands")
)
