package protocol

import (
	"strings"

	"github.com/go-zoox/bitpacket/protocol/bitstream"
	"github.com/pkg/errors"
)

// DecodeHex decodes the outermost packet of a hex encoded transmission.
// Surrounding whitespace is trimmed and trailing padding bits are ignored.
func DecodeHex(text string) (*Packet, error) {
	reader, err := bitstream.FromHex(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}

	return Decode(reader)
}

// Decode reads exactly one packet, including all of its sub-packets, from reader.
func Decode(reader *bitstream.Reader) (*Packet, error) {
	version, err := reader.ReadBits(LENGTH_VERSION)
	if err != nil {
		return nil, errors.Wrap(err, "read version")
	}

	typeID, err := reader.ReadBits(LENGTH_TYPE_ID)
	if err != nil {
		return nil, errors.Wrap(err, "read type id")
	}

	packet := &Packet{
		Version: uint8(version),
		TypeID:  uint8(typeID),
	}

	if packet.TypeID == TYPE_LITERAL {
		value, err := decodeLiteral(reader)
		if err != nil {
			return nil, err
		}

		packet.Body = Literal{Value: value}
		return packet, nil
	}

	operation, err := OperationFromTypeID(packet.TypeID)
	if err != nil {
		return nil, err
	}

	packets, err := decodeSubPackets(reader)
	if err != nil {
		return nil, err
	}

	packet.Body = Operator{
		Operation: operation,
		Packets:   packets,
	}
	return packet, nil
}

func decodeLiteral(reader *bitstream.Reader) (uint64, error) {
	var value uint64
	for {
		more, err := reader.ReadBit()
		if err != nil {
			return 0, errors.Wrap(err, "read literal group")
		}

		group, err := reader.ReadBits(LENGTH_LITERAL_GROUP)
		if err != nil {
			return 0, errors.Wrap(err, "read literal group")
		}

		if value>>(MAX_LITERAL_BITS-LENGTH_LITERAL_GROUP) != 0 {
			return 0, errors.Wrapf(ErrLiteralOverflow, "at position %d", reader.Position())
		}
		value = value<<LENGTH_LITERAL_GROUP | group

		if !more {
			return value, nil
		}
	}
}

func decodeSubPackets(reader *bitstream.Reader) ([]*Packet, error) {
	lengthTypeID, err := reader.ReadBits(1)
	if err != nil {
		return nil, errors.Wrap(err, "read length type id")
	}

	if lengthTypeID == LENGTH_TYPE_COUNT {
		count, err := reader.ReadBits(LENGTH_SUB_PACKET_COUNT)
		if err != nil {
			return nil, errors.Wrap(err, "read sub-packet count")
		}

		packets := make([]*Packet, 0, count)
		for i := uint64(0); i < count; i++ {
			packet, err := Decode(reader)
			if err != nil {
				return nil, err
			}

			packets = append(packets, packet)
		}

		return packets, nil
	}

	length, err := reader.ReadBits(LENGTH_TOTAL_BIT_LENGTH)
	if err != nil {
		return nil, errors.Wrap(err, "read sub-packets length")
	}

	target := reader.Position() + int(length)
	packets := []*Packet{}
	for reader.Position() < target {
		packet, err := Decode(reader)
		if err != nil {
			return nil, err
		}

		if reader.Position() > target {
			return nil, errors.Wrapf(ErrLengthMismatch, "declared %d bits, sub-packets end at %d past %d", length, reader.Position(), target)
		}

		packets = append(packets, packet)
	}

	return packets, nil
}
