package bitstream

import (
	"testing"

	"github.com/pkg/errors"
)

func TestFromHex(t *testing.T) {
	r, err := FromHex("D2FE28")
	if err != nil {
		t.Fatalf("failed to read hex: %s", err)
	}

	if r.Len() != 24 {
		t.Fatalf("Len not match, expect %d, but got %d", 24, r.Len())
	}

	expected := "110100101111111000101000"
	for i, c := range expected {
		bit, err := r.ReadBit()
		if err != nil {
			t.Fatalf("failed to read bit %d: %s", i, err)
		}

		if bit != (c == '1') {
			t.Fatalf("bit %d not match, expect %c, but got %v", i, c, bit)
		}
	}

	if r.Remaining() != 0 {
		t.Fatalf("Remaining not match, expect 0, but got %d", r.Remaining())
	}
}

func TestFromHexInvalidCharacter(t *testing.T) {
	for _, text := range []string{"D2G", "d2fe28", "D2 FE", "0x1F"} {
		if _, err := FromHex(text); !errors.Is(err, ErrInvalidHexCharacter) {
			t.Fatalf("expect ErrInvalidHexCharacter for %q, but got %v", text, err)
		}
	}
}

func TestFromHexEmpty(t *testing.T) {
	r, err := FromHex("")
	if err != nil {
		t.Fatalf("failed to read empty hex: %s", err)
	}

	if r.Len() != 0 || r.Remaining() != 0 || r.Position() != 0 {
		t.Fatalf("expect empty reader, but got len=%d remaining=%d position=%d", r.Len(), r.Remaining(), r.Position())
	}
}

func TestReadBits(t *testing.T) {
	r, err := FromHex("D2FE28")
	if err != nil {
		t.Fatalf("failed to read hex: %s", err)
	}

	cases := []struct {
		width    int
		value    uint64
		position int
	}{
		{3, 6, 3},
		{3, 4, 6},
		{5, 0b10111, 11},
		{5, 0b11110, 16},
		{5, 0b00101, 21},
		{0, 0, 21},
		{3, 0, 24},
	}

	for _, c := range cases {
		v, err := r.ReadBits(c.width)
		if err != nil {
			t.Fatalf("failed to read %d bits: %s", c.width, err)
		}

		if v != c.value {
			t.Fatalf("value not match, expect %d, but got %d", c.value, v)
		}

		if r.Position() != c.position {
			t.Fatalf("position not match, expect %d, but got %d", c.position, r.Position())
		}
	}
}

func TestReadBitsEndOfStreamKeepsCursor(t *testing.T) {
	r, err := FromHex("F")
	if err != nil {
		t.Fatalf("failed to read hex: %s", err)
	}

	if _, err := r.ReadBits(3); err != nil {
		t.Fatalf("failed to read 3 bits: %s", err)
	}

	if _, err := r.ReadBits(2); !errors.Is(err, ErrUnexpectedEndOfStream) {
		t.Fatalf("expect ErrUnexpectedEndOfStream, but got %v", err)
	}

	if r.Position() != 3 {
		t.Fatalf("cursor moved on failure, expect 3, but got %d", r.Position())
	}

	if _, err := r.ReadBit(); err != nil {
		t.Fatalf("failed to read last bit: %s", err)
	}

	if _, err := r.ReadBit(); !errors.Is(err, ErrUnexpectedEndOfStream) {
		t.Fatalf("expect ErrUnexpectedEndOfStream, but got %v", err)
	}
}

func TestReadBitsWidth(t *testing.T) {
	r, err := FromHex("FFFFFFFFFFFFFFFFFF")
	if err != nil {
		t.Fatalf("failed to read hex: %s", err)
	}

	if _, err := r.ReadBits(65); !errors.Is(err, ErrWidthTooLarge) {
		t.Fatalf("expect ErrWidthTooLarge, but got %v", err)
	}

	v, err := r.ReadBits(64)
	if err != nil {
		t.Fatalf("failed to read 64 bits: %s", err)
	}

	if v != ^uint64(0) {
		t.Fatalf("value not match, expect %d, but got %d", ^uint64(0), v)
	}
}
