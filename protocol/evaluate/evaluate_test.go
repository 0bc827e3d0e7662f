package evaluate

import "testing"

func TestRequestEncodeDecode(t *testing.T) {
	packet := &Request{
		RequestID: "V1StGXR8_Z5jdHi6B-myT",
		Hex:       "9C0141080250320F1802104A08",
	}

	encoded, err := packet.Encode()
	if err != nil {
		t.Fatalf("failed to encode %s", err)
	}

	decoded := &Request{}
	if err := decoded.Decode(encoded); err != nil {
		t.Fatalf("failed to decode %s", err)
	}

	if decoded.RequestID != packet.RequestID {
		t.Fatalf("RequestID not match, expect %s, but got %s", packet.RequestID, decoded.RequestID)
	}

	if decoded.Hex != packet.Hex {
		t.Fatalf("Hex not match, expect %s, but got %s", packet.Hex, decoded.Hex)
	}
}

func TestRequestInvalidID(t *testing.T) {
	if _, err := (&Request{RequestID: "abc", Hex: "D2FE28"}).Encode(); err == nil {
		t.Fatalf("expect error for short request id")
	}

	if err := (&Request{}).Decode([]byte("abc")); err == nil {
		t.Fatalf("expect error for truncated request id")
	}
}

func TestResponseEncodeDecode(t *testing.T) {
	packet := &Response{
		RequestID:  "V1StGXR8_Z5jdHi6B-myT",
		Status:     STATUS_OK,
		VersionSum: 20,
		Value:      18446744073709551615,
	}

	encoded, err := packet.Encode()
	if err != nil {
		t.Fatalf("failed to encode %s", err)
	}

	if len(encoded) != LENGTH_REQUEST_ID+LENGTH_STATUS+LENGTH_VERSION_SUM+LENGTH_VALUE {
		t.Fatalf("encoded length not match, got %d", len(encoded))
	}

	decoded := &Response{}
	if err := decoded.Decode(encoded); err != nil {
		t.Fatalf("failed to decode %s", err)
	}

	if *decoded != *packet {
		t.Fatalf("Response not match, expect %+v, but got %+v", packet, decoded)
	}
}

func TestResponseWithMessage(t *testing.T) {
	packet := &Response{
		RequestID: "V1StGXR8_Z5jdHi6B-myT",
		Status:    STATUS_DECODE_FAILED,
		Message:   "bitstream: invalid hex character",
	}

	encoded, err := packet.Encode()
	if err != nil {
		t.Fatalf("failed to encode %s", err)
	}

	decoded := &Response{}
	if err := decoded.Decode(encoded); err != nil {
		t.Fatalf("failed to decode %s", err)
	}

	if decoded.Status != STATUS_DECODE_FAILED {
		t.Fatalf("Status not match, expect %d, but got %d", STATUS_DECODE_FAILED, decoded.Status)
	}

	if decoded.Message != packet.Message {
		t.Fatalf("Message not match, expect %s, but got %s", packet.Message, decoded.Message)
	}

	if err := decoded.Decode(encoded[:LENGTH_REQUEST_ID+LENGTH_STATUS+3]); err == nil {
		t.Fatalf("expect error for truncated response")
	}
}
