package authenticate

import "testing"

func TestRequestEncodeDecode(t *testing.T) {
	packet := &Request{
		UserClientID: "0123456789",
		Timestamp:    "1667982806000",
		Nonce:        "123456",
		Signature:    "8665ebcb30adc07590ae3209e8cb0c2b9b43762cf6656d95ddb52fbc2a45e39c",
	}

	encoded, err := packet.Encode()
	if err != nil {
		t.Fatalf("failed to encode %s", err)
	}

	decoded := &Request{}
	if err := decoded.Decode(encoded); err != nil {
		t.Fatalf("failed to decode %s", err)
	}

	if *decoded != *packet {
		t.Fatalf("Request not match, expect %+v, but got %+v", packet, decoded)
	}
}

func TestRequestEncodeInvalidLength(t *testing.T) {
	packet := &Request{
		UserClientID: "short",
		Timestamp:    "1667982806000",
		Nonce:        "123456",
		Signature:    "8665ebcb30adc07590ae3209e8cb0c2b9b43762cf6656d95ddb52fbc2a45e39c",
	}

	if _, err := packet.Encode(); err == nil {
		t.Fatalf("expect error for short user client id")
	}
}

func TestRequestDecodeTruncated(t *testing.T) {
	if err := (&Request{}).Decode([]byte("0123456789166798")); err == nil {
		t.Fatalf("expect error for truncated request")
	}
}

func TestResponseEncodeDecode(t *testing.T) {
	packet := &Response{
		Status:  2,
		Message: "invalid signature",
	}

	encoded, err := packet.Encode()
	if err != nil {
		t.Fatalf("failed to encode %s", err)
	}

	decoded := &Response{}
	if err := decoded.Decode(encoded); err != nil {
		t.Fatalf("failed to decode %s", err)
	}

	if decoded.Status != packet.Status {
		t.Fatalf("Status not match, expect %d, but got %d", packet.Status, decoded.Status)
	}

	if decoded.Message != packet.Message {
		t.Fatalf("Message not match, expect %s, but got %s", packet.Message, decoded.Message)
	}

	if err := (&Response{}).Decode(nil); err == nil {
		t.Fatalf("expect error for empty response")
	}
}
