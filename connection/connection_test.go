package connection

import (
	"testing"
	"time"

	"github.com/go-zoox/bitpacket/protocol/evaluate"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	if len(id) != ID_LENGTH {
		t.Fatalf("id length not match, expect %d, but got %d", ID_LENGTH, len(id))
	}

	if id == GenerateID() {
		t.Fatalf("expect unique ids")
	}

	encoded, err := EncodeID(id)
	if err != nil {
		t.Fatalf("failed to encode id: %s", err)
	}

	decoded, err := DecodeID(append(encoded, "D2FE28"...))
	if err != nil {
		t.Fatalf("failed to decode id: %s", err)
	}

	if decoded != id {
		t.Fatalf("id not match, expect %s, but got %s", id, decoded)
	}

	if _, err := EncodeID("short"); err == nil {
		t.Fatalf("expect error for short id")
	}

	if _, err := DecodeID([]byte("short")); err == nil {
		t.Fatalf("expect error for short data")
	}
}

func TestRequestResolve(t *testing.T) {
	r := NewRequest("C200B40A82")

	go r.Resolve(&evaluate.Response{RequestID: r.ID, Value: 3})

	response, err := r.Wait(time.Second, nil)
	if err != nil {
		t.Fatalf("failed to wait response: %s", err)
	}

	if response.Value != 3 {
		t.Fatalf("Value not match, expect %d, but got %d", 3, response.Value)
	}
}

func TestRequestTimeout(t *testing.T) {
	r := NewRequest("C200B40A82")

	if _, err := r.Wait(10*time.Millisecond, nil); err == nil {
		t.Fatalf("expect timeout error")
	}
}

func TestRequestClosed(t *testing.T) {
	r := NewRequest("C200B40A82")

	closed := make(chan struct{})
	close(closed)

	start := time.Now()
	if _, err := r.Wait(time.Minute, closed); err == nil {
		t.Fatalf("expect error for closed connection")
	}

	if time.Since(start) > time.Second {
		t.Fatalf("expect Wait to return on close, took %s", time.Since(start))
	}
}

func TestRequestEncode(t *testing.T) {
	r := NewRequest("D2FE28")

	data, err := r.Encode()
	if err != nil {
		t.Fatalf("failed to encode %s", err)
	}

	decoded := &evaluate.Request{}
	if err := decoded.Decode(data); err != nil {
		t.Fatalf("failed to decode %s", err)
	}

	if decoded.RequestID != r.ID || decoded.Hex != r.Hex {
		t.Fatalf("request not match, expect %s/%s, but got %s/%s", r.ID, r.Hex, decoded.RequestID, decoded.Hex)
	}
}
