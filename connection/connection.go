package connection

import (
	"fmt"
	"time"

	"github.com/go-zoox/bitpacket/protocol/evaluate"
	"github.com/go-zoox/logger"
)

// Request is an evaluation in flight, waiting for the response carrying its ID.
type Request struct {
	ID  string
	Hex string
	// ch
	Result chan *evaluate.Response
}

func NewRequest(hex string) *Request {
	return &Request{
		ID:     GenerateID(),
		Hex:    hex,
		Result: make(chan *evaluate.Response, 1),
	}
}

// Resolve delivers the response, it never blocks.
func (r *Request) Resolve(response *evaluate.Response) {
	select {
	case r.Result <- response:
	default:
		logger.Warnf("[request: %s] response already delivered, drop", r.ID)
	}
}

// Wait blocks until the response arrives, closed is closed or timeout elapses.
func (r *Request) Wait(timeout time.Duration, closed <-chan struct{}) (*evaluate.Response, error) {
	logger.Debugf("[request: %s] wait response ...", r.ID)

	select {
	case response := <-r.Result:
		return response, nil
	case <-closed:
		return nil, fmt.Errorf("request(%s) aborted: connection closed", r.ID)
	case <-time.After(timeout):
		return nil, fmt.Errorf("request(%s) timeout after %s", r.ID, timeout)
	}
}

func (r *Request) Encode() ([]byte, error) {
	packet := &evaluate.Request{
		RequestID: r.ID,
		Hex:       r.Hex,
	}

	return packet.Encode()
}
