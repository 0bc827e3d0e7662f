package evaluate

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// DATA Protocol:
//
// EVALUATE DATA:
// request:  REQUEST_ID | HEX
//              21      |  -
// response: REQUEST_ID | STATUS | VERSION_SUM | VALUE | MESSAGE
//              21      |   1    |      8      |   8   |  -

const (
	LENGTH_REQUEST_ID  = 21
	LENGTH_STATUS      = 1
	LENGTH_VERSION_SUM = 8
	LENGTH_VALUE       = 8
)

const (
	STATUS_OK                = 0x00
	STATUS_INVALID_REQUEST   = 0x01
	STATUS_DECODE_FAILED     = 0x02
	STATUS_EVALUATE_FAILED   = 0x03
	STATUS_NOT_AUTHENTICATED = 0x04
)

type Request struct {
	RequestID string
	Hex       string
}

type Response struct {
	RequestID  string
	Status     uint8
	VersionSum uint64
	Value      uint64
	Message    string
}

func (r *Request) Encode() ([]byte, error) {
	if len(r.RequestID) != LENGTH_REQUEST_ID {
		return nil, fmt.Errorf("invalid request id length(%d), expect %d", len(r.RequestID), LENGTH_REQUEST_ID)
	}

	buf := bytes.NewBuffer([]byte{})
	buf.WriteString(r.RequestID)
	buf.WriteString(r.Hex)
	return buf.Bytes(), nil
}

func (r *Request) Decode(raw []byte) error {
	reader := bytes.NewReader(raw)

	// REQUEST_ID
	buf := make([]byte, LENGTH_REQUEST_ID)
	n, err := io.ReadFull(reader, buf)
	if n != LENGTH_REQUEST_ID || err != nil {
		return fmt.Errorf("failed to read request id:  %s", err)
	}
	r.RequestID = string(buf)

	// HEX
	buf, err = io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read hex:  %s", err)
	}
	r.Hex = string(buf)

	return nil
}

func (r *Response) Encode() ([]byte, error) {
	if len(r.RequestID) != LENGTH_REQUEST_ID {
		return nil, fmt.Errorf("invalid request id length(%d), expect %d", len(r.RequestID), LENGTH_REQUEST_ID)
	}

	buf := bytes.NewBuffer([]byte{})
	buf.WriteString(r.RequestID)
	buf.WriteByte(r.Status)

	num := make([]byte, 8)
	binary.BigEndian.PutUint64(num, r.VersionSum)
	buf.Write(num)
	binary.BigEndian.PutUint64(num, r.Value)
	buf.Write(num)

	buf.WriteString(r.Message)
	return buf.Bytes(), nil
}

func (r *Response) Decode(raw []byte) error {
	reader := bytes.NewReader(raw)

	// REQUEST_ID
	buf := make([]byte, LENGTH_REQUEST_ID)
	n, err := io.ReadFull(reader, buf)
	if n != LENGTH_REQUEST_ID || err != nil {
		return fmt.Errorf("failed to read request id:  %s", err)
	}
	r.RequestID = string(buf)

	// STATUS
	buf = make([]byte, LENGTH_STATUS)
	n, err = io.ReadFull(reader, buf)
	if n != LENGTH_STATUS || err != nil {
		return fmt.Errorf("failed to read status:  %s", err)
	}
	r.Status = uint8(buf[0])

	// VERSION_SUM
	buf = make([]byte, LENGTH_VERSION_SUM)
	n, err = io.ReadFull(reader, buf)
	if n != LENGTH_VERSION_SUM || err != nil {
		return fmt.Errorf("failed to read version sum:  %s", err)
	}
	r.VersionSum = binary.BigEndian.Uint64(buf)

	// VALUE
	buf = make([]byte, LENGTH_VALUE)
	n, err = io.ReadFull(reader, buf)
	if n != LENGTH_VALUE || err != nil {
		return fmt.Errorf("failed to read value:  %s", err)
	}
	r.Value = binary.BigEndian.Uint64(buf)

	// MESSAGE
	buf, err = io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read message:  %s", err)
	}
	r.Message = string(buf)

	return nil
}
