package authenticate

import (
	"bytes"
	"fmt"
	"io"
)

// DATA Protocol:
//
// AUTHENTICATE DATA:
// request:  USER_CLIENT_ID | TIMESTAMP | NONCE | SIGNATURE
//             10           |    13     |   6   |  64 HMAC_SHA256
// response: STATUS | MESSAGE
//            1     |  -

const (
	LENGTH_USER_CLIENT_ID = 10
	LENGTH_TIMESTAMP      = 13
	LENGTH_NONCE          = 6
	LENGTH_SIGNATURE      = 64
)

type Request struct {
	UserClientID string
	Timestamp    string
	Nonce        string
	Signature    string
}

func (r *Request) Encode() ([]byte, error) {
	fields := []struct {
		name   string
		value  string
		length int
	}{
		{"user client id", r.UserClientID, LENGTH_USER_CLIENT_ID},
		{"timestamp", r.Timestamp, LENGTH_TIMESTAMP},
		{"nonce", r.Nonce, LENGTH_NONCE},
		{"signature", r.Signature, LENGTH_SIGNATURE},
	}

	buf := bytes.NewBuffer([]byte{})
	for _, f := range fields {
		if len(f.value) != f.length {
			return nil, fmt.Errorf("invalid %s length(%d), expect %d", f.name, len(f.value), f.length)
		}
		buf.WriteString(f.value)
	}

	return buf.Bytes(), nil
}

func (r *Request) Decode(raw []byte) error {
	reader := bytes.NewReader(raw)

	read := func(name string, length int) (string, error) {
		buf := make([]byte, length)
		n, err := io.ReadFull(reader, buf)
		if n != length || err != nil {
			return "", fmt.Errorf("failed to read %s:  %s", name, err)
		}
		return string(buf), nil
	}

	var err error
	// USER_CLIENT_ID
	if r.UserClientID, err = read("user client id", LENGTH_USER_CLIENT_ID); err != nil {
		return err
	}
	// TIMESTAMP
	if r.Timestamp, err = read("timestamp", LENGTH_TIMESTAMP); err != nil {
		return err
	}
	// NONCE
	if r.Nonce, err = read("nonce", LENGTH_NONCE); err != nil {
		return err
	}
	// SIGNATURE
	if r.Signature, err = read("signature", LENGTH_SIGNATURE); err != nil {
		return err
	}

	return nil
}
