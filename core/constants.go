package core

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	MessageTypeBinary = websocket.BinaryMessage
	MessageTypeClose  = websocket.CloseMessage
	//
	COMMAND_AUTHENTICATE = 0x01
	COMMAND_EVALUATE     = 0x20
	COMMAND_RESULT       = 0x21
	//
	STATUS_OK                     = 0x00
	STATUS_INVALID_USER_CLIENT_ID = 0x01
	STATUS_INVALID_SIGNATURE      = 0x02
	STATUS_TIMESTAMP_EXPIRED      = 0x03
	STATUS_INVALID_REQUEST        = 0x04
)

const (
	DEFAULT_PORT    = 8080
	DEFAULT_PATH    = "/"
	DEFAULT_TIMEOUT = 10 * time.Second

	// entries kept by the result cache
	DEFAULT_CACHE_SIZE = 1024

	// accepted clock skew of authenticate timestamps
	MAX_TIMESTAMP_SKEW = 5 * time.Minute
)
