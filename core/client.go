package core

import (
	"fmt"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/go-zoox/bitpacket/connection"
	"github.com/go-zoox/bitpacket/manager"
	"github.com/go-zoox/bitpacket/protocol/authenticate"
	"github.com/go-zoox/bitpacket/protocol/evaluate"
	"github.com/go-zoox/bitpacket/user"
	"github.com/go-zoox/logger"
	"github.com/go-zoox/packet/socksz"
	"github.com/go-zoox/packet/socksz/base"
	"github.com/go-zoox/random"
	"github.com/gorilla/websocket"
)

type Client interface {
	Connect() error
	Evaluate(hex string) (*evaluate.Response, error)
	Close() error
}

type client struct {
	sync.Mutex

	Conn *websocket.Conn

	Protocol string `json:"protocol"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Path     string `json:"path"`
	Timeout  time.Duration

	// User
	User *user.User

	authenticated chan *authenticate.Response
	// closed when the read loop ends
	closed chan struct{}

	// store
	requests *manager.Manager[*connection.Request]
}

type ClientConfig struct {
	Protocol string `json:"protocol"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Path     string `json:"path"`
	Timeout  time.Duration

	// User
	User *user.User
}

func NewClient(cfg *ClientConfig) (Client, error) {
	if cfg.User == nil {
		return nil, fmt.Errorf("user is required")
	}
	if len(cfg.User.ClientID) != authenticate.LENGTH_USER_CLIENT_ID {
		return nil, fmt.Errorf("invalid user client id length(%d), expect %d", len(cfg.User.ClientID), authenticate.LENGTH_USER_CLIENT_ID)
	}

	Timeout := cfg.Timeout
	if Timeout == 0 {
		Timeout = DEFAULT_TIMEOUT
	}

	return &client{
		Protocol: cfg.Protocol,
		Host:     cfg.Host,
		Port:     cfg.Port,
		Path:     cfg.Path,
		Timeout:  Timeout,
		// USER
		User: cfg.User,
		//
		authenticated: make(chan *authenticate.Response, 1),
		requests:      manager.New[*connection.Request](),
	}, nil
}

func (c *client) Connect() error {
	u := url.URL{Scheme: c.Protocol, Host: net.JoinHostPort(c.Host, fmt.Sprintf("%d", c.Port)), Path: c.Path}
	logger.Info("[ws] connect to %s ...", u.String())

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return err
	}
	c.Conn = conn
	c.closed = make(chan struct{})

	go c.listen(conn, c.closed)

	if err := c.authenticate(); err != nil {
		c.Close()
		return fmt.Errorf("failed to authenticate: %v", err)
	}

	return nil
}

func (c *client) authenticate() error {
	logger.Info("[authenticate] start to authenticate(%s)", c.User.GetClientID())

	Timestamp := fmt.Sprintf("%d", time.Now().UnixMilli())
	Nonce := random.String(authenticate.LENGTH_NONCE)
	Signature, err := c.User.Sign(Timestamp, Nonce)
	if err != nil {
		return fmt.Errorf("failed to create signature: %v", err)
	}

	packet := &authenticate.Request{
		UserClientID: c.User.GetClientID(),
		Timestamp:    Timestamp,
		Nonce:        Nonce,
		Signature:    Signature,
	}
	bytes, err := packet.Encode()
	if err != nil {
		return err
	}

	if err := c.writePacket(COMMAND_AUTHENTICATE, bytes); err != nil {
		return err
	}

	select {
	case response := <-c.authenticated:
		if response.Status != STATUS_OK {
			return fmt.Errorf("status: %d, message: %s", response.Status, response.Message)
		}
	case <-c.closed:
		return fmt.Errorf("connection closed")
	case <-time.After(c.Timeout):
		return fmt.Errorf("timeout after %s", c.Timeout)
	}

	logger.Info("[authenticate] succeed to auth as %s", c.User.GetClientID())
	return nil
}

func (c *client) Evaluate(hex string) (*evaluate.Response, error) {
	request := connection.NewRequest(hex)
	data, err := request.Encode()
	if err != nil {
		return nil, err
	}

	c.requests.Set(request.ID, request)
	defer c.requests.Remove(request.ID)

	logger.Debugf("[evaluate][request: %s] send %s", request.ID, hex)
	if err := c.writePacket(COMMAND_EVALUATE, data); err != nil {
		return nil, fmt.Errorf("failed to send evaluate request: %v", err)
	}

	response, err := request.Wait(c.Timeout, c.closed)
	if err != nil {
		return nil, err
	}

	if response.Status != evaluate.STATUS_OK {
		return response, fmt.Errorf("failed to evaluate(status: %d): %s", response.Status, response.Message)
	}

	return response, nil
}

func (c *client) Close() error {
	c.Lock()
	defer c.Unlock()

	if c.Conn == nil {
		return nil
	}

	_ = c.Conn.WriteMessage(MessageTypeClose, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	err := c.Conn.Close()
	c.Conn = nil
	return err
}

func (c *client) listen(conn *websocket.Conn, closed chan struct{}) {
	defer close(closed)

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				logger.Debugf("[ws] read err: %s (type: %d)", err, mt)
			}
			return
		}

		if mt != MessageTypeBinary {
			continue
		}

		if err := c.onBinaryMessage(message); err != nil {
			logger.Error("[ws] %v", err)
		}
	}
}

func (c *client) onBinaryMessage(raw []byte) error {
	packet := &base.Base{}
	if err := packet.Decode(raw); err != nil {
		return fmt.Errorf("invalid packet: %v", err)
	}

	switch packet.Cmd {
	case COMMAND_AUTHENTICATE:
		response := &authenticate.Response{}
		if err := response.Decode(packet.Data); err != nil {
			return fmt.Errorf("[authenticate] failed to decode authenticate response: %v", err)
		}

		select {
		case c.authenticated <- response:
		default:
		}
		return nil
	case COMMAND_RESULT:
		response := &evaluate.Response{}
		if err := response.Decode(packet.Data); err != nil {
			return fmt.Errorf("[evaluate] failed to decode evaluate response: %v", err)
		}

		request, err := c.requests.Get(response.RequestID)
		if err != nil {
			return fmt.Errorf("[evaluate][request: %s] no pending request: %v", response.RequestID, err)
		}

		request.Resolve(response)
		return nil
	default:
		logger.Warnf("[ignore] unknown command %d", packet.Cmd)
		return nil
	}
}

func (c *client) WriteBinary(data []byte) error {
	return c.Write(MessageTypeBinary, data)
}

func (c *client) Write(messageType int, data []byte) error {
	c.Lock()
	defer c.Unlock()

	if c.Conn == nil {
		return fmt.Errorf("conn is not online")
	}

	return c.Conn.WriteMessage(messageType, data)
}

func (c *client) writePacket(command uint8, data []byte) error {
	packet := &base.Base{
		Ver:  socksz.VER,
		Cmd:  command,
		Data: data,
	}
	bytes, err := packet.Encode()
	if err != nil {
		return fmt.Errorf("invalid message: %s", err)
	}

	return c.WriteBinary(bytes)
}
