package core

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-zoox/bitpacket/manager"
	"github.com/go-zoox/bitpacket/protocol/authenticate"
	"github.com/go-zoox/bitpacket/protocol/evaluate"
	"github.com/go-zoox/bitpacket/user"
	"github.com/go-zoox/logger"
	"github.com/go-zoox/packet/socksz"
	"github.com/go-zoox/packet/socksz/base"
	"github.com/go-zoox/zoox"
	"github.com/go-zoox/zoox/components/application/websocket"
	zd "github.com/go-zoox/zoox/defaults"
)

type Server interface {
	Run() error
}

type server struct {
	Port      int64
	Path      string
	Cache     bool
	CacheSize int

	// store
	Users   *manager.Manager[*user.User]
	Results *manager.Manager[*evaluate.Response]

	// insertion order of Results, oldest first
	cacheMu   sync.Mutex
	cacheKeys []string
}

type ServerConfig struct {
	Port      int64             `config:"port"`
	Path      string            `config:"path"`
	Cache     bool              `config:"cache"`
	CacheSize int               `config:"cache_size"`
	Users     []user.UserClient `config:"clients"`
}

// session is the per websocket connection state.
// zoox dispatches every message on its own goroutine.
type session struct {
	sync.RWMutex

	ID              string
	isAuthenticated bool
	userClientID    string
}

func (sess *session) SetAuthenticated(userClientID string) {
	sess.Lock()
	defer sess.Unlock()

	sess.isAuthenticated = true
	sess.userClientID = userClientID
}

func (sess *session) Authenticated() (userClientID string, ok bool) {
	sess.RLock()
	defer sess.RUnlock()

	return sess.userClientID, sess.isAuthenticated
}

func NewServer(cfg *ServerConfig) Server {
	return newServer(cfg)
}

func newServer(cfg *ServerConfig) *server {
	s := &server{
		Port:      DEFAULT_PORT,
		Path:      DEFAULT_PATH,
		Cache:     cfg.Cache,
		CacheSize: DEFAULT_CACHE_SIZE,
		Users:     manager.New[*user.User](),
		Results:   manager.New[*evaluate.Response](),
	}

	if cfg.Port != 0 {
		s.Port = cfg.Port
	}
	if cfg.Path != "" {
		s.Path = cfg.Path
	}
	if cfg.CacheSize > 0 {
		s.CacheSize = cfg.CacheSize
	}
	for _, u := range cfg.Users {
		s.Users.Set(u.ClientID, user.New(u.ClientID, u.ClientSecret))
	}

	return s
}

func (s *server) Run() error {
	core := zd.Default()

	core.WebSocket(s.Path, func(ctx *zoox.Context, client *websocket.Client) {
		sess := &session{ID: client.ID}

		client.OnError = func(err error) {
			if e, ok := err.(*websocket.CloseError); ok {
				ctx.Logger.Error("[error][client: %s][code: %d] %v", client.ID, e.Code, e)
			} else {
				ctx.Logger.Error("[error][client: %s][code: nocode] %v", client.ID, err)
			}
		}

		client.OnConnect = func() {
			ctx.Logger.Info("[connect] client: %s", client.ID)
		}

		client.OnDisconnect = func() {
			ctx.Logger.Info("[disconnect] client: %s", client.ID)
		}

		client.OnBinaryMessage = func(raw []byte) {
			if err := s.onMessage(sess, raw, client.WriteBinary); err != nil {
				ctx.Logger.Error("[client: %s] %v", client.ID, err)
			}
		}
	})

	logger.Info("[server] evaluate service at :%d%s (cache: %v)", s.Port, s.Path, s.Cache)
	return core.Run(fmt.Sprintf(":%d", s.Port))
}

func (s *server) onMessage(sess *session, raw []byte, write func(bytes []byte) error) error {
	packet := &base.Base{}
	if err := packet.Decode(raw); err != nil {
		return fmt.Errorf("invalid packet: %v", err)
	}

	writePacket := func(command uint8, data []byte) error {
		npacket := &base.Base{
			Ver:  socksz.VER,
			Cmd:  command,
			Data: data,
		}
		if bytes, err := npacket.Encode(); err != nil {
			return fmt.Errorf("failed to encode packet %v", err)
		} else {
			return write(bytes)
		}
	}

	switch packet.Cmd {
	case COMMAND_AUTHENTICATE:
		return s.onAuthenticate(sess, packet.Data, writePacket)
	case COMMAND_EVALUATE:
		return s.onEvaluate(sess, packet.Data, writePacket)
	default:
		logger.Warnf("[ignore] unknown command %d", packet.Cmd)
		return nil
	}
}

func (s *server) onAuthenticate(sess *session, data []byte, writePacket func(command uint8, data []byte) error) error {
	writeResponse := func(status uint8, err error) error {
		dataPacket := &authenticate.Response{
			Status: status,
		}
		if err != nil {
			dataPacket.Message = err.Error()
		}

		dataBytes, err := dataPacket.Encode()
		if err != nil {
			return fmt.Errorf("failed to encode authenticate response: %v", err)
		}

		return writePacket(COMMAND_AUTHENTICATE, dataBytes)
	}

	authenticatePacket := &authenticate.Request{}
	if err := authenticatePacket.Decode(data); err != nil {
		return writeResponse(STATUS_INVALID_REQUEST, fmt.Errorf("failed to decode authenticate request: %v", err))
	}

	logger.Info("[user: %s][authenticate] start to authenticate", authenticatePacket.UserClientID)

	u, err := s.Users.Get(authenticatePacket.UserClientID)
	if err != nil {
		logger.Error("[user: %s][authenticate] unknown user: %v", authenticatePacket.UserClientID, err)
		return writeResponse(STATUS_INVALID_USER_CLIENT_ID, err)
	}

	if err := checkTimestamp(authenticatePacket.Timestamp, time.Now()); err != nil {
		logger.Error("[user: %s][authenticate] %v", authenticatePacket.UserClientID, err)
		return writeResponse(STATUS_TIMESTAMP_EXPIRED, err)
	}

	if ok, err := u.Authenticate(authenticatePacket.Timestamp, authenticatePacket.Nonce, authenticatePacket.Signature); err != nil || !ok {
		if err == nil {
			err = fmt.Errorf("invalid signature")
		}
		logger.Error("[user: %s][authenticate] %v", authenticatePacket.UserClientID, err)
		return writeResponse(STATUS_INVALID_SIGNATURE, err)
	}

	sess.SetAuthenticated(u.ClientID)

	logger.Info("[user: %s][authenticate] succeed to authenticate", u.ClientID)
	return writeResponse(STATUS_OK, nil)
}

func (s *server) onEvaluate(sess *session, data []byte, writePacket func(command uint8, data []byte) error) error {
	request := &evaluate.Request{}
	if err := request.Decode(data); err != nil {
		// no request id to answer to
		return fmt.Errorf("failed to decode evaluate request: %v", err)
	}

	var response *evaluate.Response
	if userClientID, ok := sess.Authenticated(); !ok {
		logger.Error("[session: %s] client must authenticate before evaluate", sess.ID)
		response = &evaluate.Response{
			RequestID: request.RequestID,
			Status:    evaluate.STATUS_NOT_AUTHENTICATED,
			Message:   "not authenticated",
		}
	} else {
		response = s.evaluate(request)
		logger.Info(
			"[user: %s][evaluate][request: %s] status: %d, version sum: %d, value: %d",
			userClientID,
			request.RequestID,
			response.Status,
			response.VersionSum,
			response.Value,
		)
	}

	bytes, err := response.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode evaluate response: %v", err)
	}

	return writePacket(COMMAND_RESULT, bytes)
}

func (s *server) evaluate(request *evaluate.Request) *evaluate.Response {
	if !s.Cache {
		return Process(request)
	}

	key := strings.TrimSpace(request.Hex)
	if cached, err := s.Results.Get(key); err == nil {
		response := *cached
		response.RequestID = request.RequestID
		return &response
	}

	response := Process(request)
	s.remember(key, response)
	return response
}

// remember caches response under key, evicting the oldest entries beyond CacheSize.
func (s *server) remember(key string, response *evaluate.Response) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	if s.Results.Has(key) {
		return
	}

	s.Results.Set(key, response)
	s.cacheKeys = append(s.cacheKeys, key)
	for len(s.cacheKeys) > s.CacheSize {
		s.Results.Remove(s.cacheKeys[0])
		s.cacheKeys = s.cacheKeys[1:]
	}
}

func checkTimestamp(timestamp string, now time.Time) error {
	ms, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp(%s): %v", timestamp, err)
	}

	skew := now.Sub(time.UnixMilli(ms))
	if skew < 0 {
		skew = -skew
	}
	if skew > MAX_TIMESTAMP_SKEW {
		return fmt.Errorf("timestamp(%s) expired, skew %s", timestamp, skew)
	}

	return nil
}
