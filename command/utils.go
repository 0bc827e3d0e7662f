package command

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-zoox/bitpacket/user"
)

func parseAuth(auth string) (*user.User, error) {
	parts := strings.Split(auth, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid auth")
	}

	clientID, clientSecret := parts[0], parts[1]

	return user.New(clientID, clientSecret), nil
}

func parseRelay(relayR string) (protocol string, host string, port int, path string, err error) {
	relay, err := url.Parse(relayR)
	if err != nil {
		err = fmt.Errorf("invalid relay: %v", err)
		return
	}

	port = 80
	if relay.Scheme == "wss" {
		port = 443
	}
	if relay.Port() != "" {
		port, err = strconv.Atoi(relay.Port())
		if err != nil {
			err = fmt.Errorf("invalid relay port: %v", err)
			return
		}
	}

	protocol = relay.Scheme
	host = relay.Hostname()
	path = relay.Path
	if path == "" {
		path = "/"
	}

	return
}
