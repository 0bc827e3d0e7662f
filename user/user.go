package user

import (
	"errors"
	"fmt"

	"github.com/go-zoox/crypto/hmac"
)

// UserClient is the credential entry of the server configuration.
type UserClient struct {
	// Length 10
	ClientID     string `config:"client_id"`
	ClientSecret string `config:"client_secret"`
}

type User struct {
	// Length 10
	ClientID     string
	ClientSecret string
}

func New(clientID, clientSecret string) *User {
	return &User{
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}
}

func (u *User) GetClientID() string {
	return u.ClientID
}

// Authenticate reports whether signature was produced with this user's secret.
func (u *User) Authenticate(timestamp, nonce, signature string) (bool, error) {
	return u.Verify(timestamp, nonce, signature)
}

func (u *User) Sign(timestamp, nonce string) (signature string, err error) {
	defer func() {
		if errx := recover(); errx != nil {
			switch v := errx.(type) {
			case error:
				err = v
			case string:
				err = errors.New(v)
			default:
				err = fmt.Errorf("%v", v)
			}
		}
	}()

	return hmac.Sha256(fmt.Sprintf("%s_%s_%s", u.ClientID, timestamp, nonce), u.ClientSecret, "hex"), nil
}

func (u *User) Verify(timestamp, nonce, signature string) (bool, error) {
	if ns, err := u.Sign(timestamp, nonce); err != nil {
		return false, err
	} else {
		return ns == signature, nil
	}
}
