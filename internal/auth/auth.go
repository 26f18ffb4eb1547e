// Package auth implements the credential strategies applied to outgoing
// requests.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/moip/moip-sdk-go/pkg/moip"
	"golang.org/x/oauth2"
)

// Static errors for err113 compliance.
var (
	ErrTokenUnavailable = errors.New("access token unavailable")
	ErrEmptyAccessToken = errors.New("token source returned an empty access token")
)

// oauthScheme prefixes the access token in the Authorization header.
const oauthScheme = "OAuth "

// Basic authenticates with the account token and key.
type Basic struct {
	token string
	key   string
}

// NewBasic creates a basic-auth strategy.
func NewBasic(token, key string) *Basic {
	return &Basic{token: token, key: key}
}

// Authenticate sets "Authorization: Basic base64(token:key)".
func (b *Basic) Authenticate(req *http.Request) error {
	req.SetBasicAuth(b.token, b.key)

	return nil
}

// OAuth authenticates with an access token obtained from a token source.
type OAuth struct {
	source oauth2.TokenSource
}

// NewOAuth creates an OAuth strategy backed by source.
func NewOAuth(source oauth2.TokenSource) *OAuth {
	return &OAuth{source: source}
}

// NewStaticOAuth creates an OAuth strategy for a fixed access token.
func NewStaticOAuth(accessToken string) *OAuth {
	return NewOAuth(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
}

// Authenticate sets "Authorization: OAuth <access token>".
func (o *OAuth) Authenticate(req *http.Request) error {
	token, err := o.source.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenUnavailable, err)
	}

	if token == nil || token.AccessToken == "" {
		return ErrEmptyAccessToken
	}

	req.Header.Set("Authorization", oauthScheme+token.AccessToken)

	return nil
}

// FromConfig selects the strategy described by cfg. The precedence is an
// explicit Authenticator, then TokenSource, AccessToken and Token with Key.
// It returns nil when no credentials are configured.
func FromConfig(cfg *moip.Config) moip.Authenticator {
	switch {
	case cfg == nil:
		return nil
	case cfg.Authenticator != nil:
		return cfg.Authenticator
	case cfg.TokenSource != nil:
		return NewOAuth(cfg.TokenSource)
	case cfg.AccessToken != "":
		return NewStaticOAuth(cfg.AccessToken)
	case cfg.Token != "" || cfg.Key != "":
		return NewBasic(cfg.Token, cfg.Key)
	default:
		return nil
	}
}
