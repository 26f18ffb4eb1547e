// Package moipclient provides the main entry point for creating Moip API clients
package moipclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/moip/moip-sdk-go/internal/client"
	"github.com/moip/moip-sdk-go/pkg/moip"
	"golang.org/x/oauth2"
)

// New creates a new Moip API client. The caller's config is not modified.
func New(config *moip.Config) (moip.Client, error) {
	if config == nil {
		return nil, moip.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, moip.ErrEndpointRequired
	}

	normalized := *config
	normalized.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	// Use the internal client implementation
	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// normalizeEndpoint drops trailing slashes and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimRight(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithBasicAuth creates a client authenticated with an account token and key.
func NewWithBasicAuth(endpoint, token, key string) (moip.Client, error) {
	return New(&moip.Config{
		APIEndpoint: endpoint,
		Token:       token,
		Key:         key,
	})
}

// NewWithOAuth creates a client authenticated with a static OAuth access token.
func NewWithOAuth(endpoint, accessToken string) (moip.Client, error) {
	return New(&moip.Config{
		APIEndpoint: endpoint,
		AccessToken: accessToken,
	})
}

// NewWithTokenSource creates a client that takes its OAuth access tokens from source.
func NewWithTokenSource(endpoint string, source oauth2.TokenSource) (moip.Client, error) {
	return New(&moip.Config{
		APIEndpoint: endpoint,
		TokenSource: source,
	})
}

// NewConnect creates a client for the Connect OAuth endpoints, which take no
// credentials of their own.
func NewConnect(endpoint string) (moip.ConnectClient, error) {
	c, err := New(&moip.Config{APIEndpoint: endpoint})
	if err != nil {
		return nil, err
	}

	return c.Connect(), nil
}

// NewWithConnectToken creates a client for endpoint that authenticates with a
// Connect access token and renews it through the Connect endpoint once it expires.
func NewWithConnectToken(ctx context.Context, endpoint, connectEndpoint string, token *moip.AccessToken) (moip.Client, error) {
	if token == nil {
		return nil, moip.ErrRequestRequired
	}

	connect, err := NewConnect(connectEndpoint)
	if err != nil {
		return nil, fmt.Errorf("creating connect client: %w", err)
	}

	return NewWithTokenSource(endpoint, connect.TokenSource(ctx, token.Token()))
}
