package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/moip/moip-sdk-go/internal/http"
	"github.com/moip/moip-sdk-go/pkg/moip"
	"golang.org/x/oauth2"
)

const (
	authorizePath = "/oauth/authorize"
	tokenPath     = "/oauth/token"

	grantTypeAuthorizationCode = "authorization_code"
	grantTypeRefreshToken      = "refresh_token"
)

// ConnectClient implements moip.ConnectClient.
type ConnectClient struct {
	httpClient *http.Client
}

// NewConnectClient creates a new Connect client.
func NewConnectClient(httpClient *http.Client) *ConnectClient {
	return &ConnectClient{
		httpClient: httpClient,
	}
}

// AuthorizeURL implements moip.ConnectClient.AuthorizeURL. It builds the
// page a merchant visits to grant permissions and performs no request.
func (c *ConnectClient) AuthorizeURL(clientID, redirectURI string, scopes ...string) string {
	query := url.Values{
		"response_type": []string{"code"},
		"client_id":     []string{clientID},
		"redirect_uri":  []string{redirectURI},
		"scope":         []string{strings.Join(scopes, ",")},
	}

	return c.httpClient.BaseURL() + authorizePath + "?" + query.Encode()
}

// Token implements moip.ConnectClient.Token.
func (c *ConnectClient) Token(ctx context.Context, request *moip.TokenRequest) (*moip.AccessToken, error) {
	if request == nil {
		return nil, moip.ErrRequestRequired
	}

	form := *request
	if form.GrantType == "" {
		form.GrantType = grantTypeAuthorizationCode
	}

	var token moip.AccessToken

	_, err := c.httpClient.PostForm(ctx, tokenPath, &form, &token)
	if err != nil {
		return nil, fmt.Errorf("requesting access token: %w", err)
	}

	return &token, nil
}

// Refresh implements moip.ConnectClient.Refresh.
func (c *ConnectClient) Refresh(ctx context.Context, request *moip.RefreshRequest) (*moip.AccessToken, error) {
	if request == nil {
		return nil, moip.ErrRequestRequired
	}

	form := *request
	if form.GrantType == "" {
		form.GrantType = grantTypeRefreshToken
	}

	var token moip.AccessToken

	_, err := c.httpClient.PostForm(ctx, tokenPath, &form, &token)
	if err != nil {
		return nil, fmt.Errorf("refreshing access token: %w", err)
	}

	return &token, nil
}

// TokenSource implements moip.ConnectClient.TokenSource. The returned source
// reuses token until it expires and then renews it with its refresh token.
func (c *ConnectClient) TokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource {
	return oauth2.ReuseTokenSource(token, &refreshingSource{ctx: ctx, connect: c, current: token})
}

type refreshingSource struct {
	ctx     context.Context //nolint:containedctx // oauth2.TokenSource has no context parameter
	connect *ConnectClient
	current *oauth2.Token
}

func (s *refreshingSource) Token() (*oauth2.Token, error) {
	if s.current == nil || s.current.RefreshToken == "" {
		return nil, moip.ErrRefreshTokenMissing
	}

	renewed, err := s.connect.Refresh(s.ctx, &moip.RefreshRequest{RefreshToken: s.current.RefreshToken})
	if err != nil {
		return nil, err
	}

	token := renewed.Token()
	if token.RefreshToken == "" {
		token.RefreshToken = s.current.RefreshToken
	}

	s.current = token

	return token, nil
}
