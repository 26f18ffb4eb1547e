package commands

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenResponse = `{
	"access_token": "8a2bd5b6a6a34b1a9fa1e7b6c6b0b8c5_v2",
	"refresh_token": "3ba1e0f3c1e04e5e8fe7a0d1c3a0c9b2_v2",
	"expires_in": "2027-10-19",
	"scope": "RECEIVE_FUNDS,REFUND",
	"moipAccount": {"id": "MPA-8D5DBB4EF8B8"}
}`

func TestConnectAuthorizeURL(t *testing.T) {
	setupConfig(t)
	viper.Set(keyEnvironment, "sandbox")
	viper.Set(keyClientID, "APP-M11STAPPOAU")

	out, err := execute(t, NewConnectCommand(), "authorize-url", "--redirect-uri", "https://example.com/callback", "--scope", "RECEIVE_FUNDS,REFUND")
	require.NoError(t, err)

	parsed, err := url.Parse(out[:len(out)-1])
	require.NoError(t, err)
	assert.Equal(t, "connect-sandbox.moip.com.br", parsed.Host)
	assert.Equal(t, "/oauth/authorize", parsed.Path)
	assert.Equal(t, "APP-M11STAPPOAU", parsed.Query().Get("client_id"))
	assert.Equal(t, "RECEIVE_FUNDS,REFUND", parsed.Query().Get("scope"))
}

func TestConnectToken_Save(t *testing.T) {
	setupConfig(t)

	server, recorded := newAPIServer(t, http.StatusOK, tokenResponse)
	viper.Set(keyEnvironment, "sandbox")
	viper.Set(keyConnectEndpoint, server.URL)
	viper.Set(keyToken, "TOKEN")
	viper.Set(keyKey, "KEY")

	out, err := execute(t, NewConnectCommand(), "token",
		"--client-id", "APP-M11STAPPOAU",
		"--client-secret", "secret",
		"--redirect-uri", "https://example.com/callback",
		"--code", "9a8f0c7e",
		"--save")
	require.NoError(t, err)
	assert.NotContains(t, out, "8a2bd5b6a6a34b1a9fa1e7b6c6b0b8c5_v2", "table output masks tokens")

	request := recorded.snapshot()
	assert.Equal(t, "/oauth/token", request.Path)

	form, err := url.ParseQuery(request.Body)
	require.NoError(t, err)
	assert.Equal(t, "authorization_code", form.Get("grant_type"))
	assert.Equal(t, "9a8f0c7e", form.Get("code"))

	config := loadConfig()
	assert.Equal(t, "8a2bd5b6a6a34b1a9fa1e7b6c6b0b8c5_v2", config.AccessToken)
	assert.Equal(t, "3ba1e0f3c1e04e5e8fe7a0d1c3a0c9b2_v2", config.RefreshToken)
	assert.Equal(t, "APP-M11STAPPOAU", config.ClientID)
	assert.Empty(t, config.Token, "basic credentials are replaced")
	require.NotNil(t, config.TokenExpiresAt)
	assert.Equal(t, 2027, config.TokenExpiresAt.Year())
}

func TestConnectRefresh(t *testing.T) {
	t.Run("requires a refresh token", func(t *testing.T) {
		setupConfig(t)
		viper.Set(keyEnvironment, "sandbox")

		_, err := execute(t, NewConnectCommand(), "refresh")
		require.ErrorIs(t, err, moip.ErrRefreshTokenMissing)
	})

	t.Run("stores the renewed token", func(t *testing.T) {
		setupConfig(t)

		server, recorded := newAPIServer(t, http.StatusOK, tokenResponse)
		viper.Set(keyEnvironment, "sandbox")
		viper.Set(keyConnectEndpoint, server.URL)
		viper.Set(keyAccessToken, "expired")
		viper.Set(keyRefreshToken, "refresh_v1")

		_, err := execute(t, NewConnectCommand(), "refresh")
		require.NoError(t, err)

		form, err := url.ParseQuery(recorded.snapshot().Body)
		require.NoError(t, err)
		assert.Equal(t, "refresh_token", form.Get("grant_type"))
		assert.Equal(t, "refresh_v1", form.Get("refresh_token"))
		assert.Equal(t, "8a2bd5b6a6a34b1a9fa1e7b6c6b0b8c5_v2", loadConfig().AccessToken)
	})
}

func TestCreateClient_RenewsExpiredConnectToken(t *testing.T) {
	setupConfig(t)

	connectServer, connectRecorded := newAPIServer(t, http.StatusOK, tokenResponse)
	apiServer, apiRecorded := newAPIServer(t, http.StatusOK, `{"id":"ORD-1"}`)

	viper.Set(keyEndpoint, apiServer.URL)
	viper.Set(keyConnectEndpoint, connectServer.URL)
	viper.Set(keyAccessToken, "expired")
	viper.Set(keyRefreshToken, "refresh_v1")
	viper.Set(keyTokenExpiresAt, "2020-01-01T00:00:00Z")

	client, err := CreateClient(context.Background())
	require.NoError(t, err)

	_, err = client.Orders().Get(context.Background(), "ORD-1")
	require.NoError(t, err)

	assert.Equal(t, "/oauth/token", connectRecorded.snapshot().Path)
	assert.Equal(t, "OAuth 8a2bd5b6a6a34b1a9fa1e7b6c6b0b8c5_v2", apiRecorded.snapshot().Auth)
	assert.Equal(t, "8a2bd5b6a6a34b1a9fa1e7b6c6b0b8c5_v2", loadConfig().AccessToken, "renewed token is persisted")
}
