package commands

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/moip/moip-sdk-go/internal/constants"
	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResolveEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  Config
		want    string
		wantErr error
	}{
		{"explicit endpoint wins", Config{Environment: "production", Endpoint: "http://localhost:8080"}, "http://localhost:8080", nil},
		{"sandbox", Config{Environment: "sandbox"}, moip.Sandbox, nil},
		{"production", Config{Environment: "production"}, moip.Production, nil},
		{"connect sandbox", Config{Environment: "connect-sandbox"}, moip.ConnectSandbox, nil},
		{"nothing configured", Config{}, "", constants.ErrNoEndpointConfigured},
		{"unknown environment", Config{Environment: "staging"}, "", constants.ErrUnknownEnvironment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveEndpoint(&tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveConnectEndpoint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, moip.ConnectSandbox, resolveConnectEndpoint(&Config{}))
	assert.Equal(t, moip.ConnectSandbox, resolveConnectEndpoint(&Config{Environment: "sandbox"}))
	assert.Equal(t, moip.ConnectProduction, resolveConnectEndpoint(&Config{Environment: "production"}))
	assert.Equal(t, "http://localhost:9000", resolveConnectEndpoint(&Config{Environment: "production", ConnectEndpoint: "http://localhost:9000"}))
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateConfig(&Config{Environment: "sandbox", Output: "json"}))
	require.Error(t, validateConfig(&Config{Environment: "staging"}))
	require.Error(t, validateConfig(&Config{Endpoint: "not a url"}))
	require.Error(t, validateConfig(&Config{Output: "xml"}))
	require.Error(t, validateConfig(&Config{ReadTimeout: -time.Second}))
}

func TestMaskSecrets(t *testing.T) {
	t.Parallel()

	config := &Config{Token: "TOKEN", Key: "KEY", AccessToken: "", Environment: "sandbox"}

	masked := maskSecrets(config)
	assert.Equal(t, constants.MaskedSecret, masked.Token)
	assert.Equal(t, constants.MaskedSecret, masked.Key)
	assert.Empty(t, masked.AccessToken)
	assert.Equal(t, "sandbox", masked.Environment)
	assert.Equal(t, "TOKEN", config.Token, "original config must not change")
}

func TestSaveConfig(t *testing.T) {
	configFile := setupConfig(t)

	expiresAt := time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC)
	config := &Config{
		Environment:    "sandbox",
		AccessToken:    "access",
		RefreshToken:   "refresh",
		TokenExpiresAt: &expiresAt,
		ReadTimeout:    5 * time.Second,
	}

	require.NoError(t, saveConfig(config))

	info, err := os.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, "access", saved.AccessToken)
	assert.Equal(t, "refresh", saved.RefreshToken)
	require.NotNil(t, saved.TokenExpiresAt)
	assert.True(t, expiresAt.Equal(*saved.TokenExpiresAt))

	loaded := loadConfig()
	assert.Equal(t, "sandbox", loaded.Environment)
	assert.Equal(t, "access", loaded.AccessToken)
	assert.Equal(t, 5*time.Second, loaded.ReadTimeout)
	require.NotNil(t, loaded.TokenExpiresAt)
	assert.True(t, expiresAt.Equal(*loaded.TokenExpiresAt))
}

func TestConfigSetAndUnset(t *testing.T) {
	setupConfig(t)

	cmd := NewConfigCommand()

	out, err := execute(t, cmd, "set", "environment", "production")
	require.NoError(t, err)
	assert.Equal(t, "Set environment\n", out)
	assert.Equal(t, "production", viper.GetString(keyEnvironment))

	_, err = execute(t, NewConfigCommand(), "set", "read_timeout", "45s")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, loadConfig().ReadTimeout)

	_, err = execute(t, NewConfigCommand(), "set", "environment", "staging")
	require.Error(t, err)
	assert.Equal(t, "production", loadConfig().Environment)

	_, err = execute(t, NewConfigCommand(), "set", "colour", "blue")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)

	out, err = execute(t, NewConfigCommand(), "unset", "environment")
	require.NoError(t, err)
	assert.Equal(t, "Unset environment\n", out)
	assert.Empty(t, loadConfig().Environment)
}

func TestConfigShow_MasksSecrets(t *testing.T) {
	setupConfig(t)
	viper.Set(keyOutput, constants.FormatJSON)
	viper.Set(keyToken, "TOKEN")
	viper.Set(keyKey, "KEY")

	out, err := execute(t, NewConfigCommand(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"token": "***"`)
	assert.NotContains(t, out, "TOKEN")

	out, err = execute(t, NewConfigCommand(), "show", "--show-secrets")
	require.NoError(t, err)
	assert.Contains(t, out, `"token": "TOKEN"`)
}

func TestCreateClient(t *testing.T) {
	t.Run("not authenticated", func(t *testing.T) {
		setupConfig(t)
		viper.Set(keyEnvironment, "sandbox")

		_, err := CreateClient(context.Background())
		require.ErrorIs(t, err, constants.ErrNotAuthenticated)
	})

	t.Run("no endpoint", func(t *testing.T) {
		setupConfig(t)
		viper.Set(keyToken, "TOKEN")
		viper.Set(keyKey, "KEY")

		_, err := CreateClient(context.Background())
		require.ErrorIs(t, err, constants.ErrNoEndpointConfigured)
	})

	t.Run("basic credentials", func(t *testing.T) {
		setupConfig(t)

		server, recorded := newAPIServer(t, 200, `{"id":"ORD-1"}`)
		loginTo(server.URL)

		client, err := CreateClient(context.Background())
		require.NoError(t, err)

		_, err = client.Orders().Get(context.Background(), "ORD-1")
		require.NoError(t, err)
		assert.Equal(t, "Basic VE9LRU46S0VZ", recorded.snapshot().Auth)
	})

	t.Run("access token wins over basic credentials", func(t *testing.T) {
		setupConfig(t)

		server, recorded := newAPIServer(t, 200, `{"id":"ORD-1"}`)
		loginTo(server.URL)
		viper.Set(keyAccessToken, "static")

		client, err := CreateClient(context.Background())
		require.NoError(t, err)

		_, err = client.Orders().Get(context.Background(), "ORD-1")
		require.NoError(t, err)
		assert.Equal(t, "OAuth static", recorded.snapshot().Auth)
	})
}
