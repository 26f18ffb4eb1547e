package commands

import (
	"testing"
	"time"

	"github.com/moip/moip-sdk-go/internal/constants"
	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPersister_UpdateAccessToken(t *testing.T) {
	t.Run("updates the configured endpoint", func(t *testing.T) {
		setupConfig(t)
		viper.Set(keyEnvironment, "sandbox")
		viper.Set(keyAccessToken, "old")
		viper.Set(keyRefreshToken, "refresh_v1")

		expiresAt := time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)

		err := NewConfigPersister().UpdateAccessToken(moip.Sandbox, "new", expiresAt, "")
		require.NoError(t, err)

		config := loadConfig()
		assert.Equal(t, "new", config.AccessToken)
		assert.Equal(t, "refresh_v1", config.RefreshToken, "an empty refresh token keeps the stored one")
		require.NotNil(t, config.TokenExpiresAt)
		assert.True(t, expiresAt.Equal(*config.TokenExpiresAt))
	})

	t.Run("rotates the refresh token", func(t *testing.T) {
		setupConfig(t)
		viper.Set(keyEnvironment, "sandbox")
		viper.Set(keyRefreshToken, "refresh_v1")

		err := NewConfigPersister().UpdateAccessToken(moip.Sandbox, "new", time.Time{}, "refresh_v2")
		require.NoError(t, err)
		assert.Equal(t, "refresh_v2", loadConfig().RefreshToken)
		assert.Nil(t, loadConfig().TokenExpiresAt)
	})

	t.Run("rejects another endpoint", func(t *testing.T) {
		setupConfig(t)
		viper.Set(keyEnvironment, "sandbox")
		viper.Set(keyAccessToken, "old")

		err := NewConfigPersister().UpdateAccessToken(moip.Production, "new", time.Time{}, "")
		require.ErrorIs(t, err, constants.ErrEndpointMismatch)
		assert.Equal(t, "old", loadConfig().AccessToken)
	})
}
