package commands

import (
	"fmt"
	"sync"
	"time"

	"github.com/moip/moip-sdk-go/internal/constants"
)

// ConfigPersister implements the auth.ConfigPersister interface.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateAccessToken stores a renewed access token when it belongs to the configured endpoint.
func (p *ConfigPersister) UpdateAccessToken(endpoint, accessToken string, expiresAt time.Time, refreshToken string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()

	configured, err := resolveEndpoint(config)
	if err != nil {
		return err
	}

	if configured != endpoint {
		return fmt.Errorf("%w: %s", constants.ErrEndpointMismatch, endpoint)
	}

	config.AccessToken = accessToken
	if !expiresAt.IsZero() {
		config.TokenExpiresAt = &expiresAt
	}

	if refreshToken != "" {
		config.RefreshToken = refreshToken
	}

	return saveConfig(config)
}
