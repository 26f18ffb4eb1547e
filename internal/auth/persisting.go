package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/moip/moip-sdk-go/pkg/moip"
	"golang.org/x/oauth2"
)

// Static errors for err113 compliance.
var (
	ErrNoConfigPersister = errors.New("no config persister configured")
)

// ConfigPersister saves access tokens so later runs can reuse them.
type ConfigPersister interface {
	UpdateAccessToken(endpoint, accessToken string, expiresAt time.Time, refreshToken string) error
}

// PersistingTokenSource wraps a token source and saves every token it has
// not seen before.
type PersistingTokenSource struct {
	source    oauth2.TokenSource
	persister ConfigPersister
	endpoint  string
	logger    moip.Logger

	mutex sync.Mutex
	last  string
}

// NewPersistingTokenSource creates a persisting token source. initialToken is
// the token already stored and is not saved again.
func NewPersistingTokenSource(source oauth2.TokenSource, persister ConfigPersister, endpoint, initialToken string, logger moip.Logger) *PersistingTokenSource {
	return &PersistingTokenSource{
		source:    source,
		persister: persister,
		endpoint:  endpoint,
		logger:    logger,
		last:      initialToken,
	}
}

// Token implements oauth2.TokenSource. A failure to persist is logged and
// does not fail the request.
func (s *PersistingTokenSource) Token() (*oauth2.Token, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	token, err := s.source.Token()
	if err != nil {
		return nil, fmt.Errorf("obtaining access token: %w", err)
	}

	if token.AccessToken == s.last {
		return token, nil
	}

	persistErr := s.persist(token)
	if persistErr != nil && s.logger != nil {
		s.logger.Warn("failed to persist refreshed token", map[string]interface{}{
			"endpoint": s.endpoint,
			"error":    persistErr.Error(),
		})
	}

	s.last = token.AccessToken

	return token, nil
}

func (s *PersistingTokenSource) persist(token *oauth2.Token) error {
	if s.persister == nil {
		return ErrNoConfigPersister
	}

	err := s.persister.UpdateAccessToken(s.endpoint, token.AccessToken, token.Expiry, token.RefreshToken)
	if err != nil {
		return fmt.Errorf("failed to update access token: %w", err)
	}

	return nil
}
