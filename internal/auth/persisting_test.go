package auth_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/moip/moip-sdk-go/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

var errDiskFull = errors.New("disk full")

type recordingPersister struct {
	mutex  sync.Mutex
	tokens []string
	err    error
}

func (p *recordingPersister) UpdateAccessToken(endpoint, accessToken string, expiresAt time.Time, refreshToken string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.tokens = append(p.tokens, endpoint+"|"+accessToken+"|"+refreshToken)

	return p.err
}

type sequenceSource struct {
	mutex  sync.Mutex
	tokens []string
	calls  int
}

func (s *sequenceSource) Token() (*oauth2.Token, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	token := s.tokens[min(s.calls, len(s.tokens)-1)]
	s.calls++

	return &oauth2.Token{AccessToken: token, RefreshToken: "refresh-" + token}, nil
}

type warnRecorder struct {
	warnings []string
}

func (w *warnRecorder) Debug(string, map[string]interface{}) {}
func (w *warnRecorder) Info(string, map[string]interface{})  {}
func (w *warnRecorder) Error(string, map[string]interface{}) {}
func (w *warnRecorder) Warn(msg string, _ map[string]interface{}) {
	w.warnings = append(w.warnings, msg)
}

func TestPersistingTokenSource(t *testing.T) {
	t.Parallel()

	t.Run("persists only new tokens", func(t *testing.T) {
		t.Parallel()

		persister := &recordingPersister{}
		source := &sequenceSource{tokens: []string{"initial", "initial", "renewed", "renewed"}}
		tokens := auth.NewPersistingTokenSource(source, persister, "https://connect-sandbox.moip.com.br", "initial", nil)

		for range 4 {
			token, err := tokens.Token()
			require.NoError(t, err)
			assert.NotEmpty(t, token.AccessToken)
		}

		assert.Equal(t, []string{"https://connect-sandbox.moip.com.br|renewed|refresh-renewed"}, persister.tokens)
	})

	t.Run("persist failure is logged", func(t *testing.T) {
		t.Parallel()

		persister := &recordingPersister{err: errDiskFull}
		logger := &warnRecorder{}
		tokens := auth.NewPersistingTokenSource(&sequenceSource{tokens: []string{"t1"}}, persister, "e", "", logger)

		token, err := tokens.Token()
		require.NoError(t, err)
		assert.Equal(t, "t1", token.AccessToken)
		assert.Equal(t, []string{"failed to persist refreshed token"}, logger.warnings)
	})

	t.Run("source failure", func(t *testing.T) {
		t.Parallel()

		tokens := auth.NewPersistingTokenSource(failingSource{}, &recordingPersister{}, "e", "", nil)

		_, err := tokens.Token()
		require.ErrorIs(t, err, errSourceDown)
	})

	t.Run("usable as authenticator source", func(t *testing.T) {
		t.Parallel()

		tokens := auth.NewPersistingTokenSource(&sequenceSource{tokens: []string{"t1"}}, nil, "e", "t1", nil)
		req := newRequest(t)
		require.NoError(t, auth.NewOAuth(tokens).Authenticate(req))
		assert.Equal(t, "OAuth t1", req.Header.Get("Authorization"))
	})
}
