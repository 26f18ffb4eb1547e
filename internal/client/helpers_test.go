package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/moip/moip-sdk-go/internal/auth"
	internalhttp "github.com/moip/moip-sdk-go/internal/http"
	"github.com/moip/moip-sdk-go/internal/testutil"
	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRecordedClient returns a pipeline bound to the sandbox that replays a cassette.
func newRecordedClient(t *testing.T, cassette string) *internalhttp.Client {
	t.Helper()

	recorder := testutil.NewVCRRecorder(t, cassette)

	return internalhttp.NewClient(moip.Sandbox, auth.NewBasic("TOKEN", "KEY"),
		internalhttp.WithHTTPClient(testutil.VCRHTTPClient(recorder)))
}

// expectation describes the single request a test server accepts.
type expectation struct {
	Method     string
	Path       string
	Query      string
	Body       string
	StatusCode int
	Response   string
}

// newTestServer serves one expectation and fails the test on any mismatch.
func newTestServer(t *testing.T, exp expectation) *internalhttp.Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, exp.Method, r.Method)
		assert.Equal(t, exp.Path, r.URL.Path)
		assert.Equal(t, exp.Query, r.URL.RawQuery)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		if exp.Body != "" {
			assert.JSONEq(t, exp.Body, string(body))
		}

		status := exp.StatusCode
		if status == 0 {
			status = http.StatusOK
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(exp.Response))
	}))
	t.Cleanup(server.Close)

	return internalhttp.NewClient(server.URL, nil)
}

// notCalled returns a pipeline whose server fails the test if it is reached.
func notCalled(t *testing.T) *internalhttp.Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))
	t.Cleanup(server.Close)

	return internalhttp.NewClient(server.URL, nil)
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return string(data)
}
