package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// setupConfig points viper at a config file in a temporary directory and
// resets the global state when the test ends.
func setupConfig(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(configFile)

	return configFile
}

// loginTo configures basic credentials for the given endpoint.
func loginTo(endpoint string) {
	viper.Set(keyEndpoint, endpoint)
	viper.Set(keyToken, "TOKEN")
	viper.Set(keyKey, "KEY")
}

// recordedRequest is what newAPIServer saw of the last request.
type recordedRequest struct {
	mutex    sync.Mutex
	Method   string
	Path     string
	RawQuery string
	Auth     string
	Body     string
}

func (r *recordedRequest) snapshot() recordedRequest {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return recordedRequest{Method: r.Method, Path: r.Path, RawQuery: r.RawQuery, Auth: r.Auth, Body: r.Body}
}

// newAPIServer serves a fixed response and records the last request.
func newAPIServer(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestBody, _ := io.ReadAll(r.Body)

		recorded.mutex.Lock()
		recorded.Method = r.Method
		recorded.Path = r.URL.Path
		recorded.RawQuery = r.URL.RawQuery
		recorded.Auth = r.Header.Get("Authorization")
		recorded.Body = string(requestBody)
		recorded.mutex.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, recorded
}

// execute runs cmd with args and returns its standard output.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
