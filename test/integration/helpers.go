//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Environment string
	Token       string
	Key         string
	MoipPath    string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables and an
// optional .env file at the repository root.
func LoadTestConfig() *TestConfig {
	_ = godotenv.Load(filepath.Join("..", "..", ".env"))

	environment := os.Getenv("MOIP_ENVIRONMENT")
	if environment == "" {
		environment = "sandbox"
	}

	return &TestConfig{
		Environment: environment,
		Token:       os.Getenv("MOIP_TOKEN"),
		Key:         os.Getenv("MOIP_KEY"),
		MoipPath:    getMoipPath(),
		Verbose:     os.Getenv("MOIP_VERBOSE") == "true",
	}
}

// getMoipPath determines the path to the moip binary
func getMoipPath() string {
	if path := os.Getenv("MOIP_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../moip",
		"./moip",
		"../moip",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "moip"
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Token == "" || config.Key == "" {
		t.Skip("MOIP_TOKEN and MOIP_KEY not set, skipping integration test")
	}

	if config.Environment == "production" {
		t.Skip("integration tests never run against production")
	}

	if _, err := exec.LookPath(config.MoipPath); err != nil {
		t.Skipf("moip binary not found at %s, skipping integration test", config.MoipPath)
	}
}

// CommandRunner runs moip commands against an isolated config file
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes a moip command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--config", runner.configFile}, args...)

	cmd := exec.Command(runner.config.MoipPath, args...)
	cmd.Env = append(os.Environ(),
		"MOIP_ENVIRONMENT="+runner.config.Environment,
		"MOIP_TOKEN="+runner.config.Token,
		"MOIP_KEY="+runner.config.Key,
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.MoipPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a moip command with JSON output and decodes it into target
func (runner *CommandRunner) RunJSON(target interface{}, args ...string) {
	runner.t.Helper()

	stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
	require.NoError(runner.t, err, "stderr: %s", stderr)
	require.NoError(runner.t, json.Unmarshal([]byte(stdout), target), "stdout: %s", stdout)
}

// WriteRequestFile writes a request body for --from-file
func (runner *CommandRunner) WriteRequestFile(name string, body interface{}) string {
	runner.t.Helper()

	data, err := json.Marshal(body)
	require.NoError(runner.t, err)

	path := filepath.Join(runner.t.TempDir(), name)
	require.NoError(runner.t, os.WriteFile(path, data, 0o600))

	return path
}

// GenerateOwnID creates a unique merchant identifier
func GenerateOwnID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// CleanupPreference attempts to delete a notification preference
func (runner *CommandRunner) CleanupPreference(id string) {
	stdout, stderr, err := runner.Run("notifications", "delete", id)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for notification preference %s: %s\nStderr: %s", id, stdout, stderr)
	}
}

// WaitForCondition waits for a condition to be met with timeout
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	t.Helper()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	timeoutChan := time.After(timeout)

	for {
		select {
		case <-ticker.C:
			if condition() {
				return
			}
		case <-timeoutChan:
			t.Fatalf("Timeout waiting for condition: %s", message)
		}
	}
}
