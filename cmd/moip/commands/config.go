package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moip/moip-sdk-go/internal/auth"
	"github.com/moip/moip-sdk-go/internal/constants"
	"github.com/moip/moip-sdk-go/internal/logging"
	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/moip/moip-sdk-go/pkg/moipclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"
)

// Configuration keys shared by flags, environment variables and the config file.
const (
	keyEnvironment     = "environment"
	keyEndpoint        = "endpoint"
	keyConnectEndpoint = "connect_endpoint"
	keyToken           = "token"
	keyKey             = "key"
	keyAccessToken     = "access_token"
	keyRefreshToken    = "refresh_token"
	keyTokenExpiresAt  = "token_expires_at"
	keyClientID        = "client_id"
	keyOutput          = "output"
	keyConnectTimeout  = "connect_timeout"
	keyReadTimeout     = "read_timeout"
	keyLogLevel        = "log.level"
	keyLogFormat       = "log.format"
	keyLogTimestamp    = "log.timestamp"
	keyVerbose         = "verbose"
)

// Config represents the CLI configuration.
type Config struct {
	Environment     string     `json:"environment,omitempty"      validate:"omitempty,oneof=production sandbox connect-production connect-sandbox" yaml:"environment,omitempty"`
	Endpoint        string     `json:"endpoint,omitempty"         validate:"omitempty,url"                                                         yaml:"endpoint,omitempty"`
	ConnectEndpoint string     `json:"connect_endpoint,omitempty" validate:"omitempty,url"                                                         yaml:"connect_endpoint,omitempty"`
	Token           string     `json:"token,omitempty"            yaml:"token,omitempty"`
	Key             string     `json:"key,omitempty"              yaml:"key,omitempty"`
	AccessToken     string     `json:"access_token,omitempty"     yaml:"access_token,omitempty"`
	RefreshToken    string     `json:"refresh_token,omitempty"    yaml:"refresh_token,omitempty"`
	TokenExpiresAt  *time.Time `json:"token_expires_at,omitempty" yaml:"token_expires_at,omitempty"`
	ClientID        string     `json:"client_id,omitempty"        yaml:"client_id,omitempty"`

	Output         string         `json:"output,omitempty"          validate:"omitempty,oneof=table json yaml" yaml:"output,omitempty"`
	ConnectTimeout time.Duration  `json:"connect_timeout,omitempty" validate:"min=0"                           yaml:"connect_timeout,omitempty"`
	ReadTimeout    time.Duration  `json:"read_timeout,omitempty"    validate:"min=0"                           yaml:"read_timeout,omitempty"`
	Log            logging.Config `json:"log"                       yaml:"log"`
}

// environments maps --env names to base URLs.
var environments = map[string]string{
	"production":         moip.Production,
	"sandbox":            moip.Sandbox,
	"connect-production": moip.ConnectProduction,
	"connect-sandbox":    moip.ConnectSandbox,
}

var (
	configValidator     *validator.Validate
	configValidatorOnce sync.Once
)

func getValidator() *validator.Validate {
	configValidatorOnce.Do(func() {
		configValidator = validator.New(validator.WithRequiredStructEnabled())
	})

	return configValidator
}

// validateConfig checks the configuration against its struct tags.
func validateConfig(config *Config) error {
	err := getValidator().Struct(config)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the Moip CLI configuration stored in ~/.moip/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration with credentials masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if !showSecrets {
				config = maskSecrets(config)
			}

			return render(cmd.OutOrStdout(), config, func(table *tablewriter.Table) {
				table.Header("Key", "Value")

				for _, row := range configRows(config) {
					_ = table.Append(row[0], row[1])
				}
			})
		},
	}

	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "display credentials in clear text")

	return cmd
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and save it to the config file. Keys: " + configKeyList(),
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigValue(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file. Keys: " + configKeyList(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigValue(cmd.OutOrStdout(), args[0], "")
		},
	}
}

func updateConfigValue(out io.Writer, key, value string) error {
	setter, ok := configSetters[key]
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	config := loadConfig()

	err := setter(config, value)
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	err = validateConfig(config)
	if err != nil {
		return err
	}

	err = saveConfig(config)
	if err != nil {
		return err
	}

	if value == "" {
		_, _ = fmt.Fprintf(out, "Unset %s\n", key)
	} else {
		_, _ = fmt.Fprintf(out, "Set %s\n", key)
	}

	return nil
}

// configSetters assign a string value to a configuration key. An empty value clears it.
var configSetters = map[string]func(*Config, string) error{
	keyEnvironment:     func(c *Config, v string) error { c.Environment = v; return nil },
	keyEndpoint:        func(c *Config, v string) error { c.Endpoint = v; return nil },
	keyConnectEndpoint: func(c *Config, v string) error { c.ConnectEndpoint = v; return nil },
	keyToken:           func(c *Config, v string) error { c.Token = v; return nil },
	keyKey:             func(c *Config, v string) error { c.Key = v; return nil },
	keyAccessToken:     func(c *Config, v string) error { c.AccessToken = v; return nil },
	keyRefreshToken:    func(c *Config, v string) error { c.RefreshToken = v; return nil },
	keyClientID:        func(c *Config, v string) error { c.ClientID = v; return nil },
	keyOutput:          func(c *Config, v string) error { c.Output = v; return nil },
	keyLogLevel:        func(c *Config, v string) error { c.Log.Level = v; return nil },
	keyLogFormat:       func(c *Config, v string) error { c.Log.Format = v; return nil },
	keyConnectTimeout: func(c *Config, v string) error {
		return setDuration(&c.ConnectTimeout, v)
	},
	keyReadTimeout: func(c *Config, v string) error {
		return setDuration(&c.ReadTimeout, v)
	},
	keyLogTimestamp: func(c *Config, v string) error {
		if v == "" {
			c.Log.Timestamp = false

			return nil
		}

		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing boolean: %w", err)
		}

		c.Log.Timestamp = enabled

		return nil
	},
}

func setDuration(target *time.Duration, value string) error {
	if value == "" {
		*target = 0

		return nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parsing duration: %w", err)
	}

	*target = duration

	return nil
}

func configKeyList() string {
	keys := make([]string, 0, len(configSetters))
	for key := range configSetters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	list := ""
	for i, key := range keys {
		if i > 0 {
			list += ", "
		}

		list += key
	}

	return list
}

// loadConfig builds the configuration from the config file, environment and flags.
func loadConfig() *Config {
	config := &Config{
		Environment:     viper.GetString(keyEnvironment),
		Endpoint:        viper.GetString(keyEndpoint),
		ConnectEndpoint: viper.GetString(keyConnectEndpoint),
		Token:           viper.GetString(keyToken),
		Key:             viper.GetString(keyKey),
		AccessToken:     viper.GetString(keyAccessToken),
		RefreshToken:    viper.GetString(keyRefreshToken),
		ClientID:        viper.GetString(keyClientID),
		Output:          viper.GetString(keyOutput),
		ConnectTimeout:  viper.GetDuration(keyConnectTimeout),
		ReadTimeout:     viper.GetDuration(keyReadTimeout),
		Log: logging.Config{
			Level:     viper.GetString(keyLogLevel),
			Format:    viper.GetString(keyLogFormat),
			Timestamp: viper.GetBool(keyLogTimestamp),
		},
	}

	if viper.IsSet(keyTokenExpiresAt) {
		expiresAt := viper.GetTime(keyTokenExpiresAt)
		if !expiresAt.IsZero() {
			config.TokenExpiresAt = &expiresAt
		}
	}

	return config
}

// configFilePath returns the config file in use, defaulting to ~/.moip/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".moip", "config.yml"), nil
}

// saveConfig writes the configuration and makes it the in-memory state.
func saveConfig(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	syncViper(config)

	return nil
}

// syncViper mirrors a saved configuration into viper so later reads in the
// same process observe it.
func syncViper(config *Config) {
	viper.Set(keyEnvironment, config.Environment)
	viper.Set(keyEndpoint, config.Endpoint)
	viper.Set(keyConnectEndpoint, config.ConnectEndpoint)
	viper.Set(keyToken, config.Token)
	viper.Set(keyKey, config.Key)
	viper.Set(keyAccessToken, config.AccessToken)
	viper.Set(keyRefreshToken, config.RefreshToken)
	viper.Set(keyClientID, config.ClientID)
	viper.Set(keyOutput, config.Output)
	viper.Set(keyConnectTimeout, config.ConnectTimeout)
	viper.Set(keyReadTimeout, config.ReadTimeout)
	viper.Set(keyLogLevel, config.Log.Level)
	viper.Set(keyLogFormat, config.Log.Format)
	viper.Set(keyLogTimestamp, config.Log.Timestamp)

	if config.TokenExpiresAt != nil {
		viper.Set(keyTokenExpiresAt, *config.TokenExpiresAt)
	} else {
		viper.Set(keyTokenExpiresAt, nil)
	}
}

func maskSecrets(config *Config) *Config {
	masked := *config

	for _, field := range []*string{&masked.Token, &masked.Key, &masked.AccessToken, &masked.RefreshToken} {
		if *field != "" {
			*field = constants.MaskedSecret
		}
	}

	return &masked
}

func configRows(config *Config) [][2]string {
	expiresAt := ""
	if config.TokenExpiresAt != nil {
		expiresAt = config.TokenExpiresAt.Format(constants.DisplayTimeLayout)
	}

	endpoint, err := resolveEndpoint(config)
	if err != nil {
		endpoint = ""
	}

	return [][2]string{
		{keyEnvironment, formatValue(config.Environment)},
		{keyEndpoint, formatValue(endpoint)},
		{keyConnectEndpoint, formatValue(resolveConnectEndpoint(config))},
		{keyToken, formatValue(config.Token)},
		{keyKey, formatValue(config.Key)},
		{keyAccessToken, formatValue(config.AccessToken)},
		{keyRefreshToken, formatValue(config.RefreshToken)},
		{keyTokenExpiresAt, formatValue(expiresAt)},
		{keyClientID, formatValue(config.ClientID)},
		{keyOutput, formatValue(config.Output)},
		{keyConnectTimeout, config.ConnectTimeout.String()},
		{keyReadTimeout, config.ReadTimeout.String()},
		{keyLogLevel, formatValue(config.Log.Level)},
		{keyLogFormat, formatValue(config.Log.Format)},
		{keyLogTimestamp, strconv.FormatBool(config.Log.Timestamp)},
	}
}

// resolveEndpoint returns the explicit endpoint or the one named by the environment.
func resolveEndpoint(config *Config) (string, error) {
	if config.Endpoint != "" {
		return config.Endpoint, nil
	}

	if config.Environment == "" {
		return "", constants.ErrNoEndpointConfigured
	}

	endpoint, ok := environments[config.Environment]
	if !ok {
		return "", fmt.Errorf("%w: %s", constants.ErrUnknownEnvironment, config.Environment)
	}

	return endpoint, nil
}

// resolveConnectEndpoint returns the OAuth endpoint paired with the configured environment.
func resolveConnectEndpoint(config *Config) string {
	if config.ConnectEndpoint != "" {
		return config.ConnectEndpoint
	}

	if config.Environment == "production" || config.Environment == "connect-production" {
		return moip.ConnectProduction
	}

	return moip.ConnectSandbox
}

// newLogger returns the CLI logger. --verbose lowers the level to debug.
func newLogger(config *Config) *logging.Logger {
	logConfig := config.Log
	if viper.GetBool(keyVerbose) {
		logConfig.Level = "debug"
	}

	return logging.New(logConfig, os.Stderr).WithComponent("moip-cli")
}

// clientConfig builds the library configuration shared by every command.
func clientConfig(config *Config, endpoint string) *moip.Config {
	connectTimeout := config.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = constants.DefaultConnectTimeout
	}

	readTimeout := config.ReadTimeout
	if readTimeout == 0 {
		readTimeout = constants.DefaultReadTimeout
	}

	return &moip.Config{
		APIEndpoint:    endpoint,
		ConnectTimeout: connectTimeout,
		ReadTimeout:    readTimeout,
		Debug:          viper.GetBool(keyVerbose),
		Logger:         newLogger(config),
	}
}

// CreateClient creates an API client from the effective configuration.
// Stored Connect tokens are renewed on expiry and the renewed token is saved.
func CreateClient(ctx context.Context) (moip.Client, error) {
	config := loadConfig()

	err := validateConfig(config)
	if err != nil {
		return nil, err
	}

	endpoint, err := resolveEndpoint(config)
	if err != nil {
		return nil, err
	}

	moipConfig := clientConfig(config, endpoint)

	switch {
	case config.AccessToken != "" && config.RefreshToken != "":
		source, err := connectTokenSource(ctx, config, endpoint, moipConfig.Logger)
		if err != nil {
			return nil, err
		}

		moipConfig.TokenSource = source
	case config.AccessToken != "":
		moipConfig.AccessToken = config.AccessToken
	case config.Token != "" && config.Key != "":
		moipConfig.Token = config.Token
		moipConfig.Key = config.Key
	default:
		return nil, constants.ErrNotAuthenticated
	}

	return newClient(moipConfig)
}

func newClient(moipConfig *moip.Config) (moip.Client, error) {
	client, err := moipclient.New(moipConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func connectTokenSource(ctx context.Context, config *Config, endpoint string, logger moip.Logger) (oauth2.TokenSource, error) {
	connect, err := CreateConnectClient(config)
	if err != nil {
		return nil, err
	}

	token := &oauth2.Token{
		AccessToken:  config.AccessToken,
		RefreshToken: config.RefreshToken,
		TokenType:    "OAuth",
	}

	if config.TokenExpiresAt != nil {
		token.Expiry = *config.TokenExpiresAt
	}

	return auth.NewPersistingTokenSource(connect.TokenSource(ctx, token), NewConfigPersister(), endpoint, config.AccessToken, logger), nil
}

// CreateConnectClient creates a client for the Connect OAuth endpoints.
func CreateConnectClient(config *Config) (moip.ConnectClient, error) {
	client, err := newClient(clientConfig(config, resolveConnectEndpoint(config)))
	if err != nil {
		return nil, err
	}

	return client.Connect(), nil
}
