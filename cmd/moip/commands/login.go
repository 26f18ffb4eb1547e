package commands

import (
	"fmt"
	"syscall"

	"github.com/moip/moip-sdk-go/internal/constants"
	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Moip credentials",
		Long: `Store Moip credentials in the config file.

Use the global --token and --key flags for basic authentication, or
--access-token for an OAuth token issued through Moip Connect. The key is
prompted for when omitted. --env or --endpoint select the API; sandbox is used
when neither is configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			useOAuth := cmd.Flags().Changed("access-token") || (config.AccessToken != "" && config.Token == "")
			if !useOAuth && config.Token == "" {
				return constants.ErrCredentialsRequired
			}

			if useOAuth {
				config.Token = ""
				config.Key = ""
			} else {
				config.AccessToken = ""
				config.RefreshToken = ""
				config.TokenExpiresAt = nil
			}

			if !useOAuth && config.Key == "" {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read key: %w", err)
				}

				_, _ = fmt.Fprintln(cmd.ErrOrStderr())
				config.Key = string(byteKey)
			}

			if config.Environment == "" && config.Endpoint == "" {
				config.Environment = "sandbox"
			}

			err := validateConfig(config)
			if err != nil {
				return err
			}

			endpoint, err := resolveEndpoint(config)
			if err != nil {
				return err
			}

			if !skipVerify {
				err = verifyCredentials(cmd, config, endpoint)
				if err != nil {
					return err
				}
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s\n", endpoint)

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "store credentials without calling the API")

	return cmd
}

// verifyCredentials lists a single order with the candidate credentials.
func verifyCredentials(cmd *cobra.Command, config *Config, endpoint string) error {
	moipConfig := clientConfig(config, endpoint)
	moipConfig.Token = config.Token
	moipConfig.Key = config.Key
	moipConfig.AccessToken = config.AccessToken

	client, err := newClient(moipConfig)
	if err != nil {
		return err
	}

	_, err = client.Orders().List(cmd.Context(), moip.NewListParams().WithLimit(1))
	if err != nil {
		return fmt.Errorf("failed to verify credentials: %w", err)
	}

	return nil
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Long:  "Remove every stored credential from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""
			config.Key = ""
			config.AccessToken = ""
			config.RefreshToken = ""
			config.TokenExpiresAt = nil

			err := saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}
