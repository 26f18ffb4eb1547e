package commands

import (
	"fmt"
	"syscall"

	"github.com/moip/moip-sdk-go/internal/constants"
	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewConnectCommand creates the Moip Connect OAuth command group.
func NewConnectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Run the Moip Connect OAuth flow",
		Long:  "Build authorization URLs and exchange or refresh Moip Connect access tokens",
	}

	cmd.AddCommand(newConnectAuthorizeURLCommand())
	cmd.AddCommand(newConnectTokenCommand())
	cmd.AddCommand(newConnectRefreshCommand())

	return cmd
}

func newConnectAuthorizeURLCommand() *cobra.Command {
	var (
		clientID    string
		redirectURI string
		scopes      []string
	)

	cmd := &cobra.Command{
		Use:   "authorize-url",
		Short: "Print the authorization URL",
		Long:  "Print the page a merchant visits to grant the application permissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if clientID == "" {
				clientID = config.ClientID
			}

			connect, err := CreateConnectClient(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), connect.AuthorizeURL(clientID, redirectURI, scopes...))

			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "application ID (defaults to the configured client_id)")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "URL the merchant is sent back to")
	cmd.Flags().StringSliceVar(&scopes, "scope", []string{"RECEIVE_FUNDS"}, "requested permissions")

	return cmd
}

func newConnectTokenCommand() *cobra.Command {
	var (
		request moip.TokenRequest
		save    bool
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Exchange an authorization code",
		Long:  "Exchange an authorization code for an access token. The client secret is prompted for when omitted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if request.ClientID == "" {
				request.ClientID = config.ClientID
			}

			if request.ClientSecret == "" {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Client secret: ")

				secret, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read client secret: %w", err)
				}

				_, _ = fmt.Fprintln(cmd.ErrOrStderr())
				request.ClientSecret = string(secret)
			}

			connect, err := CreateConnectClient(config)
			if err != nil {
				return err
			}

			token, err := connect.Token(cmd.Context(), &request)
			if err != nil {
				return fmt.Errorf("failed to exchange authorization code: %w", err)
			}

			if save {
				config.ClientID = request.ClientID

				err = storeToken(config, token)
				if err != nil {
					return err
				}
			}

			return renderToken(cmd, token)
		},
	}

	cmd.Flags().StringVar(&request.ClientID, "client-id", "", "application ID (defaults to the configured client_id)")
	cmd.Flags().StringVar(&request.ClientSecret, "client-secret", "", "application secret")
	cmd.Flags().StringVar(&request.RedirectURI, "redirect-uri", "", "redirect URI used for authorization")
	cmd.Flags().StringVar(&request.Code, "code", "", "authorization code")
	cmd.Flags().BoolVar(&save, "save", false, "store the tokens in the config file")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func newConnectRefreshCommand() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the stored access token",
		Long:  "Renew the configured access token with the configured refresh token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.RefreshToken == "" {
				return moip.ErrRefreshTokenMissing
			}

			connect, err := CreateConnectClient(config)
			if err != nil {
				return err
			}

			token, err := connect.Refresh(cmd.Context(), &moip.RefreshRequest{RefreshToken: config.RefreshToken})
			if err != nil {
				return fmt.Errorf("failed to refresh access token: %w", err)
			}

			if save {
				err = storeToken(config, token)
				if err != nil {
					return err
				}
			}

			return renderToken(cmd, token)
		},
	}

	cmd.Flags().BoolVar(&save, "save", true, "store the renewed tokens in the config file")

	return cmd
}

// storeToken saves a Connect token as the CLI credentials.
func storeToken(config *Config, token *moip.AccessToken) error {
	oauthToken := token.Token()

	config.AccessToken = oauthToken.AccessToken
	if oauthToken.RefreshToken != "" {
		config.RefreshToken = oauthToken.RefreshToken
	}

	config.TokenExpiresAt = nil
	if !oauthToken.Expiry.IsZero() {
		expiry := oauthToken.Expiry
		config.TokenExpiresAt = &expiry
	}

	config.Token = ""
	config.Key = ""

	return saveConfig(config)
}

// renderToken masks the tokens in table output. JSON and YAML output carry
// them in full for scripting.
func renderToken(cmd *cobra.Command, token *moip.AccessToken) error {
	account := ""
	if token.MoipAccount != nil {
		account = token.MoipAccount.ID
	}

	refresh := ""
	if token.RefreshToken != "" {
		refresh = constants.MaskedSecret
	}

	return renderProperties(cmd.OutOrStdout(), token, [][2]string{
		{"Access Token", constants.MaskedSecret},
		{"Refresh Token", formatValue(refresh)},
		{"Expires", formatValue(token.ExpiresIn)},
		{"Scope", formatValue(token.Scope)},
		{"Account", formatValue(account)},
	})
}
