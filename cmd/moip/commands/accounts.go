package commands

import (
	"fmt"
	"strconv"

	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/spf13/cobra"
)

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account", "acc"},
		Short:   "Manage Moip accounts",
		Long:    "Create and inspect Moip accounts and check whether a tax document is registered",
	}

	cmd.AddCommand(newAccountsCreateCommand())
	cmd.AddCommand(newAccountsGetCommand())
	cmd.AddCommand(newAccountsExistsCommand())

	return cmd
}

func newAccountsCreateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Long:  "Create a Moip account from a JSON or YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &moip.AccountRequest{}

			err := readRequestFile(fromFile, request)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			account, err := client.Accounts().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			return renderAccount(cmd, account)
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "account request file (JSON or YAML)")

	return cmd
}

func newAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCOUNT_ID",
		Short: "Get account details",
		Long:  "Display detailed information about a specific Moip account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			account, err := client.Accounts().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			return renderAccount(cmd, account)
		},
	}
}

func newAccountsExistsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exists TAX_DOCUMENT",
		Short: "Check whether an account exists",
		Long:  "Check whether a Moip account is registered for a CPF or CNPJ",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			exists, err := client.Accounts().Exists(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			result := struct {
				TaxDocument string `json:"tax_document" yaml:"tax_document"`
				Exists      bool   `json:"exists"       yaml:"exists"`
			}{
				TaxDocument: args[0],
				Exists:      exists,
			}

			return renderProperties(cmd.OutOrStdout(), result, [][2]string{
				{"Tax Document", result.TaxDocument},
				{"Exists", strconv.FormatBool(result.Exists)},
			})
		},
	}
}

func renderAccount(cmd *cobra.Command, account *moip.Account) error {
	email := ""
	if account.Email != nil {
		email = account.Email.Address
	}

	name := ""
	if account.Person != nil {
		name = account.Person.Name + " " + account.Person.LastName
	}

	return renderProperties(cmd.OutOrStdout(), account, [][2]string{
		{"ID", formatValue(account.ID)},
		{"Login", formatValue(account.Login)},
		{"Type", formatValue(account.Type)},
		{"Email", formatValue(email)},
		{"Name", formatValue(name)},
		{"Transparent", strconv.FormatBool(account.TransparentAccount)},
		{"Created", formatTimestamp(account.CreatedAt)},
	})
}
