package commands

import (
	"fmt"

	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer", "cus"},
		Short:   "Manage customers",
		Long:    "Create and inspect customers and manage their stored credit cards",
	}

	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersAddCardCommand())
	cmd.AddCommand(newCustomersDeleteCardCommand())

	return cmd
}

func newCustomersCreateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long:  "Create a customer from a JSON or YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &moip.CustomerRequest{}

			err := readRequestFile(fromFile, request)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			customer, err := client.Customers().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			return renderCustomer(cmd, customer)
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "customer request file (JSON or YAML)")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Long:  "Display detailed information about a specific customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			return renderCustomer(cmd, customer)
		},
	}
}

func newCustomersAddCardCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "add-card CUSTOMER_ID",
		Short: "Store a credit card",
		Long:  "Store a credit card for a customer from a JSON or YAML funding instrument file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &moip.FundingInstrumentRequest{}

			err := readRequestFile(fromFile, request)
			if err != nil {
				return err
			}

			if request.Method == "" {
				request.Method = moip.FundingMethodCreditCard
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			instrument, err := client.Customers().AddCreditCard(cmd.Context(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to add credit card: %w", err)
			}

			return render(cmd.OutOrStdout(), instrument, func(table *tablewriter.Table) {
				table.Header("Card ID", "Brand", "First 6", "Last 4")

				card := instrument.CreditCard
				if card == nil {
					card = &moip.CreditCard{}
				}

				_ = table.Append(card.ID, card.Brand, card.First6, card.Last4)
			})
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "funding instrument file (JSON or YAML)")

	return cmd
}

func newCustomersDeleteCardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-card CREDIT_CARD_ID",
		Short: "Delete a stored credit card",
		Long:  "Delete a credit card stored for a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			err = client.Customers().DeleteCreditCard(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete credit card: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted credit card %s\n", args[0])

			return nil
		},
	}
}

func renderCustomer(cmd *cobra.Command, customer *moip.Customer) error {
	document := ""
	if customer.TaxDocument != nil {
		document = string(customer.TaxDocument.Type) + " " + customer.TaxDocument.Number
	}

	return renderProperties(cmd.OutOrStdout(), customer, [][2]string{
		{"ID", formatValue(customer.ID)},
		{"Own ID", formatValue(customer.OwnID)},
		{"Name", formatValue(customer.Fullname)},
		{"Email", formatValue(customer.Email)},
		{"Tax Document", formatValue(document)},
		{"Stored Cards", formatInt(len(customer.FundingInstruments))},
		{"Created", formatTimestamp(customer.CreatedAt)},
	})
}
