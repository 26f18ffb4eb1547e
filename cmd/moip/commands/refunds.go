package commands

import (
	"fmt"

	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewRefundsCommand creates the refunds command group.
func NewRefundsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "refunds",
		Aliases: []string{"refund", "ref"},
		Short:   "Manage refunds",
		Long:    "Refund payments or orders and inspect refunds",
	}

	cmd.AddCommand(newRefundsCreateCommand())
	cmd.AddCommand(newRefundsGetCommand())
	cmd.AddCommand(newRefundsListCommand())

	return cmd
}

func newRefundsCreateCommand() *cobra.Command {
	var (
		order    bool
		amount   int
		fromFile string
	)

	cmd := &cobra.Command{
		Use:   "create PAYMENT_ID",
		Short: "Refund a payment or an order",
		Long: `Refund a payment. With --order the argument is an order ID and the order is refunded.

Without --amount or --from-file the full amount is refunded. A request file
can name a refunding instrument such as a bank account.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var request *moip.RefundRequest

			if fromFile != "" {
				request = &moip.RefundRequest{}

				err := readRequestFile(fromFile, request)
				if err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("amount") {
				if request == nil {
					request = &moip.RefundRequest{}
				}

				request.Amount = &amount
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			var refund *moip.Refund
			if order {
				refund, err = client.Refunds().RefundOrder(cmd.Context(), args[0], request)
			} else {
				refund, err = client.Refunds().RefundPayment(cmd.Context(), args[0], request)
			}

			if err != nil {
				return fmt.Errorf("failed to create refund: %w", err)
			}

			return renderRefund(cmd, refund)
		},
	}

	cmd.Flags().BoolVar(&order, "order", false, "refund an order instead of a payment")
	cmd.Flags().IntVar(&amount, "amount", 0, "partial amount in cents")
	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "refund request file (JSON or YAML)")

	return cmd
}

func newRefundsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get REFUND_ID",
		Short: "Get refund details",
		Long:  "Display detailed information about a specific refund",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			refund, err := client.Refunds().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get refund: %w", err)
			}

			return renderRefund(cmd, refund)
		},
	}
}

func newRefundsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list PAYMENT_ID",
		Short: "List refunds of a payment",
		Long:  "List every refund issued for a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			refunds, err := client.Refunds().ListForPayment(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list refunds: %w", err)
			}

			return render(cmd.OutOrStdout(), refunds, func(table *tablewriter.Table) {
				table.Header("ID", "Status", "Type", "Amount", "Created")

				for _, refund := range refunds.Refunds {
					_ = table.Append(refund.ID, string(refund.Status), refund.Type, formatAmount(refund.Amount), formatTimestamp(refund.CreatedAt))
				}
			})
		},
	}
}

func renderRefund(cmd *cobra.Command, refund *moip.Refund) error {
	method := ""
	if refund.RefundingInstrument != nil {
		method = refund.RefundingInstrument.Method
	}

	return renderProperties(cmd.OutOrStdout(), refund, [][2]string{
		{"ID", refund.ID},
		{"Status", formatValue(string(refund.Status))},
		{"Type", formatValue(refund.Type)},
		{"Method", formatValue(method)},
		{"Amount", formatAmount(refund.Amount)},
		{"Created", formatTimestamp(refund.CreatedAt)},
	})
}
