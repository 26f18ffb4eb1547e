package commands

import (
	"fmt"
	"strconv"

	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/spf13/cobra"
)

// NewPaymentsCommand creates the payments command group.
func NewPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment", "pay"},
		Short:   "Manage payments",
		Long:    "Create, inspect, capture and cancel payments of Moip orders",
	}

	cmd.AddCommand(newPaymentsCreateCommand())
	cmd.AddCommand(newPaymentsGetCommand())
	cmd.AddCommand(newPaymentsCaptureCommand())
	cmd.AddCommand(newPaymentsCancelCommand())

	return cmd
}

func newPaymentsCreateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create ORDER_ID",
		Short: "Pay an order",
		Long:  "Create a payment for an order from a JSON or YAML payment request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &moip.PaymentRequest{}

			err := readRequestFile(fromFile, request)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			payment, err := client.Payments().Create(cmd.Context(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to create payment: %w", err)
			}

			return renderPayment(cmd, payment)
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "payment request file (JSON or YAML)")

	return cmd
}

func newPaymentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PAYMENT_ID",
		Short: "Get payment details",
		Long:  "Display detailed information about a specific payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			payment, err := client.Payments().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get payment: %w", err)
			}

			return renderPayment(cmd, payment)
		},
	}
}

func newPaymentsCaptureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "capture PAYMENT_ID",
		Short: "Capture a pre-authorized payment",
		Long:  "Capture a payment created with delayed capture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			payment, err := client.Payments().Capture(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to capture payment: %w", err)
			}

			return renderPayment(cmd, payment)
		},
	}
}

func newPaymentsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel PAYMENT_ID",
		Short: "Cancel a pre-authorized payment",
		Long:  "Cancel a payment created with delayed capture before it is captured",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			payment, err := client.Payments().CancelPreAuthorized(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel payment: %w", err)
			}

			return renderPayment(cmd, payment)
		},
	}
}

func renderPayment(cmd *cobra.Command, payment *moip.Payment) error {
	method := ""
	if payment.FundingInstrument != nil {
		method = string(payment.FundingInstrument.Method)
	}

	return renderProperties(cmd.OutOrStdout(), payment, [][2]string{
		{"ID", payment.ID},
		{"Status", formatValue(string(payment.Status))},
		{"Method", formatValue(method)},
		{"Amount", formatAmount(payment.Amount)},
		{"Installments", formatInt(payment.InstallmentCount)},
		{"Delay Capture", strconv.FormatBool(payment.DelayCapture)},
		{"Escrow", formatValue(payment.EscrowID())},
		{"Boleto", formatValue(payment.Links.PayBoleto())},
		{"Created", formatTimestamp(payment.CreatedAt)},
	})
}
