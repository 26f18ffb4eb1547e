package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewEscrowsCommand creates the escrows command group.
func NewEscrowsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "escrows",
		Aliases: []string{"escrow", "ecw"},
		Short:   "Manage escrows",
		Long:    "Release amounts held in custody by payments",
	}

	cmd.AddCommand(newEscrowsReleaseCommand())

	return cmd
}

func newEscrowsReleaseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "release ESCROW_ID",
		Short: "Release an escrow",
		Long:  "Release the amount held by an escrow to its receivers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			escrow, err := client.Escrows().Release(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to release escrow: %w", err)
			}

			return renderProperties(cmd.OutOrStdout(), escrow, [][2]string{
				{"ID", escrow.ID},
				{"Status", formatValue(string(escrow.Status))},
				{"Description", formatValue(escrow.Description)},
				{"Amount", formatCents(escrow.Amount, "")},
				{"Updated", formatTimestamp(escrow.UpdatedAt)},
			})
		},
	}
}
