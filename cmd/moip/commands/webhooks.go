package commands

import (
	"fmt"

	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewWebhooksCommand creates the webhooks command group.
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook", "wh"},
		Short:   "Inspect webhook deliveries",
		Long:    "List notifications Moip delivered to the account's targets",
	}

	cmd.AddCommand(newWebhooksListCommand())

	return cmd
}

func newWebhooksListCommand() *cobra.Command {
	params := &moip.WebhookListParams{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List webhook deliveries",
		Long:  "List webhook deliveries, optionally filtered by resource or event",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			webhooks, err := client.Webhooks().List(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to list webhooks: %w", err)
			}

			return render(cmd.OutOrStdout(), webhooks, func(table *tablewriter.Table) {
				table.Header("ID", "Resource", "Event", "Status", "URL", "Sent")

				for _, webhook := range webhooks.Webhooks {
					_ = table.Append(webhook.ID, webhook.ResourceID, webhook.Event, webhook.Status, webhook.URL, formatTimestamp(webhook.SentAt))
				}
			})
		},
	}

	cmd.Flags().StringVar(&params.ResourceID, "resource-id", "", "only deliveries about this resource")
	cmd.Flags().StringVar(&params.Event, "event", "", "only deliveries of this event")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum number of deliveries")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of deliveries to skip")

	return cmd
}
