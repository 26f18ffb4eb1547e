package commands

import (
	"fmt"
	"strings"

	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewNotificationsCommand creates the notification preferences command group.
func NewNotificationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notification", "npr"},
		Short:   "Manage notification preferences",
		Long:    "Create, inspect, list and delete the targets Moip notifies about events",
	}

	cmd.AddCommand(newNotificationsCreateCommand())
	cmd.AddCommand(newNotificationsGetCommand())
	cmd.AddCommand(newNotificationsListCommand())
	cmd.AddCommand(newNotificationsDeleteCommand())

	return cmd
}

func newNotificationsCreateCommand() *cobra.Command {
	var (
		target string
		events []string
		media  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a notification preference",
		Long:  "Register a target URL that receives the given events",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			preference, err := client.NotificationPreferences().Create(cmd.Context(), &moip.NotificationPreferenceRequest{
				Events: events,
				Target: target,
				Media:  media,
			})
			if err != nil {
				return fmt.Errorf("failed to create notification preference: %w", err)
			}

			return renderPreference(cmd, preference)
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "URL notified about events")
	cmd.Flags().StringSliceVar(&events, "event", nil, "event to notify, for example ORDER.* (repeatable)")
	cmd.Flags().StringVar(&media, "media", "WEBHOOK", "notification media")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}

func newNotificationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PREFERENCE_ID",
		Short: "Get notification preference details",
		Long:  "Display detailed information about a specific notification preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			preference, err := client.NotificationPreferences().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get notification preference: %w", err)
			}

			return renderPreference(cmd, preference)
		},
	}
}

func newNotificationsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notification preferences",
		Long:  "List every notification preference of the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			preferences, err := client.NotificationPreferences().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list notification preferences: %w", err)
			}

			return render(cmd.OutOrStdout(), preferences, func(table *tablewriter.Table) {
				table.Header("ID", "Target", "Media", "Events")

				for _, preference := range preferences {
					_ = table.Append(preference.ID, preference.Target, preference.Media, strings.Join(preference.Events, ", "))
				}
			})
		},
	}
}

func newNotificationsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PREFERENCE_ID",
		Short: "Delete a notification preference",
		Long:  "Stop notifying the target of a notification preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			err = client.NotificationPreferences().Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete notification preference: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted notification preference %s\n", args[0])

			return nil
		},
	}
}

func renderPreference(cmd *cobra.Command, preference *moip.NotificationPreference) error {
	return renderProperties(cmd.OutOrStdout(), preference, [][2]string{
		{"ID", formatValue(preference.ID)},
		{"Target", formatValue(preference.Target)},
		{"Media", formatValue(preference.Media)},
		{"Events", formatValue(strings.Join(preference.Events, ", "))},
		{"Token", formatValue(preference.Token)},
	})
}
