package commands

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order", "ord"},
		Short:   "Manage orders",
		Long:    "Create, inspect and list Moip orders",
	}

	cmd.AddCommand(newOrdersCreateCommand())
	cmd.AddCommand(newOrdersGetCommand())
	cmd.AddCommand(newOrdersListCommand())

	return cmd
}

func newOrdersCreateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an order",
		Long:  "Create an order from a JSON or YAML file. A random ownId is generated when the file has none.",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &moip.OrderRequest{}

			err := readRequestFile(fromFile, request)
			if err != nil {
				return err
			}

			if request.OwnID == "" {
				request.OwnID = uuid.NewString()
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			order, err := client.Orders().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create order: %w", err)
			}

			return renderOrder(cmd, order)
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "order request file (JSON or YAML)")

	return cmd
}

func newOrdersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORDER_ID",
		Short: "Get order details",
		Long:  "Display detailed information about a specific order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			order, err := client.Orders().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get order: %w", err)
			}

			return renderOrder(cmd, order)
		},
	}
}

func newOrdersListCommand() *cobra.Command {
	var (
		limit   int
		offset  int
		filters []string
		query   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Long: `List orders, optionally filtered.

Filters take the form FIELD=EXPRESSION, for example:
  moip orders list --filter status='in(PAID,WAITING)' --filter amount='bt(5000,10000)'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := moip.NewListParams().WithLimit(limit).WithOffset(offset)
			params.Query = query

			err := parseFilters(params, filters)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			orders, err := client.Orders().List(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to list orders: %w", err)
			}

			return render(cmd.OutOrStdout(), orders, func(table *tablewriter.Table) {
				table.Header("ID", "Own ID", "Status", "Amount", "Created")

				for _, order := range orders.Orders {
					_ = table.Append(order.ID, order.OwnID, string(order.Status), formatAmount(order.Amount), formatTimestamp(order.CreatedAt))
				}

				if orders.Summary != nil {
					_ = table.Append("", "", "Total "+strconv.Itoa(orders.Summary.Count), formatCents(orders.Summary.Amount, ""), "")
				}
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of orders")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of orders to skip")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as FIELD=EXPRESSION (repeatable)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "free text search")

	return cmd
}

func renderOrder(cmd *cobra.Command, order *moip.Order) error {
	customer := ""
	if order.Customer != nil {
		customer = order.Customer.ID
	}

	return renderProperties(cmd.OutOrStdout(), order, [][2]string{
		{"ID", order.ID},
		{"Own ID", formatValue(order.OwnID)},
		{"Status", formatValue(string(order.Status))},
		{"Amount", formatAmount(order.Amount)},
		{"Customer", formatValue(customer)},
		{"Items", formatInt(len(order.Items))},
		{"Payments", formatInt(len(order.Payments))},
		{"Created", formatTimestamp(order.CreatedAt)},
		{"Updated", formatTimestamp(order.UpdatedAt)},
	})
}
