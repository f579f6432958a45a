package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/me/glamgiant/internal/listing"
	"github.com/me/glamgiant/pkg/model"
)

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage orders and transactions",
	}
	cmd.AddCommand(newOrdersListCmd(), newOrdersSetStatusCmd())
	return cmd
}

func newOrdersListCmd() *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireView("/orders-management"); err != nil {
				return err
			}
			engine := listing.Orders(pageSize)
			if err := checkSort(engine, opts.sort); err != nil {
				return err
			}
			orders, err := authed().ListOrders(cmd.Context())
			if err != nil {
				return fmt.Errorf("list orders: %w", err)
			}
			res := engine.Apply(orders, opts.query())
			return renderResult(cmd, res,
				[]string{"ID", "CLIENT", "PRODUCTS", "TOTAL", "STATUS"},
				func(o model.Order) []string {
					return []string{o.ID, o.ClientName(), strings.Join(o.Products.Names(), ", "),
						money(o.TotalAmount), string(o.PaymentStatus)}
				})
		},
	}
	opts.bind(cmd)
	return cmd
}

func newOrdersSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <Paid|Refunded|Failed>",
		Short: "Change an order's payment status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireView("/orders-management"); err != nil {
				return err
			}
			status, err := parsePaymentStatus(args[1])
			if err != nil {
				return err
			}
			if _, err := authed().UpdateOrder(cmd.Context(), args[0], model.OrderInput{PaymentStatus: status}); err != nil {
				return fmt.Errorf("update order: %w", err)
			}
			success(cmd, "Order %s marked %s", args[0], status)
			return nil
		},
	}
}

func parsePaymentStatus(s string) (model.PaymentStatus, error) {
	statuses := model.PaymentStatuses()
	i := slices.IndexFunc(statuses, func(p model.PaymentStatus) bool {
		return strings.EqualFold(string(p), s)
	})
	if i < 0 {
		return "", fmt.Errorf("unknown payment status %q", s)
	}
	return statuses[i], nil
}
