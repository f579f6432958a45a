package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/me/glamgiant/internal/listing"
	"github.com/me/glamgiant/pkg/model"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse products and make purchases",
	}
	cmd.AddCommand(newShopBrowseCmd(), newShopBuyCmd(), newShopPurchasesCmd())
	return cmd
}

func newShopBrowseCmd() *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List products available to buy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireView("/shop"); err != nil {
				return err
			}
			engine := listing.Products(pageSize)
			if err := checkSort(engine, opts.sort); err != nil {
				return err
			}
			products, err := authed().ListProducts(cmd.Context())
			if err != nil {
				return fmt.Errorf("list products: %w", err)
			}
			res := engine.Apply(products, opts.query())
			return renderResult(cmd, res,
				[]string{"ID", "NAME", "CATEGORY", "PRICE", "AVAILABLE"},
				func(p model.Product) []string {
					return []string{p.ID, p.Name, p.Category, money(p.Price), humanize.Comma(int64(p.Stock))}
				})
		},
	}
	opts.bind(cmd)
	return cmd
}

func newShopBuyCmd() *cobra.Command {
	var productID string
	var quantity int
	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Purchase a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireView("/shop"); err != nil {
				return err
			}
			if productID == "" {
				return fmt.Errorf("--product is required")
			}
			if quantity < 1 {
				return fmt.Errorf("--quantity must be at least 1")
			}
			c := authed()
			p, err := c.GetProduct(cmd.Context(), productID)
			if err != nil {
				return fmt.Errorf("get product: %w", err)
			}
			if quantity > p.Stock {
				return fmt.Errorf("only %d of %s in stock", p.Stock, p.Name)
			}
			purchase, err := c.CreatePurchase(cmd.Context(), model.PurchaseRequest{
				Items: []model.PurchaseLine{{ProductID: p.ID, Quantity: quantity}},
			})
			if err != nil {
				return fmt.Errorf("purchase: %w", err)
			}
			success(cmd, "Purchased %d x %s for %s (purchase %s)",
				quantity, p.Name, money(p.Price*float64(quantity)), purchase.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&productID, "product", "", "Product ID")
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "Quantity")
	return cmd
}

func newShopPurchasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purchases",
		Short: "List your past purchases",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireView("/purchases"); err != nil {
				return err
			}
			purchases, err := authed().ListMyPurchases(cmd.Context())
			if err != nil {
				return fmt.Errorf("list purchases: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(purchases) == 0 {
				fmt.Fprintln(out, "No purchases yet.")
				return nil
			}
			slices.SortFunc(purchases, func(a, b model.Purchase) int {
				return cmp.Compare(b.CreatedAt.Unix(), a.CreatedAt.Unix())
			})
			for _, p := range purchases {
				lines := make([]string, len(p.Items))
				for i, it := range p.Items {
					lines[i] = fmt.Sprintf("%d x %s", it.Quantity, it.Product.Name)
				}
				fmt.Fprintf(out, "%s  %s  %s\n", p.ID, humanize.Time(p.CreatedAt), strings.Join(lines, ", "))
			}
			return nil
		},
	}
}
