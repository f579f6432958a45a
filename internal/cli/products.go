package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/me/glamgiant/internal/listing"
	"github.com/me/glamgiant/pkg/model"
)

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage makeup products",
	}
	cmd.AddCommand(newProductsListCmd(), newProductsGetCmd(), newProductsCreateCmd(),
		newProductsUpdateCmd(), newProductsDeleteCmd())
	return cmd
}

func newProductsListCmd() *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireView("/products"); err != nil {
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
				[]string{"ID", "NAME", "CATEGORY", "STOCK", "WAREHOUSE", "DURABILITY", "PRICE"},
				func(p model.Product) []string {
					stock := humanize.Comma(int64(p.Stock))
					if p.LowStock() {
						stock += " (low)"
					}
					return []string{p.ID, p.Name, p.Category, stock, p.WarehouseLocation,
						fmt.Sprintf("%.1f", p.DurabilityScore), money(p.Price)}
				})
		},
	}
	opts.bind(cmd)
	return cmd
}

func newProductsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireView("/products"); err != nil {
				return err
			}
			p, err := authed().GetProduct(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get product: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:          %s\n", p.ID)
			fmt.Fprintf(out, "Name:        %s\n", p.Name)
			fmt.Fprintf(out, "Category:    %s\n", p.Category)
			fmt.Fprintf(out, "Stock:       %s\n", humanize.Comma(int64(p.Stock)))
			fmt.Fprintf(out, "Warehouse:   %s\n", p.WarehouseLocation)
			fmt.Fprintf(out, "Durability:  %.1f\n", p.DurabilityScore)
			fmt.Fprintf(out, "Price:       %s\n", money(p.Price))
			return nil
		},
	}
}

func bindProductFlags(cmd *cobra.Command, in *productInput) {
	cmd.Flags().StringVar(&in.Name, "name", "", "Product name")
	cmd.Flags().StringVar(&in.Category, "category", "", "Category")
	cmd.Flags().IntVar(&in.Stock, "stock", 0, "Units in stock")
	cmd.Flags().StringVar(&in.WarehouseLocation, "warehouse", "", "Warehouse location")
	cmd.Flags().Float64Var(&in.DurabilityScore, "durability", 0, "Durability score (0-10)")
	cmd.Flags().Float64Var(&in.Price, "price", 0, "Unit price")
}

func newProductsCreateCmd() *cobra.Command {
	var in productInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireView("/create-product"); err != nil {
				return err
			}
			if err := validate.Struct(in); err != nil {
				return fmt.Errorf("invalid product: %w", err)
			}
			p, err := authed().CreateProduct(cmd.Context(), in.input())
			if err != nil {
				return fmt.Errorf("create product: %w", err)
			}
			success(cmd, "Product %s created (%s)", p.Name, p.ID)
			return nil
		},
	}
	bindProductFlags(cmd, &in)
	return cmd
}

// newProductsUpdateCmd fetches the product and overlays only the flags
// that were set.
func newProductsUpdateCmd() *cobra.Command {
	var in productInput
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireView("/edit-product/{id}"); err != nil {
				return err
			}
			c := authed()
			p, err := c.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get product: %w", err)
			}
			merged := productInput{
				Name:              p.Name,
				Category:          p.Category,
				Stock:             p.Stock,
				WarehouseLocation: p.WarehouseLocation,
				DurabilityScore:   p.DurabilityScore,
				Price:             p.Price,
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				merged.Name = in.Name
			}
			if flags.Changed("category") {
				merged.Category = in.Category
			}
			if flags.Changed("stock") {
				merged.Stock = in.Stock
			}
			if flags.Changed("warehouse") {
				merged.WarehouseLocation = in.WarehouseLocation
			}
			if flags.Changed("durability") {
				merged.DurabilityScore = in.DurabilityScore
			}
			if flags.Changed("price") {
				merged.Price = in.Price
			}
			if err := validate.Struct(merged); err != nil {
				return fmt.Errorf("invalid product: %w", err)
			}
			if _, err := c.UpdateProduct(cmd.Context(), p.ID, merged.input()); err != nil {
				return fmt.Errorf("update product: %w", err)
			}
			success(cmd, "Product %s updated", p.ID)
			return nil
		},
	}
	bindProductFlags(cmd, &in)
	return cmd
}

func newProductsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Deleting is limited to the roles that may create products.
			if _, err := requireView("/create-product"); err != nil {
				return err
			}
			if err := authed().DeleteProduct(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete product: %w", err)
			}
			success(cmd, "Product %s deleted", args[0])
			return nil
		},
	}
}
