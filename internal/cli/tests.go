package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/glamgiant/internal/listing"
	"github.com/me/glamgiant/pkg/model"
)

func newTestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tests",
		Aliases: []string{"product-tests"},
		Short:   "Manage product tests",
	}
	cmd.AddCommand(newTestsListCmd(), newTestsCreateCmd(), newTestsDeleteCmd())
	return cmd
}

func newTestsListCmd() *cobra.Command {
	var opts listOptions
	var mine bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List product tests",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requireView("/product-tests")
			if err != nil {
				return err
			}
			engine := listing.ProductTests(pageSize)
			if err := checkSort(engine, opts.sort); err != nil {
				return err
			}
			tests, err := authed().ListProductTests(cmd.Context())
			if err != nil {
				return fmt.Errorf("list product tests: %w", err)
			}
			if mine {
				own := tests[:0]
				for _, t := range tests {
					if t.TesterID == id.ID {
						own = append(own, t)
					}
				}
				tests = own
			}
			res := engine.Apply(tests, opts.query())
			return renderResult(cmd, res,
				[]string{"ID", "PRODUCT", "TESTER", "REACTION", "RATING", "SURVIVED"},
				func(t model.ProductTest) []string {
					return []string{t.ID, t.ProductName(), t.TesterName(), t.Reaction,
						fmt.Sprintf("%d/%d", t.Rating, model.MaxRating), yesNo(t.SurvivalStatus)}
				})
		},
	}
	opts.bind(cmd)
	cmd.Flags().BoolVar(&mine, "mine", false, "Only tests recorded by you")
	return cmd
}

func newTestsCreateCmd() *cobra.Command {
	var in testInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a product test as yourself",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requireView("/product-tests")
			if err != nil {
				return err
			}
			if err := validate.Struct(in); err != nil {
				return fmt.Errorf("invalid test: %w", err)
			}
			t, err := authed().CreateProductTest(cmd.Context(), model.ProductTestInput{
				TesterID:       id.ID,
				ProductID:      in.ProductID,
				Reaction:       in.Reaction,
				Rating:         in.Rating,
				SurvivalStatus: in.Survived,
			})
			if err != nil {
				return fmt.Errorf("create product test: %w", err)
			}
			success(cmd, "Test %s recorded", t.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.ProductID, "product", "", "Product ID")
	cmd.Flags().StringVar(&in.Reaction, "reaction", "", "Observed reaction")
	cmd.Flags().IntVar(&in.Rating, "rating", 0, "Rating (1-10)")
	cmd.Flags().BoolVar(&in.Survived, "survived", false, "The product survived the test")
	return cmd
}

func newTestsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product test",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requireView("/product-tests")
			if err != nil {
				return err
			}
			c := authed()
			if id.Is(model.RoleTester) {
				t, err := c.GetProductTest(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("get product test: %w", err)
				}
				if t.TesterID != id.ID {
					return fmt.Errorf("%w: testers may only delete their own tests", ErrUnauthorized)
				}
			}
			if err := c.DeleteProductTest(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete product test: %w", err)
			}
			success(cmd, "Test %s deleted", args[0])
			return nil
		},
	}
}
