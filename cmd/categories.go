package cmd

import (
	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/internal/engine"
	"github.com/spf13/cobra"
)

// categoriesCmd displays the category weight tables for all product types.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Display the category weight tables for all product types",
	Long: `Show the fixed categories and weights each product type is scored on.

Provides complete transparency into how products are ranked, including:
- Category names per product type
- Each category's share of the overall score
- How unscored categories affect the overall calculation

No catalog is read - this is purely informational.

Examples:
  # Show all weight tables
  ridescore categories

  # Only the e-scooter table
  ridescore categories --product-type scooter

  # Machine-readable weights
  ridescore categories --output json`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return sharedSetup(".", nil)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := engine.ExecuteCategories(cfg); err != nil {
			contract.LogFatal("Cannot display categories", err)
		}
	},
}
