package cmd

import (
	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/internal/engine"
	"github.com/spf13/cobra"
)

// scoreProductArg holds the product name from the positional args.
var scoreProductArg string

// scoreCmd scores a single product from the catalog.
var scoreCmd = &cobra.Command{
	Use:   "score <catalog-path> <product>",
	Short: "Score a single product and show its per-category breakdown.",
	Long: `Score one product from the catalog and show its per-category score record.

Each product type has its own fixed set of weighted categories (motor, battery,
portability and so on). Categories with no usable specification data stay
unscored, and their weight is redistributed across the scored ones.

Product names match case-insensitively, and substring matches are accepted,
so "apollo city" finds "Apollo City Pro".

Examples:
  # Score one scooter from a catalog directory
  ridescore score ./catalog "Apollo City Pro"

  # Full per-category record as JSON
  ridescore score ./catalog "Apollo City Pro" --output json

  # Score without touching the cache
  ridescore score ./catalog "Apollo City Pro" --cache-backend none`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(_ *cobra.Command, args []string) error {
		scoreProductArg = args[1]
		return sharedSetup(args[0], nil)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := engine.ExecuteScore(rootCtx, cfg, storeManager, scoreProductArg); err != nil {
			contract.LogFatal("Cannot score product", err)
		}
	},
}
