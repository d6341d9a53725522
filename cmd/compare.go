package cmd

import (
	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/internal/engine"
	"github.com/spf13/cobra"
)

// compareCmd runs head-to-head product comparisons.
var compareCmd = &cobra.Command{
	Use:   "compare <catalog-path> <product> <product> [product...]",
	Short: "Compare products head-to-head across scoring categories.",
	Long: `Compare 2 to 5 products across their scoring categories.

With exactly two products you get the full head-to-head treatment:
per-category deltas and winners, raw-spec advantages ("Faster top speed
(40 mph vs 25 mph)") and an overall verdict. With three or more products
you get a per-category winners matrix.

Products of different types can be compared; categories one type does not
define show up as unscored on that side.

Examples:
  # Two-way comparison with advantages
  ridescore compare ./catalog "Apollo City Pro" "NIU KQi3 Max"

  # Compare up to five products
  ridescore compare ./catalog "Apollo City" "NIU KQi3" "Segway Max G2"

  # Machine-readable verdict
  ridescore compare ./catalog "Apollo City" "NIU KQi3" --output json`,
	Args: cobra.RangeArgs(3, 1+contract.MaxCompareProducts),
	PreRunE: func(_ *cobra.Command, args []string) error {
		return sharedSetup(args[0], args[1:])
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := engine.ExecuteCompare(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot compare products", err)
		}
	},
}
