package cmd

import (
	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/internal/engine"
	"github.com/spf13/cobra"
)

// rankCmd scores the whole catalog and ranks the results.
var rankCmd = &cobra.Command{
	Use:   "rank [catalog-path]",
	Short: "Score every product in the catalog and rank them best-first.",
	Long: `Score every product in the catalog concurrently and rank them by overall score.

Products whose specification data is too sparse to produce an overall score
sort last instead of disappearing, so you can see what needs better data.

When a history backend is configured, every ranking run is tracked with its
per-product score snapshots for later export and trend analysis.

Examples:
  # Rank everything in a catalog directory
  ridescore rank ./catalog

  # Top 10 e-scooters only
  ridescore rank ./catalog --product-type scooter --limit 10

  # Hide products scoring below 60
  ridescore rank ./catalog --min-score 60

  # Export scores to Parquet for DuckDB/pandas
  ridescore rank ./catalog --output parquet --output-file scores.parquet`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(_ *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		return sharedSetup(path, nil)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := engine.ExecuteRank(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot rank catalog", err)
		}
	},
}
