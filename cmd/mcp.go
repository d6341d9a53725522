package cmd

import (
	"github.com/eridehero/ridescore/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp [catalog-path]",
	Short: "Start the RideScore MCP server",
	Long:  `Launch an MCP server that allows AI agents to score, rank and compare products via standard tools.`,
	Args:  cobra.MaximumNArgs(1),
	PreRunE: func(_ *cobra.Command, args []string) error {
		// Suppress the normal header logs when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		return sharedSetup(path, nil)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, storeManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
