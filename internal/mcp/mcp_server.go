// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/eridehero/ridescore/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the RideScore MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"RideScore Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: score_product ---
	s.AddTool(mcp.NewTool("score_product",
		mcp.WithDescription("Score a single product from the catalog and return its per-category score record."),
		mcp.WithString("product", mcp.Description("Product name to score (case-insensitive, substring match allowed)."), mcp.Required()),
		mcp.WithString("catalog_path", mcp.Description("Path to the catalog file or directory (defaults to the configured catalog).")),
	), h.handleScoreProduct)

	// --- 2. Tool: rank_products ---
	s.AddTool(mcp.NewTool("rank_products",
		mcp.WithDescription("Score every product in the catalog and return them ranked best-first."),
		mcp.WithString("catalog_path", mcp.Description("Path to the catalog file or directory.")),
		mcp.WithString("product_type", mcp.Description("Restrict ranking to one product type."), mcp.Enum("scooter", "bike", "skateboard", "unicycle", "hoverboard")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
		mcp.WithNumber("min_score", mcp.Description("Drop products whose overall score is below this value (0-100).")),
	), h.handleRankProducts)

	// --- 3. Tool: compare_products ---
	s.AddTool(mcp.NewTool("compare_products",
		mcp.WithDescription("Compare products head-to-head: per-category winners, raw spec advantages and an overall verdict."),
		mcp.WithString("products", mcp.Description("Comma-separated product names, 2 to 5 entries."), mcp.Required()),
		mcp.WithString("catalog_path", mcp.Description("Path to the catalog file or directory.")),
	), h.handleCompareProducts)

	// --- 4. Tool: get_score_categories ---
	s.AddTool(mcp.NewTool("get_score_categories",
		mcp.WithDescription("Return the fixed category weight tables used by each product type's scorer."),
		mcp.WithString("product_type", mcp.Description("Restrict output to one product type."), mcp.Enum("scooter", "bike", "skateboard", "unicycle", "hoverboard")),
	), h.handleGetScoreCategories)

	return s
}

// StartMCPServer starts the RideScore MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
