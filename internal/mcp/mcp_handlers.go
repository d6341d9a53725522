package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eridehero/ridescore/core"
	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/internal/engine"
	"github.com/eridehero/ridescore/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleScoreProduct(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("catalog_path", ""); p != "" {
		cfg.CatalogPath = p
	}

	name := request.GetString("product", "")
	outcome, err := engine.ScoreProduct(engine.WithSuppressHeader(ctx), cfg, h.mgr, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	result := map[string]any{
		"name":         outcome.Name,
		"product_type": outcome.Type,
		"scores":       outcome.Record,
		"label":        contract.GetPlainLabel(outcome.Record.Overall()),
		"spec_hash":    outcome.SpecHash,
		"from_cache":   outcome.FromCache,
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRankProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("catalog_path", ""); p != "" {
		cfg.CatalogPath = p
	}
	if t := request.GetString("product_type", ""); t != "" {
		pt, ok := schema.ParseProductType(t)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid product type: %s", t)), nil
		}
		cfg.ProductType = pt
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	if m := request.GetInt("min_score", 0); m > 0 {
		cfg.MinScore = m
	}

	ranked, _, err := engine.RankProducts(engine.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(ranked, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCompareProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("catalog_path", ""); p != "" {
		cfg.CatalogPath = p
	}

	cfg.CompareProducts = splitProductNames(request.GetString("products", ""))
	if n := len(cfg.CompareProducts); n < 2 || n > contract.MaxCompareProducts {
		return mcp.NewToolResultError(fmt.Sprintf("compare requires between 2 and %d products (received %d)", contract.MaxCompareProducts, n)), nil
	}

	ctx = engine.WithSuppressHeader(ctx)
	if len(cfg.CompareProducts) == 2 {
		result, err := engine.CompareProducts(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
		}
		jsonData, _ := json.MarshalIndent(result, "", "  ")
		return mcp.NewToolResultText(string(jsonData)), nil
	}

	result, err := engine.CompareManyProducts(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetScoreCategories(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var only schema.ProductType
	if t := request.GetString("product_type", ""); t != "" {
		pt, ok := schema.ParseProductType(t)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid product type: %s", t)), nil
		}
		only = pt
	}

	tables := make(map[schema.ProductType][]core.CategoryWeight)
	for _, pt := range schema.AllProductTypes {
		if only != "" && pt != only {
			continue
		}
		tables[pt] = core.WeightTable(pt)
	}

	jsonData, _ := json.MarshalIndent(tables, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// splitProductNames parses a comma-separated product list, dropping empties.
func splitProductNames(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
