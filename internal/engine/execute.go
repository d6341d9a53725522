package engine

import (
	"context"
	"time"

	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/internal/outwriter"
)

// ExecuteScore scores one product and writes the result.
func ExecuteScore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, name string) error {
	start := time.Now()
	outcome, err := ScoreProduct(ctx, cfg, mgr, name)
	if err != nil {
		return err
	}

	ow := outwriter.NewOutWriter()
	return ow.WriteScore(outwriter.ScoreResult{
		Name:      outcome.Name,
		Type:      outcome.Type,
		Record:    outcome.Record,
		SpecHash:  outcome.SpecHash,
		FromCache: outcome.FromCache,
	}, cfg, time.Since(start))
}

// ExecuteRank scores the whole catalog and writes the ranked results.
func ExecuteRank(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	ranked, specHashes, err := RankProducts(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	ow := outwriter.NewOutWriter()
	return ow.WriteRanking(ranked, specHashes, cfg, time.Since(start))
}

// ExecuteCompare compares the products in cfg.CompareProducts and writes the
// result, picking the two-way or N-way form based on how many were requested.
func ExecuteCompare(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	ow := outwriter.NewOutWriter()

	if len(cfg.CompareProducts) == 2 {
		result, err := CompareProducts(ctx, cfg)
		if err != nil {
			return err
		}
		return ow.WriteComparison(result, cfg, time.Since(start))
	}

	result, err := CompareManyProducts(ctx, cfg)
	if err != nil {
		return err
	}
	return ow.WriteMultiComparison(result, cfg, time.Since(start))
}

// ExecuteCategories writes the per-type category weight tables.
func ExecuteCategories(cfg *contract.Config) error {
	ow := outwriter.NewOutWriter()
	return ow.WriteCategories(cfg)
}
