// Package engine orchestrates catalog loading, cached scoring and run
// tracking on top of the pure scoring primitives in core.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/eridehero/ridescore/core"
	"github.com/eridehero/ridescore/internal/catalog"
	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/internal/scorecache"
	"github.com/eridehero/ridescore/schema"
)

// ScoreOutcome is the result of scoring one product, with its cache identity.
type ScoreOutcome struct {
	Name      string
	Type      schema.ProductType
	Record    schema.ScoreRecord
	SpecHash  string
	FromCache bool
}

// ScoreProduct loads the catalog, finds one product by name and scores it.
func ScoreProduct(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, name string) (*ScoreOutcome, error) {
	products, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}

	p, ok := catalog.FindByName(products, name)
	if !ok {
		return nil, fmt.Errorf("product %q not found in catalog", name)
	}

	outcome := scoreOne(p, mgr.GetScoreStore())
	return &outcome, nil
}

// RankProducts scores the whole catalog concurrently and returns the ranked
// results plus a name-to-spec-hash index for export layers. When a history
// store is configured the run is tracked; tracking failures degrade to
// warnings rather than failing the scoring run.
func RankProducts(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]core.RankedProduct, map[string]string, error) {
	products, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// --- 0. Begin run tracking (if configured) ---
	var runID int64
	historyStore := mgr.GetHistoryStore()
	if historyStore != nil {
		configParams := map[string]any{
			"catalog_path": cfg.CatalogPath,
			"product_type": string(cfg.ProductType),
			"workers":      cfg.Workers,
			"result_limit": cfg.ResultLimit,
			"min_score":    cfg.MinScore,
		}
		runID, err = historyStore.BeginRun(time.Now(), configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runID = 0
		}
	}

	// --- 1. Concurrent scoring phase (with caching) ---
	outcomes := scoreAll(cfg, products, mgr.GetScoreStore())

	// --- 2. Record per-product snapshots ---
	if historyStore != nil && runID > 0 {
		scoredAt := time.Now()
		for _, o := range outcomes {
			rec := schema.ProductScoreRecord{
				RunID:       runID,
				Product:     o.Name,
				ProductType: o.Type,
				ScoredAt:    scoredAt,
				SpecHash:    o.SpecHash,
				Overall:     o.Record.Overall(),
				Categories:  o.Record,
			}
			if err := historyStore.RecordProductScores(runID, rec); err != nil {
				contract.LogWarn("Failed to record product scores", err)
			}
		}
		if err := historyStore.EndRun(runID, time.Now(), len(outcomes)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	// --- 3. Filter, rank and limit ---
	specHashes := make(map[string]string, len(outcomes))
	ranked := make([]core.RankedProduct, 0, len(outcomes))
	for _, o := range outcomes {
		specHashes[o.Name] = o.SpecHash
		if cfg.MinScore > 0 {
			overall := o.Record.Overall()
			if overall == nil || *overall < cfg.MinScore {
				continue
			}
		}
		ranked = append(ranked, core.RankedProduct{Name: o.Name, Type: o.Type, Record: o.Record})
	}

	return core.Rank(ranked, cfg.ResultLimit), specHashes, nil
}

// CompareProducts runs a two-way comparison over cfg.CompareProducts.
func CompareProducts(ctx context.Context, cfg *contract.Config) (schema.ComparisonResult, error) {
	subjects, err := resolveSubjects(ctx, cfg)
	if err != nil {
		return schema.ComparisonResult{}, err
	}
	if len(subjects) != 2 {
		return schema.ComparisonResult{}, fmt.Errorf("two-way comparison requires exactly 2 products (received %d)", len(subjects))
	}
	return core.Compare(subjects[0], subjects[1]), nil
}

// CompareManyProducts runs an N-way comparison over cfg.CompareProducts.
func CompareManyProducts(ctx context.Context, cfg *contract.Config) (schema.MultiComparisonResult, error) {
	subjects, err := resolveSubjects(ctx, cfg)
	if err != nil {
		return schema.MultiComparisonResult{}, err
	}
	return core.CompareMany(subjects), nil
}

// resolveSubjects loads the catalog and resolves every requested product name.
func resolveSubjects(ctx context.Context, cfg *contract.Config) ([]core.Subject, error) {
	products, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}

	subjects := make([]core.Subject, 0, len(cfg.CompareProducts))
	for _, name := range cfg.CompareProducts {
		p, ok := catalog.FindByName(products, name)
		if !ok {
			return nil, fmt.Errorf("product %q not found in catalog", name)
		}
		subjects = append(subjects, p.Subject())
	}
	return subjects, nil
}

// loadCatalog reads and filters the catalog, printing the run header unless
// the context suppresses it.
func loadCatalog(ctx context.Context, cfg *contract.Config) ([]catalog.Product, error) {
	if !shouldSuppressHeader(ctx) {
		logScoringHeader(cfg)
	}

	products, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	products = catalog.FilterByType(products, cfg.ProductType)
	if len(products) == 0 {
		return nil, fmt.Errorf("no products of type %q in catalog", cfg.ProductType)
	}
	return products, nil
}

// logScoringHeader prints a short banner describing the run.
func logScoringHeader(cfg *contract.Config) {
	scope := "all product types"
	if cfg.ProductType != "" {
		scope = string(cfg.ProductType)
	}
	if cfg.UseEmojis {
		fmt.Printf("🛴 Scoring %s from %s\n", scope, cfg.CatalogPath)
	} else {
		fmt.Printf("Scoring %s from %s\n", scope, cfg.CatalogPath)
	}
}

// scoreAll processes all products in parallel using a worker pool.
// It spawns cfg.Workers goroutines and aggregates their results, preserving
// catalog order so cache state never changes output ordering.
func scoreAll(cfg *contract.Config, products []catalog.Product, store contract.CacheStore) []ScoreOutcome {
	type indexed struct {
		idx     int
		outcome ScoreOutcome
	}

	jobCh := make(chan int, len(products))
	resultCh := make(chan indexed, len(products))
	var wg sync.WaitGroup

	// Start worker pool
	for range cfg.Workers {
		wg.Go(func() {
			for idx := range jobCh {
				resultCh <- indexed{idx: idx, outcome: scoreOne(products[idx], store)}
			}
		})
	}

	// Send product indexes to the worker channel
	for i := range products {
		jobCh <- i
	}
	close(jobCh)

	// Wait for all workers to finish processing
	wg.Wait()
	close(resultCh)

	outcomes := make([]ScoreOutcome, len(products))
	for r := range resultCh {
		outcomes[r.idx] = r.outcome
	}
	return outcomes
}

// scoreOne scores a single product, consulting the score cache first.
func scoreOne(p catalog.Product, store contract.CacheStore) ScoreOutcome {
	subject := p.Subject()
	hash := catalog.SpecHash(p.Specs)

	if store != nil {
		if rec, ok := scorecache.GetCachedRecord(store, hash); ok {
			return ScoreOutcome{Name: p.Name, Type: subject.Type, Record: rec, SpecHash: hash, FromCache: true}
		}
	}

	rec := core.CalculateScores(subject.Specs, subject.Type)
	if store != nil {
		if err := scorecache.PutCachedRecord(store, hash, rec); err != nil {
			contract.LogWarn("Failed to cache score record", err)
		}
	}
	return ScoreOutcome{Name: p.Name, Type: subject.Type, Record: rec, SpecHash: hash}
}
