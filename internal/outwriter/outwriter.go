// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/eridehero/ridescore/core"
	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteScore prints a single product's score record using the configured output format.
func (ow *OutWriter) WriteScore(result ScoreResult, cfg *contract.Config, duration time.Duration) error {
	return WriteScoreResults(result, cfg, duration)
}

// WriteRanking prints ranked catalog results using the configured output format.
func (ow *OutWriter) WriteRanking(ranked []core.RankedProduct, specHashes map[string]string, cfg *contract.Config, duration time.Duration) error {
	return WriteRankingResults(ranked, specHashes, cfg, duration)
}

// WriteComparison prints a two-way comparison using the configured output format.
func (ow *OutWriter) WriteComparison(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return WriteComparisonResults(result, cfg, duration)
}

// WriteMultiComparison prints an N-way comparison using the configured output format.
func (ow *OutWriter) WriteMultiComparison(result schema.MultiComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return WriteMultiComparisonResults(result, cfg, duration)
}

// WriteCategories prints the per-type category weight tables using the configured output format.
func (ow *OutWriter) WriteCategories(cfg *contract.Config) error {
	return WriteCategoryDefinitions(cfg)
}
