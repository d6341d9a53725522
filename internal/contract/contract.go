// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/eridehero/ridescore/schema"
)

// StoreManager defines the interface for managing persistence stores.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetScoreStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for the computed-score cache, keyed by the
// content hash of a product's specification record.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for tracking scoring runs and the scores
// they produced.
type HistoryStore interface {
	// BeginRun creates a new scoring run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the scoring run with completion data
	EndRun(runID int64, endTime time.Time, totalProducts int) error

	// RecordProductScores stores final scores for a product
	RecordProductScores(runID int64, rec schema.ProductScoreRecord) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns retrieves every scoring run, oldest first
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllProductScores retrieves every stored product score row
	GetAllProductScores() ([]schema.ProductScoreRecord, error)

	// Close closes the underlying connection
	Close() error
}
