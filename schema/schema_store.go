package schema

import "time"

// RunRecord represents a single scoring run tracked in the history store.
type RunRecord struct {
	RunID         int64      `json:"run_id"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	TotalProducts int32      `json:"total_products"`
	ConfigParams  *string    `json:"config_params"`
}

// ProductScoreRecord is one product's scored snapshot within a run.
type ProductScoreRecord struct {
	RunID       int64       `json:"run_id"`
	Product     string      `json:"product"`
	ProductType ProductType `json:"product_type"`
	ScoredAt    time.Time   `json:"scored_at"`
	SpecHash    string      `json:"spec_hash"`
	Overall     *int        `json:"overall"`
	// Categories holds the per-category scores as stored (JSON-encoded in SQL).
	Categories ScoreRecord `json:"categories"`
}
