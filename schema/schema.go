// Package schema has the shared types, constants and helpers for all parts of ridescore.
package schema

// SpecRecord is a read-only, tree-shaped map of raw specification values for a
// single product. Values are whatever the catalog source produced (numbers,
// strings, booleans, nested maps, arrays). The scoring engine never mutates it.
type SpecRecord map[string]any

// Factor is the result of scoring a single attribute within a category.
// A nil Score means "no data for this factor": it is excluded from category
// aggregation entirely, never treated as zero. Max is always 0 when Score is nil.
type Factor struct {
	Score *float64
	Max   float64
}

// NoFactor is the canonical "no data" factor result.
func NoFactor() Factor {
	return Factor{Score: nil, Max: 0}
}

// NewFactor builds a populated factor result.
func NewFactor(score, maxPoints float64) Factor {
	return Factor{Score: &score, Max: maxPoints}
}

// ScoreRecord maps category keys to 0-100 integer scores, plus the mandatory
// "overall" key. A nil value means the category could not be scored from the
// available data. The key set is a closed, per-product-type contract.
type ScoreRecord map[string]*int

// Overall returns the overall score, or nil if the product could not be scored.
func (r ScoreRecord) Overall() *int {
	return r[CategoryOverall]
}

// Scored reports whether the record produced a usable overall score.
// Callers must branch on this to detect "could not be scored".
func (r ScoreRecord) Scored() bool {
	return r[CategoryOverall] != nil
}

// Clone returns a deep copy of the record.
func (r ScoreRecord) Clone() ScoreRecord {
	clone := make(ScoreRecord, len(r))
	for k, v := range r {
		if v == nil {
			clone[k] = nil
			continue
		}
		n := *v
		clone[k] = &n
	}
	return clone
}
