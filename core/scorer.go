package core

import (
	"github.com/eridehero/ridescore/schema"
)

// categoryWeight pairs a category key with its share of the overall score.
// Weight tables are ordered slices so display and aggregation order is stable.
type categoryWeight struct {
	key    string
	weight float64
}

// CategoryWeight is the exported view of a scorer's weight table entry.
type CategoryWeight struct {
	Key    string  `json:"key"`
	Weight float64 `json:"weight"`
}

// scorer is implemented once per product type. Implementations are stateless
// beyond their immutable accessor configuration and safe to share.
type scorer interface {
	productType() schema.ProductType
	categoryWeights() []categoryWeight
	calculate(rec schema.SpecRecord) schema.ScoreRecord
}

// scorers holds the lazily-constructed, shareable scorer instances.
var scorers = map[schema.ProductType]scorer{
	schema.EScooter:    newEScooterScorer(),
	schema.EBike:       newEBikeScorer(),
	schema.ESkateboard: newESkateboardScorer(),
	schema.EUnicycle:   newEUnicycleScorer(),
	schema.Hoverboard:  newHoverboardScorer(),
}

// CalculateScores scores a specification record for the given product type.
// Unsupported types return an all-nil record in the product type's canonical
// category shape (falling back to the e-scooter shape when even the shape is
// unknown) so downstream consumers keyed on specific categories never crash.
func CalculateScores(rec schema.SpecRecord, pt schema.ProductType) schema.ScoreRecord {
	s, ok := scorers[pt]
	if !ok {
		return NullRecord(pt)
	}
	return s.calculate(rec)
}

// NullRecord returns the all-nil score record for a product type, generated
// from the scorer's declared weight table rather than hand-duplicated.
func NullRecord(pt schema.ProductType) schema.ScoreRecord {
	s, ok := scorers[pt]
	if !ok {
		s = scorers[schema.EScooter]
	}
	rec := make(schema.ScoreRecord, len(s.categoryWeights())+1)
	for _, cw := range s.categoryWeights() {
		rec[cw.key] = nil
	}
	rec[schema.CategoryOverall] = nil
	return rec
}

// WeightTable exposes a product type's category weight table for display and
// for consumers that need the canonical category key set. Returns nil for
// unsupported types.
func WeightTable(pt schema.ProductType) []CategoryWeight {
	s, ok := scorers[pt]
	if !ok {
		return nil
	}
	weights := s.categoryWeights()
	out := make([]CategoryWeight, len(weights))
	for i, cw := range weights {
		out[i] = CategoryWeight{Key: cw.key, Weight: cw.weight}
	}
	return out
}

// CategoryKeys returns the category keys for a product type in declaration
// order, without the overall key.
func CategoryKeys(pt schema.ProductType) []string {
	weights := WeightTable(pt)
	keys := make([]string, len(weights))
	for i, cw := range weights {
		keys[i] = cw.Key
	}
	return keys
}

// finishRecord attaches the weight-redistributed overall score to a record.
func finishRecord(weights []categoryWeight, rec schema.ScoreRecord) schema.ScoreRecord {
	rec[schema.CategoryOverall] = overallScore(weights, rec)
	return rec
}
