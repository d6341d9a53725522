package core

import (
	"sort"

	"github.com/eridehero/ridescore/schema"
)

// RankedProduct is one catalog entry with its computed score record, as
// produced by RankAll and consumed by display and export layers.
type RankedProduct struct {
	Name   string             `json:"name"`
	Type   schema.ProductType `json:"product_type"`
	Record schema.ScoreRecord `json:"scores"`
}

// RankAll scores every subject and returns them best-first. Products whose
// overall could not be computed sort last; ties break alphabetically by name
// so repeated runs over the same catalog are deterministic.
func RankAll(subjects []Subject, limit int) []RankedProduct {
	ranked := make([]RankedProduct, 0, len(subjects))
	for _, s := range subjects {
		ranked = append(ranked, RankedProduct{
			Name:   s.Name,
			Type:   s.Type,
			Record: CalculateScores(s.Specs, s.Type),
		})
	}
	return Rank(ranked, limit)
}

// Rank orders already-scored products best-first with the same rules as
// RankAll and applies the limit (limit <= 0 means no limit).
func Rank(ranked []RankedProduct, limit int) []RankedProduct {
	out := make([]RankedProduct, len(ranked))
	copy(out, ranked)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Record.Overall(), out[j].Record.Overall()
		switch {
		case a == nil && b == nil:
			return out[i].Name < out[j].Name
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a > *b
		default:
			return out[i].Name < out[j].Name
		}
	})

	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}
