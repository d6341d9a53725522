package core

import (
	"fmt"
	"strconv"

	"github.com/eridehero/ridescore/schema"
)

// Subject is one product entering a comparison: its display name, its type
// and its raw specification record.
type Subject struct {
	Name  string
	Type  schema.ProductType
	Specs schema.SpecRecord
}

// advantageMetric describes one raw spec figure worth calling out in a
// head-to-head verdict. Advantages come from raw specs, not from scores:
// "Faster top speed (40 mph vs 25 mph)" is meaningful to a buyer in a way
// "motor 82 vs 74" is not.
type advantageMetric struct {
	category     string
	path         string
	topLevel     bool
	higherBetter bool
	label        string
	unit         string
	// minRatio is the minimum relative difference before the gap is worth
	// mentioning. Nobody cares about a 0.5 lb weight difference.
	minRatio float64
}

var advantageMetrics = []advantageMetric{
	{schema.CategoryMotor, "manufacturer_top_speed", true, true, "Faster top speed", "mph", 0.05},
	{schema.CategoryMotor, "motor.power_nominal", false, true, "More motor power", "W", 0.10},
	{schema.CategoryBattery, "battery.range", false, true, "Longer range", "mi", 0.05},
	{schema.CategoryBattery, "battery.capacity", false, true, "Larger battery", "Wh", 0.10},
	{schema.CategoryBattery, "battery.charge_time", false, false, "Faster charging", "h", 0.10},
	{schema.CategoryPortability, "dimensions.weight", false, false, "Lighter", "lb", 0.05},
	{schema.CategoryRideQuality, "dimensions.max_load", false, true, "Higher weight limit", "lb", 0.10},
}

// accessorFor builds the spec accessor matching a product type's shape rules.
func accessorFor(pt schema.ProductType) specAccessor {
	if pt == schema.EScooter {
		return newSpecAccessor(pt, escooterFlatFallback)
	}
	return newSpecAccessor(pt, nil)
}

// Compare scores two products and produces the full head-to-head result:
// per-category deltas and winners, raw-spec advantages, and an overall
// verdict. Categories the right product's type does not define appear with a
// nil right-hand score.
func Compare(left, right Subject) schema.ComparisonResult {
	leftRec := CalculateScores(left.Specs, left.Type)
	rightRec := CalculateScores(right.Specs, right.Type)

	keys := CategoryKeys(left.Type)
	if keys == nil {
		keys = CategoryKeys(schema.EScooter)
	}
	for _, k := range CategoryKeys(right.Type) {
		if _, ok := leftRec[k]; !ok {
			keys = append(keys, k)
		}
	}

	result := schema.ComparisonResult{
		Left:       left.Name,
		Right:      right.Name,
		Categories: make([]schema.CategoryDelta, 0, len(keys)),
		Summary: schema.ComparisonSummary{
			CategoriesWon: map[string]int{left.Name: 0, right.Name: 0},
		},
	}

	for _, key := range keys {
		delta := schema.CategoryDelta{Category: key, Left: leftRec[key], Right: rightRec[key]}
		if delta.Left != nil && delta.Right != nil {
			delta.Delta = *delta.Left - *delta.Right
			switch {
			case delta.Delta > 0:
				delta.Winner = left.Name
			case delta.Delta < 0:
				delta.Winner = right.Name
			}
		}
		if delta.Winner != "" {
			result.Summary.CategoriesWon[delta.Winner]++
		}
		result.Categories = append(result.Categories, delta)
	}

	if lo, ro := leftRec.Overall(), rightRec.Overall(); lo != nil && ro != nil {
		result.Summary.OverallDelta = *lo - *ro
		switch {
		case *lo > *ro:
			result.Summary.OverallWinner = left.Name
		case *ro > *lo:
			result.Summary.OverallWinner = right.Name
		}
	}

	result.Advantages = advantages(left, right)
	return result
}

// advantages walks the metric table and emits a reason for each raw spec
// figure where one product meaningfully beats the other.
func advantages(left, right Subject) []schema.Advantage {
	la := accessorFor(left.Type)
	ra := accessorFor(right.Type)

	var out []schema.Advantage
	for _, m := range advantageMetrics {
		var lraw, rraw any
		if m.topLevel {
			lraw = la.topLevel(left.Specs, m.path)
			rraw = ra.topLevel(right.Specs, m.path)
		} else {
			lraw = la.resolve(left.Specs, m.path)
			rraw = ra.resolve(right.Specs, m.path)
		}
		lv, lok := asFloat(lraw)
		rv, rok := asFloat(rraw)
		if !lok || !rok || lv <= 0 || rv <= 0 || lv == rv {
			continue
		}

		winner, winVal, loseVal := left.Name, lv, rv
		if (lv > rv) != m.higherBetter {
			winner, winVal, loseVal = right.Name, rv, lv
		}
		var ratio float64
		if m.higherBetter {
			ratio = winVal/loseVal - 1
		} else {
			ratio = loseVal/winVal - 1
		}
		if ratio < m.minRatio {
			continue
		}

		out = append(out, schema.Advantage{
			Product:  winner,
			Category: m.category,
			Reason: fmt.Sprintf("%s (%s %s vs %s %s)", m.label,
				formatMetric(winVal), m.unit, formatMetric(loseVal), m.unit),
		})
	}
	return out
}

func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CompareMany scores N products and reports the per-category and overall
// winners. Ties keep the earliest product in input order.
func CompareMany(subjects []Subject) schema.MultiComparisonResult {
	result := schema.MultiComparisonResult{
		Products: make([]string, 0, len(subjects)),
		Winners:  make(map[string]string),
		Records:  make(map[string]schema.ScoreRecord, len(subjects)),
	}

	best := make(map[string]int)
	for _, s := range subjects {
		result.Products = append(result.Products, s.Name)
		rec := CalculateScores(s.Specs, s.Type)
		result.Records[s.Name] = rec
		for key, score := range rec {
			if score == nil {
				continue
			}
			if cur, ok := best[key]; !ok || *score > cur {
				best[key] = *score
				result.Winners[key] = s.Name
			}
		}
	}
	return result
}
