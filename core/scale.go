// Package core implements the product scoring engine: reusable scoring
// primitives, the specification accessor, the per-product-type scorers and
// the orchestration that turns a raw specification record into a 0-100
// score record. Everything in this package is pure and safe for concurrent
// use; invalid input degrades to "no data", it never errors or panics.
package core

import (
	"math"
	"regexp"
	"strings"

	"github.com/eridehero/ridescore/schema"
)

// logScale maps a continuous value onto [0, maxPoints] with a base-2
// logarithmic curve, so early gains count more than later ones (500W to
// 1000W matters far more than 5000W to 5500W). Values at or below the floor
// score 0, values at or past the ceiling score maxPoints; inverse flips the
// curve for metrics where lower is better (weight, charge time).
func logScale(value any, floor, ceiling, maxPoints float64, inverse bool) schema.Factor {
	v, ok := asFloat(value)
	if !ok || v <= 0 || floor <= 0 || ceiling <= floor {
		return schema.NoFactor()
	}

	var ratio float64
	switch {
	case v <= floor:
		ratio = 0
	case v >= ceiling:
		ratio = 1
	default:
		ratio = math.Log2(v/floor) / math.Log2(ceiling/floor)
	}
	if inverse {
		ratio = 1 - ratio
	}
	return schema.NewFactor(clamp(ratio*maxPoints, 0, maxPoints), maxPoints)
}

// linearScale is logScale's straight-line sibling for metrics without
// diminishing returns (voltages, wheel sizes, angles).
func linearScale(value any, minVal, maxVal, maxPoints float64, inverse bool) schema.Factor {
	v, ok := asFloat(value)
	if !ok || v <= 0 || maxVal <= minVal {
		return schema.NoFactor()
	}

	var ratio float64
	switch {
	case v <= minVal:
		ratio = 0
	case v >= maxVal:
		ratio = 1
	default:
		ratio = (v - minVal) / (maxVal - minVal)
	}
	if inverse {
		ratio = 1 - ratio
	}
	return schema.NewFactor(clamp(ratio*maxPoints, 0, maxPoints), maxPoints)
}

// booleanScore is tri-state: true earns truePoints, false earns falsePoints,
// and an absent or non-boolean value is excluded rather than penalized.
func booleanScore(value any, truePoints, falsePoints float64) schema.Factor {
	b, ok := asBool(value)
	if !ok {
		return schema.NoFactor()
	}
	if b {
		return schema.NewFactor(truePoints, truePoints)
	}
	return schema.NewFactor(falsePoints, truePoints)
}

// tier is one (pattern, points) entry in an ordered classification table.
// Tables are slices, never maps: the first match wins, so more specific
// patterns must precede generic ones (a motor model before its brand).
type tier struct {
	pattern string
	points  float64
}

// tierScore classifies a categorical value (brand, material, type) by
// case-insensitive substring match against an ordered tier table. A
// non-empty value that matches nothing falls to defaultPoints; an empty
// value is excluded entirely.
func tierScore(value any, tiers []tier, maxPoints, defaultPoints float64) schema.Factor {
	s := strings.ToLower(asString(value))
	if s == "" {
		return schema.NoFactor()
	}
	for _, t := range tiers {
		if strings.Contains(s, t.pattern) {
			return schema.NewFactor(clamp(t.points, 0, maxPoints), maxPoints)
		}
	}
	return schema.NewFactor(clamp(defaultPoints, 0, maxPoints), maxPoints)
}

// regexTier is a tier whose pattern is a compiled regular expression, for
// multi-token or anchored matches (motor size codes like "6374").
type regexTier struct {
	re     *regexp.Regexp
	points float64
}

// regexTierScore is tierScore with regular-expression patterns.
func regexTierScore(value any, tiers []regexTier, maxPoints, defaultPoints float64) schema.Factor {
	s := strings.ToLower(asString(value))
	if s == "" {
		return schema.NoFactor()
	}
	for _, t := range tiers {
		if t.re.MatchString(s) {
			return schema.NewFactor(clamp(t.points, 0, maxPoints), maxPoints)
		}
	}
	return schema.NewFactor(clamp(defaultPoints, 0, maxPoints), maxPoints)
}

// categoryScore aggregates factor results into a 0-100 category score.
// Factors without data are dropped from both numerator and denominator;
// if nothing remains the category itself is unscored.
func categoryScore(factors []schema.Factor) *int {
	var sum, maxSum float64
	for _, f := range factors {
		if f.Score == nil {
			continue
		}
		sum += *f.Score
		maxSum += f.Max
	}
	if maxSum == 0 {
		return nil
	}
	score := int(math.Round(100 * sum / maxSum))
	score = min(max(score, 0), 100)
	return &score
}

// overallScore computes the weight-redistributed average of category scores.
// Categories that could not be scored are dropped from numerator and
// denominator alike, preserving the remaining categories' relative weights.
func overallScore(weights []categoryWeight, record schema.ScoreRecord) *int {
	var weighted, total float64
	for _, cw := range weights {
		v := record[cw.key]
		if v == nil {
			continue
		}
		weighted += float64(*v) * cw.weight
		total += cw.weight
	}
	if total == 0 {
		return nil
	}
	score := int(math.Round(weighted / total))
	score = min(max(score, 0), 100)
	return &score
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
