package core

import (
	"testing"

	"github.com/eridehero/ridescore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateScoresUnsupportedType(t *testing.T) {
	rec := CalculateScores(schema.SpecRecord{"motor": map[string]any{"power_nominal": 500.0}}, "Jetpack")

	// An unsupported type degrades to the fallback all-nil shape instead of
	// erroring; the shape matches the e-scooter category set.
	require.Len(t, rec, len(escooterWeights)+1)
	for key, score := range rec {
		assert.Nil(t, score, "category %s", key)
	}
	assert.False(t, rec.Scored())
}

func TestCalculateScoresEmptySpecs(t *testing.T) {
	for _, pt := range schema.AllProductTypes {
		t.Run(string(pt), func(t *testing.T) {
			rec := CalculateScores(schema.SpecRecord{}, pt)
			assert.False(t, rec.Scored())
			for key, score := range rec {
				assert.Nil(t, score, "category %s", key)
			}
		})
	}
}

func TestCalculateScoresNilSpecs(t *testing.T) {
	rec := CalculateScores(nil, schema.EScooter)
	assert.False(t, rec.Scored())
}

func TestNullRecord(t *testing.T) {
	tests := []struct {
		name       string
		pt         schema.ProductType
		categories int
	}{
		{name: "e-scooter", pt: schema.EScooter, categories: 7},
		{name: "e-bike", pt: schema.EBike, categories: 5},
		{name: "e-skateboard", pt: schema.ESkateboard, categories: 5},
		{name: "unicycle", pt: schema.EUnicycle, categories: 6},
		{name: "hoverboard", pt: schema.Hoverboard, categories: 5},
		{name: "unknown falls back to e-scooter shape", pt: "Segway", categories: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NullRecord(tt.pt)
			assert.Len(t, rec, tt.categories+1)
			overall, ok := rec[schema.CategoryOverall]
			assert.True(t, ok)
			assert.Nil(t, overall)
			for key, score := range rec {
				assert.Nil(t, score, "category %s", key)
			}
		})
	}
}

func TestWeightTablesSumToOne(t *testing.T) {
	for _, pt := range schema.AllProductTypes {
		t.Run(string(pt), func(t *testing.T) {
			weights := WeightTable(pt)
			require.NotEmpty(t, weights)
			var sum float64
			for _, cw := range weights {
				assert.Greater(t, cw.Weight, 0.0, "category %s", cw.Key)
				sum += cw.Weight
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		})
	}
}

func TestWeightTableUnknownType(t *testing.T) {
	assert.Nil(t, WeightTable("Jetpack"))
}

func TestCategoryKeys(t *testing.T) {
	keys := CategoryKeys(schema.EBike)
	assert.Equal(t, []string{
		schema.CategoryMotor,
		schema.CategoryBattery,
		schema.CategoryComponents,
		schema.CategoryComfort,
		schema.CategoryPracticality,
	}, keys)

	// Overall is never part of the category key set.
	for _, pt := range schema.AllProductTypes {
		assert.NotContains(t, CategoryKeys(pt), schema.CategoryOverall, "type %s", pt)
	}
}

func TestScoresStayInRange(t *testing.T) {
	// A spec sheet far beyond the scale ceilings must still land in 0-100.
	rec := CalculateScores(schema.SpecRecord{
		"manufacturer_top_speed": 200.0,
		"motor": map[string]any{
			"power_nominal": 50000.0,
			"power_peak":    80000.0,
			"dual_motor":    true,
			"climb_angle":   89.0,
		},
		"battery": map[string]any{
			"range":       500.0,
			"capacity":    10000.0,
			"voltage":     300.0,
			"charge_time": 0.5,
		},
	}, schema.EScooter)

	for key, score := range rec {
		if score == nil {
			continue
		}
		assert.GreaterOrEqual(t, *score, 0, "category %s", key)
		assert.LessOrEqual(t, *score, 100, "category %s", key)
	}
	require.True(t, rec.Scored())
}

func TestScorersAreDeterministic(t *testing.T) {
	specs := schema.SpecRecord{
		"manufacturer_top_speed": 30.0,
		"motor":                  map[string]any{"power_nominal": 1000.0},
		"battery":                map[string]any{"range": 40.0, "capacity": 800.0},
	}

	first := CalculateScores(specs, schema.EScooter)
	second := CalculateScores(specs, schema.EScooter)
	assert.Equal(t, first, second)
}

// BenchmarkCalculateScores benchmarks a full e-scooter scoring pass.
func BenchmarkCalculateScores(b *testing.B) {
	specs := schema.SpecRecord{
		"manufacturer_top_speed": 40.0,
		"manufacturer_range":     40.0,
		"weight":                 77.0,
		"motor":                  map[string]any{"power_nominal": 2400.0, "power_peak": 6400.0, "configuration": "dual"},
		"battery":                map[string]any{"capacity": 1216.0, "voltage": 52.0},
		"brakes":                 map[string]any{"front": "hydraulic disc", "rear": "hydraulic disc", "regenerative": true},
		"lights":                 map[string]any{"front": true, "rear": true, "turn_signals": true},
	}

	for b.Loop() {
		CalculateScores(specs, schema.EScooter)
	}
}

// BenchmarkLogScale benchmarks the logarithmic scale primitive.
func BenchmarkLogScale(b *testing.B) {
	for b.Loop() {
		logScale(60.0, 30, 120, 30, false)
	}
}
