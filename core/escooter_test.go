package core

import (
	"testing"

	"github.com/eridehero/ridescore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEScooterLegacyFlatShape(t *testing.T) {
	// Pre-migration scooter specs use flat field names; they must score the
	// same as the equivalent nested record.
	flat := schema.SpecRecord{
		"manufacturer_top_speed": 25.0,
		"nominal_motor_wattage":  500.0,
		"peak_motor_wattage":     800.0,
		"dual_motor":             false,
		"battery_capacity":       550.0,
		"battery_voltage":        48.0,
		"manufacturer_range":     30.0,
		"charge_time":            6.0,
		"tire_size":              10.0,
		"tire_type":              "pneumatic",
		"weight":                 55.0,
	}
	nested := schema.SpecRecord{
		"manufacturer_top_speed": 25.0,
		"motor": map[string]any{
			"power_nominal": 500.0,
			"power_peak":    800.0,
			"dual_motor":    false,
		},
		"battery": map[string]any{
			"capacity":    550.0,
			"voltage":     48.0,
			"range":       30.0,
			"charge_time": 6.0,
		},
		"tires": map[string]any{
			"size": 10.0,
			"type": "pneumatic",
		},
		"dimensions": map[string]any{
			"weight": 55.0,
		},
	}

	flatRec := CalculateScores(flat, schema.EScooter)
	nestedRec := CalculateScores(nested, schema.EScooter)

	require.True(t, flatRec.Scored())
	assert.Equal(t, nestedRec, flatRec)
}

func TestEScooterPortabilityGatedOnWeight(t *testing.T) {
	// Folding data alone is not enough; without a weight figure the whole
	// portability category is unscored.
	rec := CalculateScores(schema.SpecRecord{
		"folding": map[string]any{
			"foldable":           true,
			"folding_handlebars": true,
		},
		"dimensions": map[string]any{
			"folded_length": 45.0,
			"folded_width":  20.0,
			"folded_height": 19.0,
		},
	}, schema.EScooter)
	assert.Nil(t, rec[schema.CategoryPortability])

	withWeight := CalculateScores(schema.SpecRecord{
		"dimensions": map[string]any{"weight": 40.0},
		"folding":    map[string]any{"foldable": true},
	}, schema.EScooter)
	assert.NotNil(t, withWeight[schema.CategoryPortability])
}

func TestEScooterSafetyGatedOnTopSpeed(t *testing.T) {
	specs := schema.SpecRecord{
		"brakes": map[string]any{
			"front": "hydraulic disc",
			"rear":  "hydraulic disc",
		},
		"lights": map[string]any{
			"front": true,
			"rear":  true,
		},
	}

	rec := CalculateScores(specs, schema.EScooter)
	assert.Nil(t, rec[schema.CategorySafety])

	specs["manufacturer_top_speed"] = 30.0
	rec = CalculateScores(specs, schema.EScooter)
	assert.NotNil(t, rec[schema.CategorySafety])
}

func TestSafeBrakingSpeed(t *testing.T) {
	tests := []struct {
		name      string
		front     string
		rear      string
		regen     bool
		dualMotor bool
		expected  float64
	}{
		{
			name:      "dual hydraulic with regen on both motors",
			front:     "hydraulic disc",
			rear:      "hydraulic disc",
			regen:     true,
			dualMotor: true,
			expected:  90,
		},
		{
			name:     "dual drum with regen",
			front:    "drum",
			rear:     "drum",
			regen:    true,
			expected: 28,
		},
		{
			name:     "front disc only",
			front:    "mechanical disc",
			expected: 30,
		},
		{
			name:     "semi-hydraulic beats plain hydraulic tier ordering",
			front:    "semi-hydraulic",
			rear:     "semi hydraulic",
			expected: 70,
		},
		{
			name:     "no brakes means no regen bonus either",
			front:    "none",
			rear:     "none",
			regen:    true,
			expected: 0,
		},
		{
			name:     "foot brake",
			rear:     "foot",
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := safeBrakingSpeed(tt.front, tt.rear, tt.regen, tt.dualMotor)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestBrakeAdequacyFactor(t *testing.T) {
	tests := []struct {
		name      string
		safeSpeed float64
		topSpeed  float64
		expected  *float64
	}{
		{name: "generous headroom", safeSpeed: 90, topSpeed: 60, expected: ptrFloat(50)},
		{name: "adequate", safeSpeed: 30, topSpeed: 30, expected: ptrFloat(45)},
		{name: "marginal", safeSpeed: 28, topSpeed: 30, expected: ptrFloat(30)},
		{name: "underbraked", safeSpeed: 20, topSpeed: 30, expected: ptrFloat(15)},
		{name: "dangerous", safeSpeed: 10, topSpeed: 40, expected: ptrFloat(5)},
		{name: "no top speed is no data", safeSpeed: 30, topSpeed: 0, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertFactor(t, tt.expected, 50, brakeAdequacyFactor(tt.safeSpeed, tt.topSpeed))
		})
	}
}

func TestVisibilityFactor(t *testing.T) {
	s := newEScooterScorer()

	tests := []struct {
		name     string
		lights   map[string]any
		expected *float64
	}{
		{
			name:     "all lights",
			lights:   map[string]any{"front": true, "rear": true, "turn_signals": true},
			expected: ptrFloat(25),
		},
		{
			name:     "front only",
			lights:   map[string]any{"front": true},
			expected: ptrFloat(10),
		},
		{
			name:     "explicit no lights still scores zero",
			lights:   map[string]any{"front": false, "rear": false},
			expected: ptrFloat(0),
		},
		{
			name:     "no light data at all",
			lights:   map[string]any{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := s.visibilityFactor(schema.SpecRecord{"lights": tt.lights})
			assertFactor(t, tt.expected, 25, f)
		})
	}
}

func TestFoldedVolumeFactor(t *testing.T) {
	s := newEScooterScorer()

	// All three folded dimensions are required.
	partial := schema.SpecRecord{
		"dimensions": map[string]any{
			"folded_length": 45.0,
			"folded_width":  20.0,
		},
	}
	assert.Nil(t, s.foldedVolumeFactor(partial).Score)

	full := schema.SpecRecord{
		"dimensions": map[string]any{
			"folded_length": 45.0,
			"folded_width":  20.0,
			"folded_height": 19.0,
		},
	}
	f := s.foldedVolumeFactor(full)
	require.NotNil(t, f.Score)
	assert.Equal(t, 20.0, f.Max)
}

func TestEScooterBetterSpecsScoreHigher(t *testing.T) {
	budget := schema.SpecRecord{
		"manufacturer_top_speed": 15.0,
		"motor":                  map[string]any{"power_nominal": 300.0},
		"battery":                map[string]any{"range": 12.0, "capacity": 280.0},
		"dimensions":             map[string]any{"weight": 60.0},
	}
	performance := schema.SpecRecord{
		"manufacturer_top_speed": 50.0,
		"motor":                  map[string]any{"power_nominal": 3000.0, "dual_motor": true},
		"battery":                map[string]any{"range": 60.0, "capacity": 2000.0},
		"dimensions":             map[string]any{"weight": 60.0},
	}

	budgetRec := CalculateScores(budget, schema.EScooter)
	performanceRec := CalculateScores(performance, schema.EScooter)

	require.True(t, budgetRec.Scored())
	require.True(t, performanceRec.Scored())
	assert.Greater(t, *performanceRec.Overall(), *budgetRec.Overall())
	assert.Greater(t, *performanceRec[schema.CategoryMotor], *budgetRec[schema.CategoryMotor])
	assert.Greater(t, *performanceRec[schema.CategoryBattery], *budgetRec[schema.CategoryBattery])
}
