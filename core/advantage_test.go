package core

import (
	"testing"

	"github.com/eridehero/ridescore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	left := Subject{
		Name: "Apollo Phantom",
		Type: schema.EScooter,
		Specs: schema.SpecRecord{
			"manufacturer_top_speed": 41.0,
			"motor":                  map[string]any{"power_nominal": 2400.0, "dual_motor": true},
			"battery":                map[string]any{"range": 40.0, "capacity": 1200.0},
			"dimensions":             map[string]any{"weight": 77.0},
		},
	}
	right := Subject{
		Name: "Xiaomi Mi 4",
		Type: schema.EScooter,
		Specs: schema.SpecRecord{
			"manufacturer_top_speed": 18.0,
			"motor":                  map[string]any{"power_nominal": 300.0},
			"battery":                map[string]any{"range": 22.0, "capacity": 446.0},
			"dimensions":             map[string]any{"weight": 37.0},
		},
	}

	result := Compare(left, right)

	assert.Equal(t, "Apollo Phantom", result.Left)
	assert.Equal(t, "Xiaomi Mi 4", result.Right)
	assert.Len(t, result.Categories, len(CategoryKeys(schema.EScooter)))

	byCategory := make(map[string]schema.CategoryDelta)
	for _, d := range result.Categories {
		byCategory[d.Category] = d
	}

	motor := byCategory[schema.CategoryMotor]
	require.NotNil(t, motor.Left)
	require.NotNil(t, motor.Right)
	assert.Equal(t, "Apollo Phantom", motor.Winner)
	assert.Equal(t, *motor.Left-*motor.Right, motor.Delta)

	// The lighter scooter wins portability.
	portability := byCategory[schema.CategoryPortability]
	assert.Equal(t, "Xiaomi Mi 4", portability.Winner)

	// Unscored categories produce no winner.
	safety := byCategory[schema.CategorySafety]
	assert.Empty(t, safety.Winner)

	assert.Equal(t, "Apollo Phantom", result.Summary.OverallWinner)
	assert.Positive(t, result.Summary.OverallDelta)
	assert.Positive(t, result.Summary.CategoriesWon["Apollo Phantom"])
}

func TestCompareMixedTypes(t *testing.T) {
	scooter := Subject{
		Name:  "Scooter",
		Type:  schema.EScooter,
		Specs: schema.SpecRecord{"motor": map[string]any{"power_nominal": 500.0}},
	}
	bike := Subject{
		Name:  "Bike",
		Type:  schema.EBike,
		Specs: schema.SpecRecord{"motor": map[string]any{"brand": "Bosch"}},
	}

	result := Compare(scooter, bike)

	// The category list is the union of both types' category sets.
	keys := make(map[string]bool)
	for _, d := range result.Categories {
		keys[d.Category] = true
	}
	assert.True(t, keys[schema.CategoryMaintenance], "left-only category present")
	assert.True(t, keys[schema.CategoryComponents], "right-only category present")

	// A category only the left type defines has a nil right score.
	for _, d := range result.Categories {
		if d.Category == schema.CategoryMaintenance {
			assert.Nil(t, d.Right)
		}
	}
}

func TestCompareTie(t *testing.T) {
	specs := schema.SpecRecord{
		"motor":   map[string]any{"power_nominal": 500.0},
		"battery": map[string]any{"range": 30.0},
	}
	result := Compare(
		Subject{Name: "A", Type: schema.EScooter, Specs: specs},
		Subject{Name: "B", Type: schema.EScooter, Specs: specs},
	)

	assert.Empty(t, result.Summary.OverallWinner)
	assert.Zero(t, result.Summary.OverallDelta)
	for _, d := range result.Categories {
		assert.Empty(t, d.Winner, "category %s", d.Category)
	}
}

func TestAdvantages(t *testing.T) {
	left := Subject{
		Name: "Heavy Cruiser",
		Type: schema.EScooter,
		Specs: schema.SpecRecord{
			"manufacturer_top_speed": 40.0,
			"battery":                map[string]any{"range": 60.0},
			"dimensions":             map[string]any{"weight": 100.0},
		},
	}
	right := Subject{
		Name: "Light Commuter",
		Type: schema.EScooter,
		Specs: schema.SpecRecord{
			"manufacturer_top_speed": 20.0,
			"battery":                map[string]any{"range": 25.0},
			"dimensions":             map[string]any{"weight": 30.0},
		},
	}

	result := advantages(left, right)

	var winners []string
	for _, a := range result {
		winners = append(winners, a.Product)
	}
	// Speed and range go to the cruiser, weight to the commuter.
	assert.Contains(t, winners, "Heavy Cruiser")
	assert.Contains(t, winners, "Light Commuter")

	for _, a := range result {
		switch a.Category {
		case schema.CategoryMotor, schema.CategoryBattery:
			assert.Equal(t, "Heavy Cruiser", a.Product, "reason %s", a.Reason)
		case schema.CategoryPortability:
			assert.Equal(t, "Light Commuter", a.Product, "reason %s", a.Reason)
		}
	}
}

func TestAdvantagesBelowThresholdSkipped(t *testing.T) {
	// A 2 percent speed difference is below the 5 percent floor.
	left := Subject{
		Name:  "A",
		Type:  schema.EScooter,
		Specs: schema.SpecRecord{"manufacturer_top_speed": 30.6},
	}
	right := Subject{
		Name:  "B",
		Type:  schema.EScooter,
		Specs: schema.SpecRecord{"manufacturer_top_speed": 30.0},
	}
	assert.Empty(t, advantages(left, right))
}

func TestAdvantagesReasonFormat(t *testing.T) {
	left := Subject{
		Name:  "A",
		Type:  schema.EScooter,
		Specs: schema.SpecRecord{"manufacturer_top_speed": 40.0},
	}
	right := Subject{
		Name:  "B",
		Type:  schema.EScooter,
		Specs: schema.SpecRecord{"manufacturer_top_speed": 25.0},
	}

	result := advantages(left, right)
	require.Len(t, result, 1)
	assert.Equal(t, "A", result[0].Product)
	assert.Equal(t, "Faster top speed (40 mph vs 25 mph)", result[0].Reason)
}

func TestCompareMany(t *testing.T) {
	subjects := []Subject{
		{
			Name:  "Mid",
			Type:  schema.EScooter,
			Specs: schema.SpecRecord{"motor": map[string]any{"power_nominal": 1000.0}},
		},
		{
			Name:  "Strong",
			Type:  schema.EScooter,
			Specs: schema.SpecRecord{"motor": map[string]any{"power_nominal": 5000.0}},
		},
		{
			Name:  "Weak",
			Type:  schema.EScooter,
			Specs: schema.SpecRecord{"motor": map[string]any{"power_nominal": 300.0}},
		},
	}

	result := CompareMany(subjects)

	assert.Equal(t, []string{"Mid", "Strong", "Weak"}, result.Products)
	assert.Equal(t, "Strong", result.Winners[schema.CategoryMotor])
	assert.Equal(t, "Strong", result.Winners[schema.CategoryOverall])
	assert.Len(t, result.Records, 3)

	// Categories nobody scored have no winner entry.
	_, ok := result.Winners[schema.CategorySafety]
	assert.False(t, ok)
}

func TestCompareManyTieKeepsEarliest(t *testing.T) {
	specs := schema.SpecRecord{"motor": map[string]any{"power_nominal": 1000.0}}
	result := CompareMany([]Subject{
		{Name: "First", Type: schema.EScooter, Specs: specs},
		{Name: "Second", Type: schema.EScooter, Specs: specs},
	})

	assert.Equal(t, "First", result.Winners[schema.CategoryMotor])
	assert.Equal(t, "First", result.Winners[schema.CategoryOverall])
}
