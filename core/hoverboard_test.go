package core

import (
	"testing"

	"github.com/eridehero/ridescore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoverboardUL2272Certification(t *testing.T) {
	certified := CalculateScores(schema.SpecRecord{
		"battery": map[string]any{"ul2272": true, "range": 7.0},
	}, schema.Hoverboard)
	uncertified := CalculateScores(schema.SpecRecord{
		"battery": map[string]any{"ul2272": false, "range": 7.0},
	}, schema.Hoverboard)

	require.NotNil(t, certified[schema.CategoryBattery])
	require.NotNil(t, uncertified[schema.CategoryBattery])
	assert.Greater(t, *certified[schema.CategoryBattery], *uncertified[schema.CategoryBattery])
}

func TestHoverboardPortabilityGatedOnWeight(t *testing.T) {
	rec := CalculateScores(schema.SpecRecord{
		"features": map[string]any{"carry_handle": true},
	}, schema.Hoverboard)
	assert.Nil(t, rec[schema.CategoryPortability])
}

func TestHoverboardScoring(t *testing.T) {
	rec := CalculateScores(schema.SpecRecord{
		"manufacturer_top_speed": 9.0,
		"motor": map[string]any{
			"power_total": 500.0,
			"climb_angle": 15.0,
		},
		"battery": map[string]any{
			"ul2272":      true,
			"range":       8.0,
			"capacity":    144.0,
			"charge_time": 3.0,
		},
		"tires": map[string]any{
			"size": 8.5,
			"type": "solid rubber",
		},
		"dimensions": map[string]any{
			"weight":   20.0,
			"max_load": 220.0,
		},
		"features": map[string]any{"self_balancing": true},
	}, schema.Hoverboard)

	require.True(t, rec.Scored())
	for _, key := range CategoryKeys(schema.Hoverboard) {
		if key == schema.CategoryFeatures {
			continue
		}
		require.NotNil(t, rec[key], "category %s", key)
	}
	assert.GreaterOrEqual(t, *rec.Overall(), 0)
	assert.LessOrEqual(t, *rec.Overall(), 100)
}
