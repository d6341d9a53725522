package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ProductType
		ok       bool
	}{
		{name: "canonical display name", input: "Electric Scooter", expected: EScooter, ok: true},
		{name: "slug", input: "e-scooter", expected: EScooter, ok: true},
		{name: "plural slug", input: "e-scooters", expected: EScooter, ok: true},
		{name: "short form", input: "scooter", expected: EScooter, ok: true},
		{name: "bike", input: "bike", expected: EBike, ok: true},
		{name: "ebike", input: "ebike", expected: EBike, ok: true},
		{name: "skateboard", input: "skateboard", expected: ESkateboard, ok: true},
		{name: "euc abbreviation", input: "EUC", expected: EUnicycle, ok: true},
		{name: "hoverboard plural", input: "hoverboards", expected: Hoverboard, ok: true},
		{name: "case-insensitive", input: "ELECTRIC BIKE", expected: EBike, ok: true},
		{name: "trims whitespace", input: "  scooter  ", expected: EScooter, ok: true},
		{name: "unknown", input: "jetpack", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseProductType(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "-", FormatScore(nil))

	v := 82
	assert.Equal(t, "82", FormatScore(&v))

	zero := 0
	assert.Equal(t, "0", FormatScore(&zero))
}

func TestGroupKey(t *testing.T) {
	tests := []struct {
		pt       ProductType
		expected string
	}{
		{EScooter, "e-scooters"},
		{EBike, "e-bikes"},
		{ESkateboard, "e-skateboards"},
		{EUnicycle, "electric-unicycles"},
		{Hoverboard, "hoverboards"},
		{ProductType("Jetpack"), ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.pt), func(t *testing.T) {
			assert.Equal(t, tt.expected, GroupKey(tt.pt))
		})
	}
}

func TestFactorConstructors(t *testing.T) {
	no := NoFactor()
	assert.Nil(t, no.Score)
	assert.Equal(t, 0.0, no.Max)

	f := NewFactor(12.5, 25)
	require.NotNil(t, f.Score)
	assert.Equal(t, 12.5, *f.Score)
	assert.Equal(t, 25.0, f.Max)
}

func TestScoreRecordOverall(t *testing.T) {
	v := 75
	rec := ScoreRecord{CategoryOverall: &v, CategoryMotor: nil}
	require.NotNil(t, rec.Overall())
	assert.Equal(t, 75, *rec.Overall())
	assert.True(t, rec.Scored())

	empty := ScoreRecord{CategoryMotor: &v}
	assert.Nil(t, empty.Overall())
	assert.False(t, empty.Scored())
}

func TestScoreRecordClone(t *testing.T) {
	v := 60
	rec := ScoreRecord{
		CategoryOverall: &v,
		CategoryMotor:   nil,
	}

	clone := rec.Clone()
	require.Equal(t, rec, clone)

	// Mutating the clone must not touch the original.
	*clone[CategoryOverall] = 10
	assert.Equal(t, 60, *rec[CategoryOverall])

	// Nil entries survive cloning as nil, not as missing keys.
	cloned, ok := clone[CategoryMotor]
	assert.True(t, ok)
	assert.Nil(t, cloned)
}

func TestAllProductTypesMatchesValidSet(t *testing.T) {
	assert.Len(t, AllProductTypes, len(ValidProductTypes))
	for _, pt := range AllProductTypes {
		_, ok := ValidProductTypes[pt]
		assert.True(t, ok, "type %s", pt)
	}
}
