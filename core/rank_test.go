package core

import (
	"testing"

	"github.com/eridehero/ridescore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedWithOverall(name string, overall *int) RankedProduct {
	return RankedProduct{
		Name:   name,
		Type:   schema.EScooter,
		Record: schema.ScoreRecord{schema.CategoryOverall: overall},
	}
}

func TestRank(t *testing.T) {
	input := []RankedProduct{
		rankedWithOverall("Mid", ptrInt(50)),
		rankedWithOverall("Unscored B", nil),
		rankedWithOverall("Best", ptrInt(90)),
		rankedWithOverall("Unscored A", nil),
		rankedWithOverall("Low", ptrInt(20)),
	}

	out := Rank(input, 0)
	require.Len(t, out, 5)

	names := make([]string, len(out))
	for i, r := range out {
		names[i] = r.Name
	}
	// Best-first, unscored last, unscored ties alphabetical.
	assert.Equal(t, []string{"Best", "Mid", "Low", "Unscored A", "Unscored B"}, names)
}

func TestRankTiesAlphabetical(t *testing.T) {
	input := []RankedProduct{
		rankedWithOverall("Zeta", ptrInt(70)),
		rankedWithOverall("Alpha", ptrInt(70)),
		rankedWithOverall("Mike", ptrInt(70)),
	}

	out := Rank(input, 0)
	assert.Equal(t, "Alpha", out[0].Name)
	assert.Equal(t, "Mike", out[1].Name)
	assert.Equal(t, "Zeta", out[2].Name)
}

func TestRankLimit(t *testing.T) {
	input := []RankedProduct{
		rankedWithOverall("A", ptrInt(10)),
		rankedWithOverall("B", ptrInt(20)),
		rankedWithOverall("C", ptrInt(30)),
	}

	out := Rank(input, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "C", out[0].Name)
	assert.Equal(t, "B", out[1].Name)

	// Zero and negative limits mean no limit.
	assert.Len(t, Rank(input, 0), 3)
	assert.Len(t, Rank(input, -1), 3)

	// A limit beyond the input is harmless.
	assert.Len(t, Rank(input, 50), 3)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	input := []RankedProduct{
		rankedWithOverall("A", ptrInt(10)),
		rankedWithOverall("B", ptrInt(20)),
	}

	_ = Rank(input, 0)
	assert.Equal(t, "A", input[0].Name)
	assert.Equal(t, "B", input[1].Name)
}

func TestRankAll(t *testing.T) {
	subjects := []Subject{
		{
			Name:  "Weak",
			Type:  schema.EScooter,
			Specs: schema.SpecRecord{"motor": map[string]any{"power_nominal": 300.0}},
		},
		{
			Name:  "Strong",
			Type:  schema.EScooter,
			Specs: schema.SpecRecord{"motor": map[string]any{"power_nominal": 5000.0}},
		},
		{
			Name:  "No Data",
			Type:  schema.EScooter,
			Specs: schema.SpecRecord{},
		},
	}

	out := RankAll(subjects, 0)
	require.Len(t, out, 3)
	assert.Equal(t, "Strong", out[0].Name)
	assert.Equal(t, "Weak", out[1].Name)
	assert.Equal(t, "No Data", out[2].Name)
	assert.False(t, out[2].Record.Scored())
}
