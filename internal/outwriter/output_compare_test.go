package outwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComparison() schema.ComparisonResult {
	return schema.ComparisonResult{
		Left:  "Apollo Phantom",
		Right: "NIU KQi3",
		Categories: []schema.CategoryDelta{
			{Category: schema.CategoryMotor, Left: ptrInt(90), Right: ptrInt(55), Delta: 35, Winner: "Apollo Phantom"},
			{Category: schema.CategoryPortability, Left: ptrInt(40), Right: ptrInt(75), Delta: -35, Winner: "NIU KQi3"},
			{Category: schema.CategorySafety, Left: nil, Right: ptrInt(60)},
		},
		Advantages: []schema.Advantage{
			{Product: "Apollo Phantom", Category: "speed", Reason: "Faster top speed (41 mph vs 20 mph)"},
		},
		Summary: schema.ComparisonSummary{
			OverallWinner: "Apollo Phantom",
			OverallDelta:  18,
			CategoriesWon: map[string]int{"Apollo Phantom": 1, "NIU KQi3": 1},
		},
	}
}

func TestWriteComparisonTable(t *testing.T) {
	cfg := &contract.Config{CacheBackend: schema.NoneBackend}

	var buf bytes.Buffer
	err := writeComparisonTable(&buf, sampleComparison(), cfg, 0)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Apollo Phantom vs NIU KQi3")
	assert.Contains(t, out, "+35")
	assert.Contains(t, out, "-35")
	assert.Contains(t, out, "Faster top speed (41 mph vs 20 mph)")
	assert.Contains(t, out, "Overall winner: Apollo Phantom (by 18 points)")
}

func TestWriteComparisonTableTie(t *testing.T) {
	cfg := &contract.Config{}
	result := sampleComparison()
	result.Summary.OverallWinner = ""
	result.Summary.OverallDelta = 0

	var buf bytes.Buffer
	err := writeComparisonTable(&buf, result, cfg, 0)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Overall: tie")
}

func TestWriteCSVResultsForComparison(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVResultsForComparison(&buf, sampleComparison())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header + 3 categories

	assert.Equal(t, "category,left_product,left_score,right_product,right_score,delta,winner", lines[0])
	assert.Equal(t, "motor,Apollo Phantom,90,NIU KQi3,55,35,Apollo Phantom", lines[1])
	// A one-sided category reports no delta.
	assert.Equal(t, "safety,Apollo Phantom,-,NIU KQi3,60,-,", lines[3])
}

func TestWriteMultiComparisonTable(t *testing.T) {
	cfg := &contract.Config{CacheBackend: schema.SQLiteBackend}
	result := schema.MultiComparisonResult{
		Products: []string{"A", "B", "C"},
		Winners: map[string]string{
			schema.CategoryMotor:   "A",
			schema.CategoryOverall: "A",
		},
		Records: map[string]schema.ScoreRecord{
			"A": {schema.CategoryMotor: ptrInt(90), schema.CategoryOverall: ptrInt(85)},
			"B": {schema.CategoryMotor: ptrInt(70), schema.CategoryOverall: ptrInt(65)},
			"C": {schema.CategoryMotor: nil, schema.CategoryOverall: nil},
		},
	}

	var buf bytes.Buffer
	err := writeMultiComparisonTable(&buf, result, cfg, 0)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "motor")
	assert.Contains(t, out, "Best overall: A (85, Excellent)")
}

func TestWriteCSVResultsForMultiComparison(t *testing.T) {
	result := schema.MultiComparisonResult{
		Products: []string{"A", "B"},
		Winners:  map[string]string{schema.CategoryMotor: "A", schema.CategoryOverall: "A"},
		Records: map[string]schema.ScoreRecord{
			"A": {schema.CategoryMotor: ptrInt(90), schema.CategoryOverall: ptrInt(85)},
			"B": {schema.CategoryMotor: ptrInt(70), schema.CategoryOverall: ptrInt(65)},
		},
	}

	var buf bytes.Buffer
	err := writeCSVResultsForMultiComparison(&buf, result)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5) // header + (motor + overall) x 2 products

	assert.Equal(t, "category,product,score,label,winner", lines[0])
	assert.Equal(t, "motor,A,90,Excellent,yes", lines[1])
	assert.Equal(t, "motor,B,70,Great,", lines[2])
	assert.Equal(t, "overall,A,85,Excellent,yes", lines[3])
}

func TestAbsInt(t *testing.T) {
	assert.Equal(t, 5, absInt(5))
	assert.Equal(t, 5, absInt(-5))
	assert.Equal(t, 0, absInt(0))
}
