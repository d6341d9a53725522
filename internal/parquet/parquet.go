// Package parquet provides data structures and functions for exporting
// scoring data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/eridehero/ridescore/core"
	"github.com/eridehero/ridescore/schema"
	"github.com/parquet-go/parquet-go"
)

// ScoringRun represents a single scoring run with metadata.
// This struct maps to the ridescore_runs database table.
type ScoringRun struct {
	// RunID is the unique identifier for this scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// TotalProducts is the number of products scored in this run
	TotalProducts int32 `parquet:"total_products,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// ProductScore represents one product's scored snapshot within a run.
// Category columns are nullable because each product type exposes only its
// own category subset, and a category with no spec data stays unscored.
type ProductScore struct {
	// RunID references the parent scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// Product is the product's display name
	Product string `parquet:"product,snappy"`

	// ProductType discriminates the product family
	ProductType string `parquet:"product_type,snappy"`

	// ScoredAt is when this product was scored (stored as TIMESTAMP with nanosecond precision)
	ScoredAt time.Time `parquet:"scored_at,snappy"`

	// SpecHash is the content hash of the specification record
	SpecHash string `parquet:"spec_hash,snappy"`

	Overall      *int32 `parquet:"overall,optional,snappy"`
	Motor        *int32 `parquet:"motor,optional,snappy"`
	Battery      *int32 `parquet:"battery,optional,snappy"`
	RideQuality  *int32 `parquet:"ride_quality,optional,snappy"`
	Portability  *int32 `parquet:"portability,optional,snappy"`
	Safety       *int32 `parquet:"safety,optional,snappy"`
	Features     *int32 `parquet:"features,optional,snappy"`
	Maintenance  *int32 `parquet:"maintenance,optional,snappy"`
	Components   *int32 `parquet:"components,optional,snappy"`
	Comfort      *int32 `parquet:"comfort,optional,snappy"`
	Practicality *int32 `parquet:"practicality,optional,snappy"`
	RideComfort  *int32 `parquet:"ride_comfort,optional,snappy"`
}

// WriteScoringRunsParquet writes a slice of ScoringRun structs to a Parquet file.
func WriteScoringRunsParquet(data []ScoringRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ScoringRun struct tags
	writer := parquet.NewGenericWriter[ScoringRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteProductScoresParquet writes a slice of ProductScore structs to a Parquet file.
func WriteProductScoresParquet(data []ProductScore, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ProductScore struct tags
	writer := parquet.NewGenericWriter[ProductScore](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to ScoringRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []ScoringRun {
	result := make([]ScoringRun, len(records))
	for i, record := range records {
		result[i] = ScoringRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			TotalProducts: record.TotalProducts,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertProductScoreRecords converts schema.ProductScoreRecord to ProductScore for Parquet export.
func ConvertProductScoreRecords(records []schema.ProductScoreRecord) []ProductScore {
	result := make([]ProductScore, len(records))
	for i, record := range records {
		row := ProductScore{
			RunID:       record.RunID,
			Product:     record.Product,
			ProductType: string(record.ProductType),
			ScoredAt:    record.ScoredAt,
			SpecHash:    record.SpecHash,
			Overall:     toInt32(record.Overall),
		}
		fillCategories(&row, record.Categories)
		result[i] = row
	}
	return result
}

// ConvertRankedProducts converts freshly ranked products into ProductScore
// rows for direct parquet output (no run tracking involved, RunID stays 0).
func ConvertRankedProducts(ranked []core.RankedProduct, specHashes map[string]string, scoredAt time.Time) []ProductScore {
	result := make([]ProductScore, len(ranked))
	for i, rp := range ranked {
		row := ProductScore{
			Product:     rp.Name,
			ProductType: string(rp.Type),
			ScoredAt:    scoredAt,
			SpecHash:    specHashes[rp.Name],
			Overall:     toInt32(rp.Record.Overall()),
		}
		fillCategories(&row, rp.Record)
		result[i] = row
	}
	return result
}

// fillCategories copies the per-category scores from a score record into the
// matching nullable columns.
func fillCategories(row *ProductScore, rec schema.ScoreRecord) {
	row.Motor = toInt32(rec[schema.CategoryMotor])
	row.Battery = toInt32(rec[schema.CategoryBattery])
	row.RideQuality = toInt32(rec[schema.CategoryRideQuality])
	row.Portability = toInt32(rec[schema.CategoryPortability])
	row.Safety = toInt32(rec[schema.CategorySafety])
	row.Features = toInt32(rec[schema.CategoryFeatures])
	row.Maintenance = toInt32(rec[schema.CategoryMaintenance])
	row.Components = toInt32(rec[schema.CategoryComponents])
	row.Comfort = toInt32(rec[schema.CategoryComfort])
	row.Practicality = toInt32(rec[schema.CategoryPracticality])
	row.RideComfort = toInt32(rec[schema.CategoryRideComfort])
}

func toInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	out := int32(*v)
	return &out
}
