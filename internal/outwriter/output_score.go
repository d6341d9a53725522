package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// ScoreResult is a single product's scored snapshot prepared for display.
type ScoreResult struct {
	Name      string             `json:"name"`
	Type      schema.ProductType `json:"product_type"`
	Record    schema.ScoreRecord `json:"scores"`
	SpecHash  string             `json:"spec_hash"`
	FromCache bool               `json:"from_cache"`
}

// WriteScoreResults outputs a single product's score record, dispatching based
// on the output format configured.
func WriteScoreResults(result ScoreResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForScore(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForScore(w, result)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreTable(w, result, cfg, duration)
		}, "Wrote table")
	}
}

// writeScoreTable generates and writes the human-readable per-category table.
func writeScoreTable(w io.Writer, result ScoreResult, cfg *contract.Config, duration time.Duration) error {
	header := emojiHeader(productEmoji(result.Type), fmt.Sprintf("%s (%s)", result.Name, result.Type), cfg)
	if _, err := fmt.Fprintf(w, "%s\n\n", header); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)

	table.Header([]string{"Category", "Score", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, key := range orderedCategoryKeys(result.Record) {
		score := result.Record[key]
		data = append(data, []string{
			key,
			schema.FormatScore(score),
			scoreLabel(score, cfg),
		})
	}
	overall := result.Record.Overall()
	data = append(data, []string{
		schema.CategoryOverall,
		schema.FormatScore(overall),
		scoreLabel(overall, cfg),
	})

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if !result.Record.Scored() {
		if _, err := fmt.Fprintln(w, "Not enough specification data to compute an overall score."); err != nil {
			return err
		}
	}
	cached := ""
	if result.FromCache {
		cached = " (cached)"
	}
	if _, err := fmt.Fprintf(w, "Scored in %v%s. Cache backend: %s\n", duration, cached, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForScore writes one row per category in CSV format.
func writeCSVResultsForScore(w io.Writer, result ScoreResult) error {
	header := []string{"product", "product_type", "category", "score", "label"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		keys := append(orderedCategoryKeys(result.Record), schema.CategoryOverall)
		for _, key := range keys {
			score := result.Record[key]
			row := []string{
				result.Name,
				string(result.Type),
				key,
				schema.FormatScore(score),
				contract.GetPlainLabel(score),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONResultsForScore writes the score record in JSON format.
func writeJSONResultsForScore(w io.Writer, result ScoreResult) error {
	type JSONScoreResult struct {
		Label string `json:"label"`
		ScoreResult
	}
	return writeJSON(w, JSONScoreResult{
		Label:       contract.GetPlainLabel(result.Record.Overall()),
		ScoreResult: result,
	})
}
