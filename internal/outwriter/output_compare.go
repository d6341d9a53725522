package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/schema"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteComparisonResults outputs a two-way comparison, dispatching based on
// the output format configured.
func WriteComparisonResults(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForComparison(w, result)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(w, result, cfg, duration)
		}, "Wrote table")
	}
}

// writeComparisonTable writes the category deltas in a head-to-head format.
func writeComparisonTable(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	header := emojiHeader("⚔️", fmt.Sprintf("%s vs %s", result.Left, result.Right), cfg)
	if _, err := fmt.Fprintf(w, "%s\n\n", header); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", result.Left, result.Right, "Delta", "Winner"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var red, green, yellow func(...any) string
	if cfg.UseColors {
		red = color.New(color.FgRed).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	} else {
		red = fmt.Sprint
		green = fmt.Sprint
		yellow = fmt.Sprint
	}

	var data [][]string
	for _, d := range result.Categories {
		var deltaStr string
		switch {
		case d.Left == nil || d.Right == nil:
			deltaStr = "-"
		case d.Delta > 0:
			// Explicitly add + sign
			deltaStr = green(fmt.Sprintf("+%d ▲", d.Delta))
		case d.Delta < 0:
			deltaStr = red(fmt.Sprintf("%d ▼", d.Delta))
		default:
			deltaStr = yellow("0")
		}
		data = append(data, []string{
			d.Category,
			schema.FormatScore(d.Left),
			schema.FormatScore(d.Right),
			deltaStr,
			d.Winner,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(result.Advantages) > 0 {
		if _, err := fmt.Fprintf(w, "\n%s\n", emojiHeader("⚡", "Key advantages", cfg)); err != nil {
			return err
		}
		for _, a := range result.Advantages {
			if _, err := fmt.Fprintf(w, "  %s: %s\n", a.Product, a.Reason); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "\nCategories won: %s %d, %s %d\n",
		result.Left, result.Summary.CategoriesWon[result.Left],
		result.Right, result.Summary.CategoriesWon[result.Right]); err != nil {
		return err
	}
	if result.Summary.OverallWinner != "" {
		if _, err := fmt.Fprintf(w, "Overall winner: %s (by %d points)\n",
			result.Summary.OverallWinner, absInt(result.Summary.OverallDelta)); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintln(w, "Overall: tie"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Comparison completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForComparison writes one row per category delta in CSV format.
func writeCSVResultsForComparison(w io.Writer, result schema.ComparisonResult) error {
	header := []string{"category", "left_product", "left_score", "right_product", "right_score", "delta", "winner"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, d := range result.Categories {
			delta := "-"
			if d.Left != nil && d.Right != nil {
				delta = fmt.Sprintf("%d", d.Delta)
			}
			row := []string{
				d.Category,
				result.Left,
				schema.FormatScore(d.Left),
				result.Right,
				schema.FormatScore(d.Right),
				delta,
				d.Winner,
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteMultiComparisonResults outputs an N-way comparison, dispatching based
// on the output format configured.
func WriteMultiComparisonResults(result schema.MultiComparisonResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForMultiComparison(w, result)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMultiComparisonTable(w, result, cfg, duration)
		}, "Wrote table")
	}
}

// multiComparisonKeys returns the category keys to display for an N-way
// comparison, in canonical order, with overall last.
func multiComparisonKeys(result schema.MultiComparisonResult) []string {
	records := make([]schema.ScoreRecord, 0, len(result.Records))
	for _, name := range result.Products {
		records = append(records, result.Records[name])
	}
	return append(orderedCategoryKeys(records...), schema.CategoryOverall)
}

// writeMultiComparisonTable writes one row per category with a column per product.
func writeMultiComparisonTable(w io.Writer, result schema.MultiComparisonResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	headers := append([]string{"Category"}, result.Products...)
	headers = append(headers, "Winner")
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, key := range multiComparisonKeys(result) {
		row := []string{key}
		for _, name := range result.Products {
			row = append(row, schema.FormatScore(result.Records[name][key]))
		}
		row = append(row, result.Winners[key])
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if winner, ok := result.Winners[schema.CategoryOverall]; ok {
		overall := result.Records[winner].Overall()
		if _, err := fmt.Fprintf(w, "Best overall: %s (%s, %s)\n",
			winner, schema.FormatScore(overall), contract.GetPlainLabel(overall)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Comparison completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForMultiComparison writes one row per category per product.
func writeCSVResultsForMultiComparison(w io.Writer, result schema.MultiComparisonResult) error {
	header := []string{"category", "product", "score", "label", "winner"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, key := range multiComparisonKeys(result) {
			for _, name := range result.Products {
				score := result.Records[name][key]
				winner := ""
				if result.Winners[key] == name {
					winner = "yes"
				}
				row := []string{
					key,
					name,
					schema.FormatScore(score),
					contract.GetPlainLabel(score),
					winner,
				}
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
