package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/eridehero/ridescore/core"
	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/internal/parquet"
	"github.com/eridehero/ridescore/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRankingResults outputs ranked catalog results, dispatching based on the
// output format configured. specHashes maps product names to their spec hashes
// and may be nil when no persistence layer is involved.
func WriteRankingResults(ranked []core.RankedProduct, specHashes map[string]string, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForRanking(w, ranked)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForRanking(w, ranked, specHashes)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetResultsForRanking(ranked, specHashes, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingTable(w, ranked, cfg, duration)
		}, "Wrote table")
	}
}

// writeRankingTable generates and writes the human-readable ranking table.
func writeRankingTable(w io.Writer, ranked []core.RankedProduct, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Rank", "Product", "Type", "Overall", "Label"}
	if cfg.Detail {
		headers = append(headers, "Categories")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	scored := 0
	for i, rp := range ranked {
		overall := rp.Record.Overall()
		if overall != nil {
			scored++
		}
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(rp.Name, getMaxTableNameWidth(cfg)),
			string(rp.Type),
			schema.FormatScore(overall),
			scoreLabel(overall, cfg),
		}
		if cfg.Detail {
			row = append(row, formatCategoryBreakdown(rp.Record))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing top %d products (%d scored, %d unscored)\n",
		len(ranked), scored, len(ranked)-scored); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Scoring completed in %v with %d workers. Cache backend: %s\n",
		duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForRanking writes the ranking results in CSV format.
func writeCSVResultsForRanking(w io.Writer, ranked []core.RankedProduct, specHashes map[string]string) error {
	header := []string{"rank", "product", "product_type", "overall", "label", "categories", "spec_hash"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, rp := range ranked {
			overall := rp.Record.Overall()
			row := []string{
				strconv.Itoa(i + 1),
				rp.Name,
				string(rp.Type),
				schema.FormatScore(overall),
				contract.GetPlainLabel(overall),
				formatCategoryBreakdown(rp.Record),
				specHashes[rp.Name],
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONResultsForRanking writes the ranking results in JSON format.
func writeJSONResultsForRanking(w io.Writer, ranked []core.RankedProduct) error {
	type JSONRankedProduct struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		core.RankedProduct
	}

	output := make([]JSONRankedProduct, len(ranked))
	for i, rp := range ranked {
		output[i] = JSONRankedProduct{
			Rank:          i + 1,
			Label:         contract.GetPlainLabel(rp.Record.Overall()),
			RankedProduct: rp,
		}
	}
	return writeJSON(w, output)
}

// writeParquetResultsForRanking writes the ranking results to a Parquet file.
// Parquet is a binary columnar format, so stdout fallback makes no sense here
// and an explicit output file is required.
func writeParquetResultsForRanking(ranked []core.RankedProduct, specHashes map[string]string, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}
	rows := parquet.ConvertRankedProducts(ranked, specHashes, time.Now())
	if err := parquet.WriteProductScoresParquet(rows, cfg.OutputFile); err != nil {
		return fmt.Errorf("error writing parquet output: %w", err)
	}
	fmt.Printf("Exported %d product score records to: %s\n", len(rows), cfg.OutputFile)
	return nil
}
