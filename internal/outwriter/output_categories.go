package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/eridehero/ridescore/core"
	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/schema"
)

// categoryRenderModel is the processed weight-table data for display.
type categoryRenderModel struct {
	Types []categoryTypeEntry `json:"types"`
}

// categoryTypeEntry is one product type's category weight table.
type categoryTypeEntry struct {
	ProductType schema.ProductType    `json:"product_type"`
	Categories  []core.CategoryWeight `json:"categories"`
}

// WriteCategoryDefinitions displays the fixed category weight tables used by
// each product type's scorer. This is a static display that does not require
// a catalog.
func WriteCategoryDefinitions(cfg *contract.Config) error {
	renderModel := buildCategoryRenderModel(cfg.ProductType)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCategoriesCSV(w, renderModel)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCategoriesText(w, renderModel, cfg)
		}, "Wrote text")
	}
}

// buildCategoryRenderModel collects the weight tables, optionally filtered to
// a single product type.
func buildCategoryRenderModel(only schema.ProductType) categoryRenderModel {
	var model categoryRenderModel
	for _, pt := range schema.AllProductTypes {
		if only != "" && pt != only {
			continue
		}
		model.Types = append(model.Types, categoryTypeEntry{
			ProductType: pt,
			Categories:  core.WeightTable(pt),
		})
	}
	return model
}

// writeCategoriesText displays the weight tables in human-readable text format.
func writeCategoriesText(w io.Writer, model categoryRenderModel, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%s\n", emojiHeader("🏆", "Scoring Categories", cfg)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "===================\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Overall = weighted average of scored categories; weights of\nunscored categories are redistributed across the rest.\n\n"); err != nil {
		return err
	}

	for _, entry := range model.Types {
		header := emojiHeader(productEmoji(entry.ProductType), string(entry.ProductType), cfg)
		if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
			return err
		}
		for _, cw := range entry.Categories {
			if _, err := fmt.Fprintf(w, "   %-14s %3.0f%%\n", cw.Key, cw.Weight*100); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// writeCategoriesCSV displays the weight tables in CSV format.
func writeCategoriesCSV(w io.Writer, model categoryRenderModel) error {
	header := []string{"product_type", "category", "weight"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, entry := range model.Types {
			for _, cw := range entry.Categories {
				row := []string{
					string(entry.ProductType),
					cw.Key,
					fmt.Sprintf("%.2f", cw.Weight),
				}
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
