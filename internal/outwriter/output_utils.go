package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/schema"
	"golang.org/x/term"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// scoreLabel picks the colored or plain label depending on configuration.
func scoreLabel(score *int, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(score)
	}
	return contract.GetPlainLabel(score)
}

// productEmoji returns the display emoji for a product type.
func productEmoji(pt schema.ProductType) string {
	switch pt {
	case schema.EScooter:
		return "🛴"
	case schema.EBike:
		return "🚲"
	case schema.ESkateboard:
		return "🛹"
	case schema.EUnicycle:
		return "🛞"
	case schema.Hoverboard:
		return "🛸"
	default:
		return "🏁"
	}
}

// emojiHeader prefixes a header with an emoji when emojis are enabled.
func emojiHeader(emoji, text string, cfg *contract.Config) string {
	if cfg.UseEmojis {
		return emoji + " " + text
	}
	return text
}

// getMaxTableNameWidth calculates the maximum width for product names in table
// output based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 45 // Rank + Type + Overall + Label with borders/padding

	// Add the category breakdown column with formatting
	if cfg.Detail {
		baseWidth += 55
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 10

	// Calculate available space for the product name
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable name width
		return 15
	}
	if available > 60 {
		// Maximum name width to prevent overly wide tables
		return 60
	}
	return available
}

// categoryDisplayOrder is the canonical presentation order for every category
// key across all product types. Records only ever contain a subset.
var categoryDisplayOrder = []string{
	schema.CategoryMotor,
	schema.CategoryBattery,
	schema.CategoryComponents,
	schema.CategoryRideQuality,
	schema.CategoryComfort,
	schema.CategoryRideComfort,
	schema.CategoryPracticality,
	schema.CategoryPortability,
	schema.CategorySafety,
	schema.CategoryFeatures,
	schema.CategoryMaintenance,
}

// orderedCategoryKeys returns the category keys present in any of the given
// records, in canonical display order, without the overall key.
func orderedCategoryKeys(records ...schema.ScoreRecord) []string {
	var keys []string
	for _, key := range categoryDisplayOrder {
		for _, rec := range records {
			if _, ok := rec[key]; ok {
				keys = append(keys, key)
				break
			}
		}
	}
	return keys
}

// formatCategoryBreakdown renders a record's category scores as a compact
// single-cell string (e.g. "motor:82 battery:74 safety:-").
func formatCategoryBreakdown(rec schema.ScoreRecord) string {
	out := ""
	for _, key := range orderedCategoryKeys(rec) {
		if out != "" {
			out += " "
		}
		out += key + ":" + schema.FormatScore(rec[key])
	}
	return out
}
