package schema

import (
	"strconv"
	"strings"
)

// productTypeAliases maps lowercased user input to canonical product types.
// Matching is forgiving because catalog documents and CLI flags use a mix of
// slugs ("e-scooter"), plurals ("e-bikes") and display names.
var productTypeAliases = map[string]ProductType{
	"electric scooter":    EScooter,
	"e-scooter":           EScooter,
	"e-scooters":          EScooter,
	"escooter":            EScooter,
	"scooter":             EScooter,
	"electric bike":       EBike,
	"e-bike":              EBike,
	"e-bikes":             EBike,
	"ebike":               EBike,
	"bike":                EBike,
	"electric skateboard": ESkateboard,
	"e-skateboard":        ESkateboard,
	"e-skateboards":       ESkateboard,
	"eskateboard":         ESkateboard,
	"skateboard":          ESkateboard,
	"electric unicycle":   EUnicycle,
	"electric-unicycle":   EUnicycle,
	"electric-unicycles":  EUnicycle,
	"unicycle":            EUnicycle,
	"euc":                 EUnicycle,
	"hoverboard":          Hoverboard,
	"hoverboards":         Hoverboard,
}

// ParseProductType resolves a user-supplied product type string to its
// canonical value. The second return value is false for unknown types.
func ParseProductType(s string) (ProductType, bool) {
	pt, ok := productTypeAliases[strings.ToLower(strings.TrimSpace(s))]
	return pt, ok
}

// FormatScore renders a possibly-nil category score for display.
func FormatScore(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
