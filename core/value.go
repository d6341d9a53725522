package core

import (
	"encoding/json"
	"strconv"
	"strings"
)

// asFloat coerces a raw spec value into a float64. Catalog sources are not
// consistent about numeric types: JSON decoding yields float64, hand-built
// records may carry ints, and scraped specs sometimes store numbers as
// strings ("52" or "52 V"). Anything else is "no data".
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		// Tolerate a trailing unit suffix ("52 V", "1200Wh").
		if i := strings.IndexFunc(s, func(r rune) bool {
			return (r < '0' || r > '9') && r != '.' && r != '-'
		}); i > 0 {
			s = strings.TrimSpace(s[:i])
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// asBool coerces a raw spec value into a bool. Only explicit booleans and
// their common string/numeric encodings count; absence stays tri-state.
func asBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "1":
			return true, true
		case "false", "no", "0":
			return false, true
		}
		return false, false
	case float64:
		if b == 0 || b == 1 {
			return b == 1, true
		}
		return false, false
	case int:
		if b == 0 || b == 1 {
			return b == 1, true
		}
		return false, false
	default:
		return false, false
	}
}

// asString coerces a raw spec value into a trimmed string, "" meaning no data.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case []any:
		// Joined so tier matching can see all tags at once.
		parts := make([]string, 0, len(s))
		for _, e := range s {
			if str, ok := e.(string); ok && strings.TrimSpace(str) != "" {
				parts = append(parts, strings.TrimSpace(str))
			}
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

// containsFold reports whether s contains substr, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// asMap returns the value as a nested spec map, if it is one.
func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}
