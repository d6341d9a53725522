package core

import (
	"strings"

	"github.com/eridehero/ridescore/schema"
)

// specAccessor resolves dotted attribute paths against a specification record
// without callers needing to know whether the record uses the modern nested
// shape, a product-group-prefixed shape, or the legacy flat shape. The group
// key is fixed at construction; accessors are immutable and shareable.
type specAccessor struct {
	groupKey string

	// flatFallback maps dotted paths to legacy flat field names kept for
	// backward compatibility. Only e-scooters ever shipped a flat shape;
	// every other product type leaves this nil by design.
	flatFallback map[string]string
}

func newSpecAccessor(pt schema.ProductType, flatFallback map[string]string) specAccessor {
	return specAccessor{groupKey: schema.GroupKey(pt), flatFallback: flatFallback}
}

// resolve looks up a dotted path using the three-step order: direct nested
// traversal, group-prefixed traversal, then the flat fallback table. Missing
// data yields nil, never an error.
func (a specAccessor) resolve(rec schema.SpecRecord, path string) any {
	return a.resolveFlat(rec, path, "")
}

// resolveFlat is resolve with an explicit legacy flat key checked first.
// The explicit key has top priority: it is an intentional shortcut for specs
// known to predate the nested shape.
func (a specAccessor) resolveFlat(rec schema.SpecRecord, path, flatKey string) any {
	if rec == nil {
		return nil
	}
	if flatKey != "" {
		if v, ok := rec[flatKey]; ok && v != nil {
			return v
		}
	}
	if v, ok := lookupPath(rec, path); ok {
		return v
	}
	if a.groupKey != "" {
		if v, ok := lookupPath(rec, a.groupKey+"."+path); ok {
			return v
		}
	}
	if a.flatFallback != nil {
		if legacy, ok := a.flatFallback[path]; ok {
			if v, exists := rec[legacy]; exists && v != nil {
				return v
			}
		}
	}
	return nil
}

// topLevel looks up a field that lives at the record root rather than under a
// sub-group (features, category, manufacturer_top_speed), checking the root
// first and then the group-prefixed root.
func (a specAccessor) topLevel(rec schema.SpecRecord, key string) any {
	if rec == nil {
		return nil
	}
	if v, ok := rec[key]; ok && v != nil {
		return v
	}
	if a.groupKey != "" {
		if group, ok := asMap(rec[a.groupKey]); ok {
			if v, exists := group[key]; exists && v != nil {
				return v
			}
		}
	}
	return nil
}

// lookupPath traverses a dotted path segment by segment, failing fast when an
// intermediate segment is missing or not a map.
func lookupPath(m map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")
	cur := m
	for i, seg := range segments {
		v, ok := cur[seg]
		if !ok || v == nil {
			return nil, false
		}
		if i == len(segments)-1 {
			return v, true
		}
		next, ok := asMap(v)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}
