// Package catalog loads product specification documents from disk and turns
// them into scoring subjects. A catalog is either a single JSON file holding
// an array of products or a directory of one-product-per-file JSON documents.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/eridehero/ridescore/core"
	"github.com/eridehero/ridescore/schema"
)

// Product is one catalog entry as stored on disk.
type Product struct {
	Name        string            `json:"name"`
	ProductType string            `json:"product_type"`
	Specs       schema.SpecRecord `json:"specs"`
}

// Type resolves the stored product type string, tolerating aliases ("scooter",
// "e-bike") alongside the canonical display names.
func (p Product) Type() (schema.ProductType, bool) {
	return schema.ParseProductType(p.ProductType)
}

// Subject converts a catalog product into a scoring subject. Unknown product
// types pass through with an empty type so the scorer degrades to a null
// record instead of the product silently disappearing from output.
func (p Product) Subject() core.Subject {
	pt, _ := p.Type()
	return core.Subject{Name: p.Name, Type: pt, Specs: p.Specs}
}

// Load reads a catalog from a file or directory path.
func Load(path string) ([]Product, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("catalog path: %w", err)
	}
	if info.IsDir() {
		return loadDir(path)
	}
	return loadFile(path)
}

// loadFile reads one JSON file holding either a single product object or an
// array of products.
func loadFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var products []Product
		if err := json.Unmarshal(data, &products); err != nil {
			return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
		}
		return validate(products, path)
	}

	var product Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	return validate([]Product{product}, path)
}

// loadDir reads every .json file directly inside the directory, sorted by
// filename so load order is deterministic.
func loadDir(dir string) ([]Product, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	var products []Product
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		batch, err := loadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		products = append(products, batch...)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("no .json catalog files found in %s", dir)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})
	return products, nil
}

func validate(products []Product, path string) ([]Product, error) {
	for i, p := range products {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("catalog %s: product %d has no name", path, i)
		}
	}
	return products, nil
}

// FilterByType keeps only products of the given type. An empty type keeps
// everything.
func FilterByType(products []Product, pt schema.ProductType) []Product {
	if pt == "" {
		return products
	}
	var out []Product
	for _, p := range products {
		if got, ok := p.Type(); ok && got == pt {
			out = append(out, p)
		}
	}
	return out
}

// FindByName returns the first product whose name matches, case-insensitively.
func FindByName(products []Product, name string) (Product, bool) {
	for _, p := range products {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	// Fall back to substring matching so "apollo city" finds "Apollo City Pro".
	lower := strings.ToLower(name)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), lower) {
			return p, true
		}
	}
	return Product{}, false
}
