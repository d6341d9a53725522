package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eridehero/ridescore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSingleProductFile(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalogFile(t, dir, "apollo.json", `{
		"name": "Apollo City",
		"product_type": "scooter",
		"specs": {"manufacturer_top_speed": 32, "motor": {"power_nominal": 1000}}
	}`)

	products, err := Load(path)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Apollo City", products[0].Name)

	pt, ok := products[0].Type()
	require.True(t, ok)
	assert.Equal(t, schema.EScooter, pt)
	assert.Equal(t, 32.0, products[0].Specs["manufacturer_top_speed"])
}

func TestLoadArrayFile(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalogFile(t, dir, "catalog.json", `[
		{"name": "Apollo City", "product_type": "scooter", "specs": {}},
		{"name": "Lectric XP", "product_type": "e-bike", "specs": {}}
	]`)

	products, err := Load(path)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Apollo City", products[0].Name)
	assert.Equal(t, "Lectric XP", products[1].Name)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "b.json", `{"name": "Bravo", "product_type": "scooter", "specs": {}}`)
	writeCatalogFile(t, dir, "a.json", `{"name": "Alpha", "product_type": "scooter", "specs": {}}`)
	writeCatalogFile(t, dir, "notes.txt", "not a catalog file")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	products, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, products, 2)
	// Sorted by name regardless of filename order.
	assert.Equal(t, "Alpha", products[0].Name)
	assert.Equal(t, "Bravo", products[1].Name)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing path", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog path")
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeCatalogFile(t, dir, "broken.json", `{not json`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse catalog file")
	})

	t.Run("empty directory", func(t *testing.T) {
		empty := t.TempDir()
		_, err := Load(empty)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no .json catalog files")
	})

	t.Run("product without name", func(t *testing.T) {
		path := writeCatalogFile(t, dir, "anon.json", `{"product_type": "scooter", "specs": {}}`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no name")
	})
}

func TestFilterByType(t *testing.T) {
	products := []Product{
		{Name: "Scooter A", ProductType: "scooter"},
		{Name: "Bike B", ProductType: "e-bike"},
		{Name: "Scooter C", ProductType: "Electric Scooter"},
		{Name: "Mystery", ProductType: "jetpack"},
	}

	scooters := FilterByType(products, schema.EScooter)
	require.Len(t, scooters, 2)
	assert.Equal(t, "Scooter A", scooters[0].Name)
	assert.Equal(t, "Scooter C", scooters[1].Name)

	// Empty type keeps everything, unknown types included.
	assert.Len(t, FilterByType(products, ""), 4)
}

func TestFindByName(t *testing.T) {
	products := []Product{
		{Name: "Apollo City Pro"},
		{Name: "Apollo Phantom"},
		{Name: "NIU KQi3"},
	}

	tests := []struct {
		name     string
		query    string
		expected string
		found    bool
	}{
		{name: "exact match", query: "Apollo Phantom", expected: "Apollo Phantom", found: true},
		{name: "case-insensitive exact", query: "apollo phantom", expected: "Apollo Phantom", found: true},
		{name: "substring match", query: "apollo city", expected: "Apollo City Pro", found: true},
		{name: "exact beats substring", query: "Apollo Phantom", expected: "Apollo Phantom", found: true},
		{name: "not found", query: "Segway", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, found := FindByName(products, tt.query)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.expected, p.Name)
			}
		})
	}
}

func TestSubjectDegradesUnknownType(t *testing.T) {
	p := Product{Name: "Mystery", ProductType: "jetpack", Specs: schema.SpecRecord{}}
	subject := p.Subject()
	assert.Equal(t, "Mystery", subject.Name)
	assert.Empty(t, subject.Type)
}

func TestSpecHash(t *testing.T) {
	a := schema.SpecRecord{"motor": map[string]any{"power_nominal": 500.0}, "weight": 40.0}
	b := schema.SpecRecord{"weight": 40.0, "motor": map[string]any{"power_nominal": 500.0}}
	c := schema.SpecRecord{"weight": 41.0, "motor": map[string]any{"power_nominal": 500.0}}

	// Key order does not matter, content does.
	assert.Equal(t, SpecHash(a), SpecHash(b))
	assert.NotEqual(t, SpecHash(a), SpecHash(c))
	assert.Len(t, SpecHash(a), 64)
}

func TestSpecHashUnmarshalableRecords(t *testing.T) {
	// Hand-built records holding unmarshalable values still hash, and
	// distinct records stay distinct.
	a := schema.SpecRecord{"ch": make(chan int), "name": "a"}
	b := schema.SpecRecord{"ch": make(chan int), "name": "b"}
	assert.NotEqual(t, SpecHash(a), SpecHash(b))
}
