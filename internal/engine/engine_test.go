package engine

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/internal/scorecache"
	"github.com/eridehero/ridescore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// writeCatalog builds a small on-disk catalog with one strong scooter, one
// weak scooter and one product carrying no usable specs.
func writeCatalog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	catalog := `[
		{
			"name": "Apollo Phantom",
			"product_type": "scooter",
			"specs": {
				"manufacturer_top_speed": 50,
				"motor": {"power_nominal": 2400, "power_peak": 5000},
				"battery": {"capacity": 1500, "voltage": 60},
				"weight": 35,
				"brakes": {"front": "hydraulic disc", "rear": "hydraulic disc"}
			}
		},
		{
			"name": "Budget Lite",
			"product_type": "scooter",
			"specs": {
				"manufacturer_top_speed": 15,
				"motor": {"power_nominal": 250},
				"battery": {"capacity": 180, "voltage": 36},
				"weight": 55
			}
		},
		{
			"name": "Mystery Board",
			"product_type": "scooter",
			"specs": {"color": "black"}
		}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.json"), []byte(catalog), 0o644))
	return dir
}

func testConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		CatalogPath:  writeCatalog(t),
		Workers:      2,
		ResultLimit:  25,
		CacheBackend: schema.NoneBackend,
	}
}

func quietCtx() context.Context {
	return WithSuppressHeader(context.Background())
}

func managerWithoutStores() *scorecache.MockStoreManager {
	mgr := &scorecache.MockStoreManager{}
	mgr.On("GetScoreStore").Return(nil)
	mgr.On("GetHistoryStore").Return(nil)
	return mgr
}

func TestScoreProductFound(t *testing.T) {
	cfg := testConfig(t)
	mgr := managerWithoutStores()

	outcome, err := ScoreProduct(quietCtx(), cfg, mgr, "Apollo Phantom")
	require.NoError(t, err)

	assert.Equal(t, "Apollo Phantom", outcome.Name)
	assert.Equal(t, schema.EScooter, outcome.Type)
	assert.False(t, outcome.FromCache)
	assert.Len(t, outcome.SpecHash, 64)
	require.NotNil(t, outcome.Record.Overall())
}

func TestScoreProductSubstringMatch(t *testing.T) {
	cfg := testConfig(t)
	mgr := managerWithoutStores()

	outcome, err := ScoreProduct(quietCtx(), cfg, mgr, "phantom")
	require.NoError(t, err)
	assert.Equal(t, "Apollo Phantom", outcome.Name)
}

func TestScoreProductNotFound(t *testing.T) {
	cfg := testConfig(t)
	mgr := managerWithoutStores()

	_, err := ScoreProduct(quietCtx(), cfg, mgr, "Segway Ninebot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in catalog")
}

func TestScoreProductFromCache(t *testing.T) {
	cfg := testConfig(t)

	motor := 99
	overall := 99
	cached := schema.ScoreRecord{
		schema.CategoryMotor:   &motor,
		schema.CategoryOverall: &overall,
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	store := &scorecache.MockCacheStore{}
	store.On("Get", mock.Anything).Return(payload, scorecache.ScoreCacheVersion, int64(1700000000), nil)

	mgr := &scorecache.MockStoreManager{}
	mgr.On("GetScoreStore").Return(store)

	outcome, err := ScoreProduct(quietCtx(), cfg, mgr, "Apollo Phantom")
	require.NoError(t, err)

	assert.True(t, outcome.FromCache)
	assert.Equal(t, cached, outcome.Record)
	store.AssertExpectations(t)
}

func TestScoreProductCacheMissStoresResult(t *testing.T) {
	cfg := testConfig(t)

	store := &scorecache.MockCacheStore{}
	store.On("Get", mock.Anything).Return([]byte(nil), 0, int64(0), assert.AnError)
	store.On("Set", mock.Anything, mock.Anything, scorecache.ScoreCacheVersion, mock.Anything).Return(nil)

	mgr := &scorecache.MockStoreManager{}
	mgr.On("GetScoreStore").Return(store)

	outcome, err := ScoreProduct(quietCtx(), cfg, mgr, "Apollo Phantom")
	require.NoError(t, err)

	assert.False(t, outcome.FromCache)
	store.AssertExpectations(t)
}

func TestRankProductsOrdering(t *testing.T) {
	cfg := testConfig(t)
	mgr := managerWithoutStores()

	ranked, specHashes, err := RankProducts(quietCtx(), cfg, mgr)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	// Better specs rank first, products with no usable data sort last.
	assert.Equal(t, "Apollo Phantom", ranked[0].Name)
	assert.Equal(t, "Budget Lite", ranked[1].Name)
	assert.Equal(t, "Mystery Board", ranked[2].Name)
	assert.Nil(t, ranked[2].Record.Overall())

	// Every product gets a spec hash, scored or not.
	assert.Len(t, specHashes, 3)
	assert.Len(t, specHashes["Mystery Board"], 64)
}

func TestRankProductsMinScoreFilter(t *testing.T) {
	cfg := testConfig(t)
	cfg.MinScore = 1
	mgr := managerWithoutStores()

	ranked, specHashes, err := RankProducts(quietCtx(), cfg, mgr)
	require.NoError(t, err)

	// Unscored products fall below any positive threshold.
	for _, rp := range ranked {
		require.NotNil(t, rp.Record.Overall())
	}
	assert.Len(t, specHashes, 3)
}

func TestRankProductsLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.ResultLimit = 1
	mgr := managerWithoutStores()

	ranked, _, err := RankProducts(quietCtx(), cfg, mgr)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "Apollo Phantom", ranked[0].Name)
}

func TestRankProductsHistoryTracking(t *testing.T) {
	cfg := testConfig(t)

	history := &scorecache.MockHistoryStore{}
	history.On("BeginRun", mock.Anything, mock.Anything).Return(int64(7), nil)
	history.On("RecordProductScores", int64(7), mock.Anything).Return(nil).Times(3)
	history.On("EndRun", int64(7), mock.Anything, 3).Return(nil)

	mgr := &scorecache.MockStoreManager{}
	mgr.On("GetScoreStore").Return(nil)
	mgr.On("GetHistoryStore").Return(history)

	_, _, err := RankProducts(quietCtx(), cfg, mgr)
	require.NoError(t, err)
	history.AssertExpectations(t)
}

func TestRankProductsHistoryFailureDegrades(t *testing.T) {
	cfg := testConfig(t)

	// A failed BeginRun disables tracking but never fails the scoring run.
	history := &scorecache.MockHistoryStore{}
	history.On("BeginRun", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

	mgr := &scorecache.MockStoreManager{}
	mgr.On("GetScoreStore").Return(nil)
	mgr.On("GetHistoryStore").Return(history)

	ranked, _, err := RankProducts(quietCtx(), cfg, mgr)
	require.NoError(t, err)
	assert.Len(t, ranked, 3)
	history.AssertNotCalled(t, "RecordProductScores", mock.Anything, mock.Anything)
	history.AssertNotCalled(t, "EndRun", mock.Anything, mock.Anything, mock.Anything)
}

func TestRankProductsEmptyTypeFilter(t *testing.T) {
	cfg := testConfig(t)
	cfg.ProductType = schema.EUnicycle
	mgr := managerWithoutStores()

	_, _, err := RankProducts(quietCtx(), cfg, mgr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no products of type")
}

func TestCompareProducts(t *testing.T) {
	cfg := testConfig(t)
	cfg.CompareProducts = []string{"Apollo Phantom", "Budget Lite"}

	result, err := CompareProducts(quietCtx(), cfg)
	require.NoError(t, err)

	assert.Equal(t, "Apollo Phantom", result.Left)
	assert.Equal(t, "Budget Lite", result.Right)
	assert.Equal(t, "Apollo Phantom", result.Summary.OverallWinner)
}

func TestCompareProductsUnknownName(t *testing.T) {
	cfg := testConfig(t)
	cfg.CompareProducts = []string{"Apollo Phantom", "Segway Ninebot"}

	_, err := CompareProducts(quietCtx(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in catalog")
}

func TestCompareProductsWrongCount(t *testing.T) {
	cfg := testConfig(t)
	cfg.CompareProducts = []string{"Apollo Phantom", "Budget Lite", "Mystery Board"}

	_, err := CompareProducts(quietCtx(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 2 products")
}

func TestCompareManyProducts(t *testing.T) {
	cfg := testConfig(t)
	cfg.CompareProducts = []string{"Apollo Phantom", "Budget Lite", "Mystery Board"}

	result, err := CompareManyProducts(quietCtx(), cfg)
	require.NoError(t, err)
	require.Len(t, result.Products, 3)
	assert.Equal(t, "Apollo Phantom", result.Winners[schema.CategoryOverall])
}

func TestSuppressHeaderContext(t *testing.T) {
	assert.False(t, shouldSuppressHeader(context.Background()))
	assert.True(t, shouldSuppressHeader(WithSuppressHeader(context.Background())))
}
