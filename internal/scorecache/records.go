package scorecache

import (
	"encoding/json"
	"time"

	"github.com/eridehero/ridescore/internal/contract"
	"github.com/eridehero/ridescore/schema"
)

// ScoreCacheVersion tags cached entries with the scoring algorithm revision.
// Bump this whenever a weight table, tier table or scale constant changes so
// stale scores are recomputed instead of served.
const ScoreCacheVersion = 3

// GetCachedRecord returns the cached score record for a spec hash, if one
// exists at the current algorithm version. Cache misses and decode failures
// both report a miss; a corrupt entry just means one extra recompute.
func GetCachedRecord(store contract.CacheStore, specHash string) (schema.ScoreRecord, bool) {
	if store == nil {
		return nil, false
	}
	value, version, _, err := store.Get(specHash)
	if err != nil || version != ScoreCacheVersion {
		return nil, false
	}
	var rec schema.ScoreRecord
	if err := json.Unmarshal(value, &rec); err != nil {
		return nil, false
	}
	return rec, true
}

// PutCachedRecord stores a computed score record under its spec hash.
func PutCachedRecord(store contract.CacheStore, specHash string, rec schema.ScoreRecord) error {
	if store == nil {
		return nil
	}
	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return store.Set(specHash, value, ScoreCacheVersion, time.Now().Unix())
}
