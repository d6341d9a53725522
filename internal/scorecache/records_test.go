package scorecache

import (
	"encoding/json"
	"testing"

	"github.com/eridehero/ridescore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleRecord() schema.ScoreRecord {
	motor := 82
	overall := 75
	return schema.ScoreRecord{
		schema.CategoryMotor:   &motor,
		schema.CategoryBattery: nil,
		schema.CategoryOverall: &overall,
	}
}

func TestGetCachedRecordHit(t *testing.T) {
	rec := sampleRecord()
	value, err := json.Marshal(rec)
	require.NoError(t, err)

	store := &MockCacheStore{}
	store.On("Get", "hash123").Return(value, ScoreCacheVersion, int64(1700000000), nil)

	got, ok := GetCachedRecord(store, "hash123")
	require.True(t, ok)
	assert.Equal(t, rec, got)
	store.AssertExpectations(t)
}

func TestGetCachedRecordVersionMismatch(t *testing.T) {
	value, err := json.Marshal(sampleRecord())
	require.NoError(t, err)

	store := &MockCacheStore{}
	store.On("Get", "hash123").Return(value, ScoreCacheVersion-1, int64(1700000000), nil)

	_, ok := GetCachedRecord(store, "hash123")
	assert.False(t, ok)
}

func TestGetCachedRecordMiss(t *testing.T) {
	store := &MockCacheStore{}
	store.On("Get", "hash123").Return([]byte(nil), 0, int64(0), assert.AnError)

	_, ok := GetCachedRecord(store, "hash123")
	assert.False(t, ok)
}

func TestGetCachedRecordCorruptEntry(t *testing.T) {
	store := &MockCacheStore{}
	store.On("Get", "hash123").Return([]byte("{not json"), ScoreCacheVersion, int64(1700000000), nil)

	// A corrupt entry reports a miss, which just means one extra recompute.
	_, ok := GetCachedRecord(store, "hash123")
	assert.False(t, ok)
}

func TestGetCachedRecordNilStore(t *testing.T) {
	_, ok := GetCachedRecord(nil, "hash123")
	assert.False(t, ok)
}

func TestPutCachedRecord(t *testing.T) {
	rec := sampleRecord()
	store := &MockCacheStore{}
	store.On("Set", "hash123", mock.Anything, ScoreCacheVersion, mock.Anything).Return(nil)

	require.NoError(t, PutCachedRecord(store, "hash123", rec))
	store.AssertExpectations(t)

	// The stored payload must round-trip back to the record.
	value := store.Calls[0].Arguments.Get(1).([]byte)
	var decoded schema.ScoreRecord
	require.NoError(t, json.Unmarshal(value, &decoded))
	assert.Equal(t, rec, decoded)
}

func TestPutCachedRecordNilStore(t *testing.T) {
	assert.NoError(t, PutCachedRecord(nil, "hash123", sampleRecord()))
}

func TestPutCachedRecordStoreError(t *testing.T) {
	store := &MockCacheStore{}
	store.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	assert.Error(t, PutCachedRecord(store, "hash123", sampleRecord()))
}
