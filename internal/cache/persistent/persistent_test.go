package persistent

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"mapa-astral-api/internal/models"
)

// recordingStore captures flushes and serves canned loads for testing
type recordingStore struct {
	loaded   map[string]models.CacheEntry
	loadErr  error
	flushed  []map[string]models.CacheEntry
	flushErr error
}

func (s *recordingStore) Load() (map[string]models.CacheEntry, error) {
	return s.loaded, s.loadErr
}

func (s *recordingStore) Flush(entries map[string]models.CacheEntry) error {
	copied := make(map[string]models.CacheEntry, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	s.flushed = append(s.flushed, copied)
	return s.flushErr
}

func TestCache_Set_And_Get(t *testing.T) {
	cache := New("geocode", &recordingStore{}, zap.NewNop())

	cache.Set("key", []byte("value"), time.Hour)

	entry, found := cache.Get("key")
	assert.True(t, found)
	assert.Equal(t, []byte("value"), entry.Data)
}

func TestCache_Get_Expired_Evicts(t *testing.T) {
	cache := New("geocode", &recordingStore{}, zap.NewNop())

	now := time.Now().Unix()
	cache.entries["key"] = models.CacheEntry{
		Data:      []byte("old"),
		CreatedAt: now - 7200,
		ExpiresAt: now - 3600,
	}

	entry, found := cache.Get("key")

	assert.False(t, found)
	assert.Nil(t, entry)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_Set_FlushesFullContents(t *testing.T) {
	store := &recordingStore{}
	cache := New("geocode", store, zap.NewNop())

	cache.Set("a", []byte("1"), time.Hour)
	cache.Set("b", []byte("2"), time.Hour)

	assert.Len(t, store.flushed, 2)
	assert.Len(t, store.flushed[1], 2)
	assert.Equal(t, []byte("1"), store.flushed[1]["a"].Data)
	assert.Equal(t, []byte("2"), store.flushed[1]["b"].Data)
}

func TestCache_Set_PrunesExpiredAtFlush(t *testing.T) {
	store := &recordingStore{}
	cache := New("geocode", store, zap.NewNop())

	now := time.Now().Unix()
	cache.entries["stale"] = models.CacheEntry{
		Data:      []byte("old"),
		CreatedAt: now - 7200,
		ExpiresAt: now - 3600,
	}

	cache.Set("fresh", []byte("new"), time.Hour)

	assert.Len(t, store.flushed, 1)
	_, hasStale := store.flushed[0]["stale"]
	assert.False(t, hasStale)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_FlushFailure_IsAbsorbed(t *testing.T) {
	store := &recordingStore{flushErr: errors.New("disk full")}
	cache := New("geocode", store, zap.NewNop())

	cache.Set("key", []byte("value"), time.Hour)

	// Cache keeps serving from memory despite the persistence failure
	entry, found := cache.Get("key")
	assert.True(t, found)
	assert.Equal(t, []byte("value"), entry.Data)
}

func TestNew_LoadFailure_StartsEmpty(t *testing.T) {
	store := &recordingStore{loadErr: errors.New("corrupt")}

	cache := New("geocode", store, zap.NewNop())

	assert.Equal(t, 0, cache.Len())
}

func TestNew_LoadsPersistedEntries(t *testing.T) {
	now := time.Now().Unix()
	store := &recordingStore{loaded: map[string]models.CacheEntry{
		"key": {Data: []byte("value"), CreatedAt: now, ExpiresAt: now + 3600},
	}}

	cache := New("geocode", store, zap.NewNop())

	entry, found := cache.Get("key")
	assert.True(t, found)
	assert.Equal(t, []byte("value"), entry.Data)
}

func TestCache_Clear(t *testing.T) {
	store := &recordingStore{}
	cache := New("geocode", store, zap.NewNop())

	cache.Set("key", []byte("value"), time.Hour)
	cache.Clear()

	assert.Equal(t, 0, cache.Len())
	_, found := cache.Get("key")
	assert.False(t, found)

	// Clear flushes the now-empty contents
	assert.Len(t, store.flushed[len(store.flushed)-1], 0)
}
