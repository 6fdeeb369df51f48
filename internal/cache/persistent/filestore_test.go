package persistent

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapa-astral-api/internal/models"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geocode_cache.json")
	store := NewFileStore(path)

	now := time.Now().Unix()
	entries := map[string]models.CacheEntry{
		"abc": {Data: []byte(`{"lat":-23.55}`), CreatedAt: now, ExpiresAt: now + 86400},
		"def": {Data: []byte(`{"lat":-22.90}`), CreatedAt: now, ExpiresAt: now + 86400},
	}

	require.NoError(t, store.Flush(entries))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestFileStore_Load_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "does_not_exist.json"))

	loaded, err := store.Load()

	assert.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileStore_Load_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geocode_cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewFileStore(path)
	_, err := store.Load()

	assert.Error(t, err)
}

func TestFileStore_Load_VersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geocode_cache.json")
	doc, _ := json.Marshal(map[string]interface{}{"version": 99, "entries": map[string]interface{}{}})
	require.NoError(t, os.WriteFile(path, doc, 0644))

	store := NewFileStore(path)
	_, err := store.Load()

	assert.Error(t, err)
}

func TestFileStore_Flush_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geocode_cache.json")
	store := NewFileStore(path)

	now := time.Now().Unix()
	require.NoError(t, store.Flush(map[string]models.CacheEntry{
		"old": {Data: []byte("1"), CreatedAt: now, ExpiresAt: now + 60},
	}))
	require.NoError(t, store.Flush(map[string]models.CacheEntry{
		"new": {Data: []byte("2"), CreatedAt: now, ExpiresAt: now + 60},
	}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
	_, hasOld := loaded["old"]
	assert.False(t, hasOld)
}
