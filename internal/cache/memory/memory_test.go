package memory

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"mapa-astral-api/internal/models"
)

func TestNew(t *testing.T) {
	cache, err := New("result", 10, time.Hour, zap.NewNop())

	assert.NoError(t, err)
	assert.NotNil(t, cache)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_Set_And_Get(t *testing.T) {
	cache, err := New("result", 10, time.Hour, zap.NewNop())
	assert.NoError(t, err)

	testData := []byte(`{"nome":"João"}`)
	cache.Set("test-key", testData, time.Hour)

	entry, found := cache.Get("test-key")

	assert.True(t, found)
	assert.NotNil(t, entry)
	assert.Equal(t, testData, entry.Data)
	assert.False(t, entry.IsExpired())
}

func TestCache_Get_NotFound(t *testing.T) {
	cache, err := New("result", 10, time.Hour, zap.NewNop())
	assert.NoError(t, err)

	entry, found := cache.Get("missing-key")

	assert.False(t, found)
	assert.Nil(t, entry)
}

func TestCache_Get_Expired(t *testing.T) {
	cache, err := New("result", 10, time.Hour, zap.NewNop())
	assert.NoError(t, err)

	// Manually store an entry whose timestamps are in the past
	now := time.Now().Unix()
	entry := models.CacheEntry{
		Data:      []byte("stale"),
		CreatedAt: now - 200,
		ExpiresAt: now - 100,
	}
	entryJSON, _ := json.Marshal(entry)
	assert.NoError(t, cache.cache.Set("test-key", entryJSON))

	result, found := cache.Get("test-key")

	assert.False(t, found)
	assert.Nil(t, result)

	// Expired entry must have been evicted, not just hidden
	_, err = cache.cache.Get("test-key")
	assert.Error(t, err)
}

func TestCache_Get_Corrupted(t *testing.T) {
	cache, err := New("result", 10, time.Hour, zap.NewNop())
	assert.NoError(t, err)

	assert.NoError(t, cache.cache.Set("test-key", []byte("not-json")))

	result, found := cache.Get("test-key")

	assert.False(t, found)
	assert.Nil(t, result)
}

func TestCache_Set_Overwrites(t *testing.T) {
	cache, err := New("result", 10, time.Hour, zap.NewNop())
	assert.NoError(t, err)

	cache.Set("test-key", []byte("first"), time.Hour)
	cache.Set("test-key", []byte("second"), time.Hour)

	entry, found := cache.Get("test-key")

	assert.True(t, found)
	assert.Equal(t, []byte("second"), entry.Data)
}

func TestCache_Clear(t *testing.T) {
	cache, err := New("result", 10, time.Hour, zap.NewNop())
	assert.NoError(t, err)

	cache.Set("a", []byte("1"), time.Hour)
	cache.Set("b", []byte("2"), time.Hour)
	assert.Equal(t, 2, cache.Len())

	cache.Clear()

	assert.Equal(t, 0, cache.Len())
	_, found := cache.Get("a")
	assert.False(t, found)
}

func TestCache_Delete(t *testing.T) {
	cache, err := New("result", 10, time.Hour, zap.NewNop())
	assert.NoError(t, err)

	cache.Set("test-key", []byte("value"), time.Hour)
	cache.Delete("test-key")

	_, found := cache.Get("test-key")
	assert.False(t, found)
}
