package memory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"

	"mapa-astral-api/internal/interfaces"
	"mapa-astral-api/internal/metrics"
	"mapa-astral-api/internal/models"
)

// Ensure Cache implements interfaces.Cache
var _ interfaces.Cache = (*Cache)(nil)

// Cache is the in-memory result cache, backed by BigCache. Entries carry
// their own timestamps and are checked for expiry on every read; BigCache's
// life window and hard memory cap bound growth for keys never re-requested.
type Cache struct {
	name   string
	cache  *bigcache.BigCache
	logger *zap.Logger
}

// New creates a bounded in-memory cache. sizeMB caps total memory, ttl is
// used as the BigCache life window backstop.
func New(name string, sizeMB int, ttl time.Duration, logger *zap.Logger) (*Cache, error) {
	cfg := bigcache.DefaultConfig(ttl)
	cfg.HardMaxCacheSize = sizeMB
	cfg.MaxEntrySize = 1024 * 1024 // 1MB max entry size
	cfg.Verbose = false

	bc, err := bigcache.New(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	return &Cache{
		name:   name,
		cache:  bc,
		logger: logger,
	}, nil
}

// Get retrieves an entry, evicting and missing on expiry or corruption.
func (c *Cache) Get(key string) (*models.CacheEntry, bool) {
	data, err := c.cache.Get(key)
	if err != nil {
		return nil, false
	}

	var entry models.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.Warn("Failed to unmarshal cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(c.name, "decode")
		_ = c.cache.Delete(key) // Remove corrupted entry
		return nil, false
	}

	if entry.IsExpired() {
		_ = c.cache.Delete(key)
		return nil, false
	}

	return &entry, true
}

// Set stores a value with the given TTL, unconditionally overwriting any
// prior entry (last-write-wins).
func (c *Cache) Set(key string, val []byte, ttl time.Duration) {
	entry := models.NewCacheEntry(val, ttl)

	data, err := json.Marshal(entry)
	if err != nil {
		c.logger.Error("Failed to marshal cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(c.name, "encode")
		return
	}

	if err := c.cache.Set(key, data); err != nil {
		c.logger.Error("Failed to set cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(c.name, "store")
		return
	}

	metrics.UpdateCacheEntries(c.name, c.cache.Len())
}

// Delete removes an entry from the cache
func (c *Cache) Delete(key string) {
	_ = c.cache.Delete(key)
}

// Clear removes all entries
func (c *Cache) Clear() {
	if err := c.cache.Reset(); err != nil {
		c.logger.Error("Failed to reset cache", zap.String("cache", c.name), zap.Error(err))
		return
	}
	metrics.UpdateCacheEntries(c.name, 0)
}

// Len returns the current entry count
func (c *Cache) Len() int {
	return c.cache.Len()
}

// Close releases the backing store
func (c *Cache) Close() error {
	return c.cache.Close()
}
