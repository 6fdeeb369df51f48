package persistent

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"mapa-astral-api/internal/interfaces"
	"mapa-astral-api/internal/metrics"
	"mapa-astral-api/internal/models"
)

// Ensure Cache implements interfaces.Cache
var _ interfaces.Cache = (*Cache)(nil)

// Cache is the geocode cache: a mutex-guarded map with expiry-on-read,
// flushed in full to a durable store after every put and reloaded at
// startup. Store failures are absorbed; the cache degrades to
// in-memory-only behavior rather than failing requests.
type Cache struct {
	name   string
	store  interfaces.GeocodeStore
	logger *zap.Logger

	mu      sync.Mutex
	entries map[string]models.CacheEntry
}

// New creates a cache seeded from the durable store. A missing, corrupt or
// unreadable store starts the cache empty.
func New(name string, store interfaces.GeocodeStore, logger *zap.Logger) *Cache {
	c := &Cache{
		name:    name,
		store:   store,
		logger:  logger,
		entries: make(map[string]models.CacheEntry),
	}

	if store != nil {
		entries, err := store.Load()
		if err != nil {
			logger.Warn("Failed to load persisted cache, starting empty",
				zap.String("cache", name), zap.Error(err))
			metrics.RecordCacheError(name, "load")
		} else if entries != nil {
			c.entries = entries
			logger.Info("Loaded persisted cache",
				zap.String("cache", name), zap.Int("entries", len(entries)))
		}
	}

	return c
}

// Get retrieves an entry, evicting it on expiry.
func (c *Cache) Get(key string) (*models.CacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, found := c.entries[key]
	if !found {
		return nil, false
	}
	if entry.IsExpired() {
		delete(c.entries, key)
		return nil, false
	}

	return &entry, true
}

// Set stores a value (last-write-wins) and flushes the full cache contents
// to the durable store.
func (c *Cache) Set(key string, val []byte, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = models.NewCacheEntry(val, ttl)
	snapshot := c.snapshotLocked()
	count := len(c.entries)
	c.mu.Unlock()

	metrics.UpdateCacheEntries(c.name, count)
	c.flush(snapshot)
}

// Delete removes an entry from the cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear removes all entries and flushes the now-empty cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]models.CacheEntry)
	c.mu.Unlock()

	metrics.UpdateCacheEntries(c.name, 0)
	c.flush(map[string]models.CacheEntry{})
}

// Len returns the current entry count
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// snapshotLocked copies the unexpired entries. Pruning expired entries here
// keeps the durable store from growing without bound. Caller holds the lock.
func (c *Cache) snapshotLocked() map[string]models.CacheEntry {
	snapshot := make(map[string]models.CacheEntry, len(c.entries))
	for key, entry := range c.entries {
		if entry.IsExpired() {
			delete(c.entries, key)
			continue
		}
		snapshot[key] = entry
	}
	return snapshot
}

// flush writes the snapshot to the durable store. Failures are logged and
// absorbed.
func (c *Cache) flush(snapshot map[string]models.CacheEntry) {
	if c.store == nil {
		return
	}
	if err := c.store.Flush(snapshot); err != nil {
		c.logger.Warn("Failed to persist cache, continuing in-memory",
			zap.String("cache", c.name), zap.Error(err))
		metrics.RecordCacheError(c.name, "persist")
	}
}
