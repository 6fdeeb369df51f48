package interfaces

import (
	"time"

	"mapa-astral-api/internal/models"
)

//go:generate mockgen -package=mock -source=cache.go -destination=mock/cache.go

// Cache is the contract shared by the result cache and the geocode cache.
// Get must treat expired entries as absent and evict them.
type Cache interface {
	Get(key string) (*models.CacheEntry, bool) // returns entry and found flag
	Set(key string, val []byte, ttl time.Duration)
	Delete(key string)
	Clear()
	Len() int // current entry count, for the performance endpoint
}
