package models

import "time"

// CacheEntry is the envelope stored by every cache implementation. Data is an
// opaque JSON payload; timestamps are unix seconds.
type CacheEntry struct {
	Data      []byte `json:"data"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at"`
}

// NewCacheEntry builds an entry created now, expiring after ttl.
func NewCacheEntry(data []byte, ttl time.Duration) CacheEntry {
	now := time.Now().Unix()
	return CacheEntry{
		Data:      data,
		CreatedAt: now,
		ExpiresAt: now + int64(ttl.Seconds()),
	}
}

// IsExpired reports whether the entry must be treated as absent. An entry
// exactly at its expiry boundary is expired.
func (e *CacheEntry) IsExpired() bool {
	return time.Now().Unix() >= e.ExpiresAt
}
