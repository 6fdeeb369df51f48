package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCacheEntry(t *testing.T) {
	entry := NewCacheEntry([]byte("payload"), time.Hour)

	assert.Equal(t, []byte("payload"), entry.Data)
	assert.Equal(t, entry.CreatedAt+3600, entry.ExpiresAt)
	assert.False(t, entry.IsExpired())
}

func TestCacheEntry_IsExpired(t *testing.T) {
	now := time.Now().Unix()

	past := CacheEntry{Data: []byte("x"), CreatedAt: now - 120, ExpiresAt: now - 60}
	assert.True(t, past.IsExpired())

	// The expiry boundary itself counts as expired
	boundary := CacheEntry{Data: []byte("x"), CreatedAt: now - 60, ExpiresAt: now}
	assert.True(t, boundary.IsExpired())

	future := CacheEntry{Data: []byte("x"), CreatedAt: now, ExpiresAt: now + 60}
	assert.False(t, future.IsExpired())
}

func TestNewCacheEntry_ZeroTTLIsImmediatelyExpired(t *testing.T) {
	entry := NewCacheEntry([]byte("x"), 0)
	assert.True(t, entry.IsExpired())
}
