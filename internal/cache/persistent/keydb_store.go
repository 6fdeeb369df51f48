package persistent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"mapa-astral-api/internal/interfaces"
	"mapa-astral-api/internal/models"
)

// Ensure KeyDBStore implements interfaces.GeocodeStore
var _ interfaces.GeocodeStore = (*KeyDBStore)(nil)

// keydbDocumentKey holds the full cache document, mirroring the file
// store's single-document format.
const keydbDocumentKey = "mapa-astral:geocode-cache"

// KeyDBStore persists cache contents to KeyDB instead of a local file.
// Useful when the service runs somewhere without a writable disk.
type KeyDBStore struct {
	client  interfaces.KeyDbClient
	timeout time.Duration
}

// NewKeyDBStore creates a store using an established KeyDB client.
func NewKeyDBStore(client interfaces.KeyDbClient, timeout time.Duration) *KeyDBStore {
	return &KeyDBStore{client: client, timeout: timeout}
}

// Load reads the persisted document. A missing key returns an empty map.
func (s *KeyDBStore) Load() (map[string]models.CacheEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	data, err := s.client.Get(ctx, keydbDocumentKey).Result()
	if err != nil {
		if err == redis.Nil {
			return map[string]models.CacheEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read cache document: %w", err)
	}

	var doc storeDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode cache document: %w", err)
	}
	if doc.Version != storeVersion {
		return nil, fmt.Errorf("unsupported cache document version %d", doc.Version)
	}
	if doc.Entries == nil {
		return map[string]models.CacheEntry{}, nil
	}

	return doc.Entries, nil
}

// Flush rewrites the document with the full cache contents.
func (s *KeyDBStore) Flush(entries map[string]models.CacheEntry) error {
	data, err := json.Marshal(storeDocument{Version: storeVersion, Entries: entries})
	if err != nil {
		return fmt.Errorf("failed to encode cache document: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Set(ctx, keydbDocumentKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cache document: %w", err)
	}

	return nil
}
