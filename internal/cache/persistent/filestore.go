package persistent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mapa-astral-api/internal/interfaces"
	"mapa-astral-api/internal/models"
)

// Ensure FileStore implements interfaces.GeocodeStore
var _ interfaces.GeocodeStore = (*FileStore)(nil)

// storeVersion tags the on-disk document so future field changes can be
// detected instead of silently misread.
const storeVersion = 1

// storeDocument is the on-disk format: a flat key -> entry map plus a
// version tag, rewritten in full on every flush.
type storeDocument struct {
	Version int                          `json:"version"`
	Entries map[string]models.CacheEntry `json:"entries"`
}

// FileStore persists cache contents to a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted entries. A missing file returns an empty map; a
// corrupt or version-mismatched file returns an error so the cache can
// start empty.
func (s *FileStore) Load() (map[string]models.CacheEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]models.CacheEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var doc storeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode cache file: %w", err)
	}
	if doc.Version != storeVersion {
		return nil, fmt.Errorf("unsupported cache file version %d", doc.Version)
	}
	if doc.Entries == nil {
		return map[string]models.CacheEntry{}, nil
	}

	return doc.Entries, nil
}

// Flush rewrites the file with the full cache contents. The write goes
// through a temp file and rename so a crash cannot leave a torn document.
func (s *FileStore) Flush(entries map[string]models.CacheEntry) error {
	data, err := json.Marshal(storeDocument{Version: storeVersion, Entries: entries})
	if err != nil {
		return fmt.Errorf("failed to encode cache file: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".geocode_cache_*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp cache file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace cache file: %w", err)
	}

	return nil
}
