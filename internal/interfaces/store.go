package interfaces

import "mapa-astral-api/internal/models"

//go:generate mockgen -package=mock -source=store.go -destination=mock/store.go

// GeocodeStore persists the full contents of the geocode cache. Load and
// Flush errors are absorbed by the cache, never surfaced to requests.
type GeocodeStore interface {
	Load() (map[string]models.CacheEntry, error)
	Flush(entries map[string]models.CacheEntry) error
}
