package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"mapa-astral-api/internal/interfaces"
	"mapa-astral-api/internal/metrics"
	"mapa-astral-api/internal/models"
)

// Ensure Resolver implements interfaces.Geocoder
var _ interfaces.Geocoder = (*Resolver)(nil)

// Searcher is the external lookup the resolver wraps.
type Searcher interface {
	Search(ctx context.Context, cidade, estado string) (*Location, error)
}

// Resolver answers city/state lookups from the geocode cache, falling back
// to the external GeoNames call on miss. Concurrent misses on one key are
// coalesced into a single external call; only successes are cached.
type Resolver struct {
	searcher   Searcher
	cache      interfaces.Cache
	keyBuilder interfaces.KeyBuilder
	ttl        time.Duration
	logger     *zap.Logger
	inflight   singleflight.Group
}

// NewResolver creates a resolver caching results for ttl.
func NewResolver(searcher Searcher, cache interfaces.Cache, keyBuilder interfaces.KeyBuilder, ttl time.Duration, logger *zap.Logger) *Resolver {
	return &Resolver{
		searcher:   searcher,
		cache:      cache,
		keyBuilder: keyBuilder,
		ttl:        ttl,
		logger:     logger,
	}
}

// Resolve returns the location for a city/state pair, or nil when it cannot
// be found. Lookup failures surface as errors and are never cached, so a
// later retry can succeed.
func (r *Resolver) Resolve(ctx context.Context, cidade, estado string) (*models.GeocodeResult, error) {
	key := r.keyBuilder.GeocodeKey(cidade, estado)

	if entry, found := r.cache.Get(key); found {
		var result models.GeocodeResult
		if err := json.Unmarshal(entry.Data, &result); err != nil {
			r.logger.Warn("Failed to unmarshal cached geocode result, refetching",
				zap.String("key", key), zap.Error(err))
			metrics.RecordCacheError("geocode", "decode")
			r.cache.Delete(key)
		} else {
			metrics.RecordCacheHit("geocode")
			return &result, nil
		}
	}
	metrics.RecordCacheMiss("geocode")

	value, err, _ := r.inflight.Do(key, func() (interface{}, error) {
		return r.lookup(ctx, key, cidade, estado)
	})
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	return value.(*models.GeocodeResult), nil
}

// lookup performs the external call and populates the cache on success.
func (r *Resolver) lookup(ctx context.Context, key, cidade, estado string) (*models.GeocodeResult, error) {
	metrics.GeocodeLookups.Inc()

	location, err := r.searcher.Search(ctx, cidade, estado)
	if err != nil {
		metrics.GeocodeFailures.Inc()
		r.logger.Warn("Geocode lookup failed",
			zap.String("cidade", cidade),
			zap.String("estado", estado),
			zap.Error(err))
		return nil, fmt.Errorf("geocode lookup for %s, %s failed: %w", cidade, estado, err)
	}
	if location == nil {
		return nil, nil
	}

	result := &models.GeocodeResult{
		Lat:              location.Lat,
		Lng:              location.Lng,
		TimezoneID:       TimezoneForState(estado),
		CidadeEncontrada: fmt.Sprintf("%s, %s", location.Name, strings.ToUpper(estado)),
	}

	data, err := json.Marshal(result)
	if err != nil {
		// Still usable for this request even if it cannot be cached
		r.logger.Error("Failed to marshal geocode result", zap.Error(err))
		metrics.RecordCacheError("geocode", "encode")
		return result, nil
	}
	r.cache.Set(key, data, r.ttl)

	return result, nil
}
