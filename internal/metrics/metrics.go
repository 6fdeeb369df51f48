package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request outcomes for the mapa-astral endpoint
	MapaAstralRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mapa_astral_requests_total",
			Help: "Total number of mapa astral requests by outcome",
		},
		[]string{"status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mapa_astral_request_duration_seconds",
			Help:    "Duration of mapa astral request handling",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"cache"}, // hit or miss
	)

	// Cache counters, labeled by cache name (result, geocode)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_errors_total",
			Help: "Total number of cache errors",
		},
		[]string{"cache", "type"}, // type: encode, decode, persist, load
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of entries per cache",
		},
		[]string{"cache"},
	)

	// Rate limiting
	RateLimitDenials = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limit_denials_total",
			Help: "Total number of requests denied by the rate limiter",
		},
	)

	RateLimitClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limit_active_clients",
			Help: "Number of client identities tracked by the rate limiter",
		},
	)

	// External geocoding calls
	GeocodeLookups = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geocode_lookups_total",
			Help: "Total number of external geocoding lookups",
		},
	)

	GeocodeFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geocode_failures_total",
			Help: "Total number of failed external geocoding lookups",
		},
	)
)

// RecordCacheHit records a hit for the named cache
func RecordCacheHit(cache string) {
	CacheHits.WithLabelValues(cache).Inc()
}

// RecordCacheMiss records a miss for the named cache
func RecordCacheMiss(cache string) {
	CacheMisses.WithLabelValues(cache).Inc()
}

// RecordCacheError records a cache error by category
func RecordCacheError(cache, errorType string) {
	CacheErrors.WithLabelValues(cache, errorType).Inc()
}

// UpdateCacheEntries updates the entry-count gauge for the named cache
func UpdateCacheEntries(cache string, count int) {
	CacheEntries.WithLabelValues(cache).Set(float64(count))
}

// RecordRequest records a request outcome (ok, throttled, not_found,
// invalid_input, computation_error)
func RecordRequest(status string) {
	MapaAstralRequests.WithLabelValues(status).Inc()
}
