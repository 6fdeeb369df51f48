package httpserver

// errorResponse is the JSON envelope for every failure status
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// healthResponse is the health check payload
type healthResponse struct {
	Status      string `json:"status"`
	Versao      string `json:"versao"`
	Pais        string `json:"pais"`
	FormatoData string `json:"formato_data"`
}

// cacheStats reports current cache sizes for the performance endpoint
type cacheStats struct {
	AstrologicalCacheEntries int   `json:"astrological_cache_entries"`
	GeonamesCacheEntries     int   `json:"geonames_cache_entries"`
	CacheTTLSeconds          int64 `json:"cache_ttl_seconds"`
}

// rateLimitStats reports rate limiter state for the performance endpoint
type rateLimitStats struct {
	ActiveClients     int   `json:"active_clients"`
	RequestsPerWindow int   `json:"requests_per_window"`
	WindowSeconds     int64 `json:"window_seconds"`
}

// performanceFeatures lists the optimizations currently active
type performanceFeatures struct {
	CachingEnabled      bool `json:"caching_enabled"`
	RateLimitingEnabled bool `json:"rate_limiting_enabled"`
	GeocodePersistence  bool `json:"geocode_persistence"`
}

// performanceResponse is the full performance-stats payload
type performanceResponse struct {
	CacheStats          cacheStats          `json:"cache_stats"`
	RateLimiting        rateLimitStats      `json:"rate_limiting"`
	PerformanceFeatures performanceFeatures `json:"performance_features"`
	Timestamp           int64               `json:"timestamp"`
}

// clearCacheResponse confirms an administrative cache reset
type clearCacheResponse struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}
