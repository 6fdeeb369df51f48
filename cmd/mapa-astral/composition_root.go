package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"mapa-astral-api/internal/astro"
	"mapa-astral-api/internal/cache"
	"mapa-astral-api/internal/cache/memory"
	"mapa-astral-api/internal/cache/noop"
	"mapa-astral-api/internal/cache/persistent"
	"mapa-astral-api/internal/chart"
	"mapa-astral-api/internal/config"
	"mapa-astral-api/internal/geocode"
	"mapa-astral-api/internal/httpserver"
	"mapa-astral-api/internal/interfaces"
	"mapa-astral-api/internal/ratelimit"
	"mapa-astral-api/internal/service"
)

const keydbTimeout = 5 * time.Second

// CompositionRoot holds all application dependencies and provides a centralized
// place for dependency injection and service initialization.
type CompositionRoot struct {
	Config *config.Config
	Logger *zap.Logger

	// Cache components
	ResultCache  interfaces.Cache
	GeocodeCache interfaces.Cache
	KeyBuilder   interfaces.KeyBuilder
	keydbClient  interfaces.KeyDbClient

	// Collaborators
	Limiter  interfaces.RateLimiter
	Geocoder interfaces.Geocoder
	Engine   interfaces.AstrologyEngine
	Renderer interfaces.ChartRenderer

	// Services
	Service    *service.MapaAstral
	HTTPServer *httpserver.Server
}

// NewCompositionRoot creates and initializes all application dependencies.
//
// Initialization order:
// 1. Logger (needed by all other components)
// 2. Configuration
// 3. Cache components (result cache, geocode cache, key builder)
// 4. Collaborators (rate limiter, geocoder, engine, renderer)
// 5. Service
// 6. HTTP server
func NewCompositionRoot() (*CompositionRoot, error) {
	root := &CompositionRoot{}

	if err := root.initLogger(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := root.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := root.initCacheComponents(); err != nil {
		return nil, fmt.Errorf("failed to initialize cache components: %w", err)
	}

	root.initCollaborators()
	root.initServices()

	return root, nil
}

// initLogger initializes the application logger
func (r *CompositionRoot) initLogger() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	r.Logger = logger
	return nil
}

// loadConfig loads the application configuration
func (r *CompositionRoot) loadConfig() error {
	cfg, err := config.Load(r.Logger)
	if err != nil {
		return err
	}
	r.Config = cfg
	return nil
}

// initCacheComponents initializes all cache-related components
func (r *CompositionRoot) initCacheComponents() error {
	if err := r.initResultCache(); err != nil {
		return fmt.Errorf("failed to initialize result cache: %w", err)
	}

	r.initGeocodeCache()
	r.KeyBuilder = cache.NewKeyBuilder()

	return nil
}

// initResultCache initializes the in-memory result cache (BigCache)
func (r *CompositionRoot) initResultCache() error {
	if !*r.Config.ResultCache.Enabled {
		r.ResultCache = noop.NewNoOpCache()
		r.Logger.Info("Result cache disabled")
		return nil
	}

	resultCache, err := memory.New("result", r.Config.ResultCache.MaxSizeMB, r.Config.ResultCache.TTL(), r.Logger)
	if err != nil {
		return err
	}
	r.ResultCache = resultCache
	r.Logger.Info("Result cache initialized",
		zap.Int("size_mb", r.Config.ResultCache.MaxSizeMB),
		zap.Duration("ttl", r.Config.ResultCache.TTL()))
	return nil
}

// initGeocodeCache initializes the persisted geocode cache. KeyDB is
// preferred when configured; an unreachable KeyDB falls back to the file
// store so the service still starts.
func (r *CompositionRoot) initGeocodeCache() {
	if !*r.Config.GeocodeCache.Enabled {
		r.GeocodeCache = noop.NewNoOpCache()
		r.Logger.Info("Geocode cache disabled")
		return
	}

	r.GeocodeCache = persistent.New("geocode", r.geocodeStore(), r.Logger)
	r.Logger.Info("Geocode cache initialized", zap.Duration("ttl", r.Config.GeocodeCache.TTL()))
}

// geocodeStore selects the durable store backing the geocode cache
func (r *CompositionRoot) geocodeStore() interfaces.GeocodeStore {
	if r.Config.GeocodeCache.KeyDBEnabled {
		client, err := persistent.NewRedisKeyDbClient(r.Config.GeocodeCache.KeyDBURL, keydbTimeout, r.Logger)
		if err != nil {
			r.Logger.Warn("Failed to connect to KeyDB, falling back to file store",
				zap.String("keydb_url", r.Config.GeocodeCache.KeyDBURL),
				zap.Error(err))
		} else {
			r.keydbClient = client
			r.Logger.Info("KeyDB geocode store initialized",
				zap.String("keydb_url", r.Config.GeocodeCache.KeyDBURL))
			return persistent.NewKeyDBStore(client, keydbTimeout)
		}
	}

	r.Logger.Info("File geocode store initialized",
		zap.String("path", r.Config.GeocodeCache.FilePath))
	return persistent.NewFileStore(r.Config.GeocodeCache.FilePath)
}

// initCollaborators initializes the rate limiter and the external-service clients
func (r *CompositionRoot) initCollaborators() {
	r.Limiter = ratelimit.NewSlidingWindow(
		r.Config.RateLimit.MaxRequests,
		r.Config.RateLimit.Window(),
		r.Logger,
	)

	geonamesClient := geocode.NewClient(
		r.Config.GeoNames.BaseURL,
		r.Config.GeoNames.Username,
		r.Config.GeoNames.Timeout(),
		r.Logger,
	)
	r.Geocoder = geocode.NewResolver(
		geonamesClient,
		r.GeocodeCache,
		r.KeyBuilder,
		r.Config.GeocodeCache.TTL(),
		r.Logger,
	)

	r.Engine = astro.NewEngine(r.Config.Engine.URL, r.Config.Engine.Timeout(), r.Logger)
	r.Renderer = chart.NewRenderer(r.Config.Chart.URL, r.Config.Chart.Timeout(), r.Logger)
}

// initServices wires the service layer and the HTTP server
func (r *CompositionRoot) initServices() {
	r.Service = service.NewMapaAstral(
		r.Limiter,
		r.ResultCache,
		r.KeyBuilder,
		r.Geocoder,
		r.Engine,
		r.Renderer,
		r.Config.ResultCache.TTL(),
		r.Logger,
	)

	r.HTTPServer = httpserver.NewServer(
		r.Service,
		r.ResultCache,
		r.GeocodeCache,
		r.Limiter,
		httpserver.Limits{
			ResultTTL:   r.Config.ResultCache.TTL(),
			MaxRequests: r.Config.RateLimit.MaxRequests,
			Window:      r.Config.RateLimit.Window(),
		},
		r.Logger,
	)
}

// Cleanup performs cleanup of all resources
func (r *CompositionRoot) Cleanup() error {
	var errors []error

	// Sync logger
	if r.Logger != nil {
		if err := r.Logger.Sync(); err != nil {
			errors = append(errors, fmt.Errorf("failed to sync logger: %w", err))
		}
	}

	// Close result cache
	if memCache, ok := r.ResultCache.(*memory.Cache); ok {
		if err := memCache.Close(); err != nil {
			errors = append(errors, fmt.Errorf("failed to close result cache: %w", err))
		}
	}

	// Close KeyDB connection
	if r.keydbClient != nil {
		if err := r.keydbClient.Close(); err != nil {
			errors = append(errors, fmt.Errorf("failed to close KeyDB client: %w", err))
		}
	}

	// Return first error if any
	if len(errors) > 0 {
		return errors[0]
	}

	return nil
}
