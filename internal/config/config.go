package config

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Default settings, matching the public deployment.
const (
	DefaultListenAddr = ":8000"

	DefaultResultCacheTTLSeconds = 3600
	DefaultResultCacheSizeMB     = 64

	DefaultGeocodeCacheTTLSeconds = 86400
	DefaultGeocodeCacheFile       = "geonames_cache.json"

	DefaultRateLimitMaxRequests   = 10
	DefaultRateLimitWindowSeconds = 60

	DefaultGeoNamesBaseURL        = "http://api.geonames.org/searchJSON"
	DefaultGeoNamesTimeoutSeconds = 10

	DefaultEngineURL            = "http://localhost:8100"
	DefaultEngineTimeoutSeconds = 30

	DefaultChartURL            = "http://localhost:8200"
	DefaultChartTimeoutSeconds = 30
)

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// ResultCacheConfig holds the in-memory result cache settings
type ResultCacheConfig struct {
	Enabled    *bool `yaml:"enabled"`
	TTLSeconds int   `yaml:"ttl_seconds"`
	MaxSizeMB  int   `yaml:"max_size_mb"`
}

// TTL returns the result cache TTL as a duration
func (c ResultCacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// GeocodeCacheConfig holds the persisted geocode cache settings
type GeocodeCacheConfig struct {
	Enabled      *bool  `yaml:"enabled"`
	TTLSeconds   int    `yaml:"ttl_seconds"`
	FilePath     string `yaml:"file_path"`
	KeyDBEnabled bool   `yaml:"keydb_enabled"`
	KeyDBURL     string `yaml:"keydb_url"`
}

// TTL returns the geocode cache TTL as a duration
func (c GeocodeCacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// RateLimitConfig holds the per-client rate limiter settings
type RateLimitConfig struct {
	MaxRequests   int `yaml:"max_requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

// Window returns the rate-limit window as a duration
func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

// GeoNamesConfig holds the geocoding service settings. The username is
// deliberately absent from YAML and comes from GEONAMES_USERNAME.
type GeoNamesConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`

	Username string `yaml:"-"`
}

// Timeout returns the GeoNames request timeout as a duration
func (c GeoNamesConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ServiceConfig holds the URL and timeout of an external HTTP service
type ServiceConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the service request timeout as a duration
func (c ServiceConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Config represents the main configuration structure
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	ResultCache  ResultCacheConfig  `yaml:"result_cache"`
	GeocodeCache GeocodeCacheConfig `yaml:"geocode_cache"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
	GeoNames     GeoNamesConfig     `yaml:"geonames"`
	Engine       ServiceConfig      `yaml:"engine"`
	Chart        ServiceConfig      `yaml:"chart"`
}

// Load reads configuration from the path in MAPA_ASTRAL_CONFIG_FILE. When
// the variable is unset or the file is missing, the defaults apply.
func Load(logger *zap.Logger) (*Config, error) {
	path := os.Getenv("MAPA_ASTRAL_CONFIG_FILE")
	if path == "" {
		logger.Info("No config file set, using defaults")
		config := &Config{}
		config.applyDefaults()
		return config, nil
	}
	return LoadFile(path, logger)
}

// LoadFile loads configuration from an explicit file path
func LoadFile(configPath string, logger *zap.Logger) (*Config, error) {
	logger.Info("Loading configuration", zap.String("path", configPath))

	file, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Config file missing, using defaults", zap.String("path", configPath))
			config := &Config{}
			config.applyDefaults()
			return config, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var config Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = DefaultListenAddr
	}

	if c.ResultCache.Enabled == nil {
		enabled := true
		c.ResultCache.Enabled = &enabled
	}
	if c.ResultCache.TTLSeconds <= 0 {
		c.ResultCache.TTLSeconds = DefaultResultCacheTTLSeconds
	}
	if c.ResultCache.MaxSizeMB <= 0 {
		c.ResultCache.MaxSizeMB = DefaultResultCacheSizeMB
	}

	if c.GeocodeCache.Enabled == nil {
		enabled := true
		c.GeocodeCache.Enabled = &enabled
	}
	if c.GeocodeCache.TTLSeconds <= 0 {
		c.GeocodeCache.TTLSeconds = DefaultGeocodeCacheTTLSeconds
	}
	if c.GeocodeCache.FilePath == "" {
		c.GeocodeCache.FilePath = DefaultGeocodeCacheFile
	}

	if c.RateLimit.MaxRequests <= 0 {
		c.RateLimit.MaxRequests = DefaultRateLimitMaxRequests
	}
	if c.RateLimit.WindowSeconds <= 0 {
		c.RateLimit.WindowSeconds = DefaultRateLimitWindowSeconds
	}

	if c.GeoNames.BaseURL == "" {
		c.GeoNames.BaseURL = DefaultGeoNamesBaseURL
	}
	if c.GeoNames.TimeoutSeconds <= 0 {
		c.GeoNames.TimeoutSeconds = DefaultGeoNamesTimeoutSeconds
	}
	c.GeoNames.Username = os.Getenv("GEONAMES_USERNAME")

	if c.Engine.URL == "" {
		c.Engine.URL = DefaultEngineURL
	}
	if c.Engine.TimeoutSeconds <= 0 {
		c.Engine.TimeoutSeconds = DefaultEngineTimeoutSeconds
	}

	if c.Chart.URL == "" {
		c.Chart.URL = DefaultChartURL
	}
	if c.Chart.TimeoutSeconds <= 0 {
		c.Chart.TimeoutSeconds = DefaultChartTimeoutSeconds
	}
}
