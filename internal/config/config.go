package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// Upstream configuration
	HaciendaBaseURL string        `json:"hacienda_base_url"`
	GometaBaseURL   string        `json:"gometa_base_url"`
	UpstreamTimeout time.Duration `json:"upstream_timeout"`

	// Status poller configuration
	StatusPollInterval time.Duration `json:"status_poll_interval"`
	StatusProbeID      string        `json:"status_probe_id"`

	// Redis configuration (optional upstream-response cache)
	RedisURI         string        `json:"redis_uri"`
	RedisPassword    string        `json:"redis_password"`
	RedisDB          int           `json:"redis_db"`
	AECacheTTL       time.Duration `json:"ae_cache_ttl"`
	ExchangeCacheTTL time.Duration `json:"exchange_cache_ttl"`

	// CABYS pager configuration
	CabysSessionTTL time.Duration `json:"cabys_session_ttl"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	upstreamTimeout, err := time.ParseDuration(getEnvOrDefault("UPSTREAM_TIMEOUT", "15s"))
	if err != nil {
		return fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	pollInterval, err := time.ParseDuration(getEnvOrDefault("STATUS_POLL_INTERVAL", "60s"))
	if err != nil {
		return fmt.Errorf("invalid STATUS_POLL_INTERVAL: %w", err)
	}

	aeCacheTTL, err := time.ParseDuration(getEnvOrDefault("AE_CACHE_TTL", "10m"))
	if err != nil {
		return fmt.Errorf("invalid AE_CACHE_TTL: %w", err)
	}

	exchangeCacheTTL, err := time.ParseDuration(getEnvOrDefault("EXCHANGE_CACHE_TTL", "5m"))
	if err != nil {
		return fmt.Errorf("invalid EXCHANGE_CACHE_TTL: %w", err)
	}

	sessionTTL, err := time.ParseDuration(getEnvOrDefault("CABYS_SESSION_TTL", "30m"))
	if err != nil {
		return fmt.Errorf("invalid CABYS_SESSION_TTL: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// Upstream configuration
		HaciendaBaseURL: getEnvOrDefault("HACIENDA_BASE_URL", "https://api.hacienda.go.cr"),
		GometaBaseURL:   getEnvOrDefault("GOMETA_BASE_URL", "https://apis.gometa.org"),
		UpstreamTimeout: upstreamTimeout,

		// Status poller configuration
		StatusPollInterval: pollInterval,
		StatusProbeID:      getEnvOrDefault("STATUS_PROBE_ID", "3101123456"),

		// Redis configuration
		RedisURI:         getEnvOrDefault("REDIS_URI", ""),
		RedisPassword:    getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:          redisDB,
		AECacheTTL:       aeCacheTTL,
		ExchangeCacheTTL: exchangeCacheTTL,

		// CABYS pager configuration
		CabysSessionTTL: sessionTTL,

		// Tracing configuration
		TracingEnabled:  getEnvOrDefault("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
