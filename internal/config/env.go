package config

import (
	"os"
	"strconv"
	"time"
)

const (
	EnvBaseURL     = "SPORTSDB_BASE_URL"
	EnvAPIKey      = "SPORTSDB_API_KEY"
	EnvTimeout     = "SPORTSDB_TIMEOUT"
	EnvLogLevel    = "SPORTS_EXPLORER_LOG_LEVEL"
	EnvLogFormat   = "SPORTS_EXPLORER_LOG_FORMAT"
	EnvMetricsAddr = "SPORTS_EXPLORER_METRICS_ADDR"
	EnvImageSize   = "SPORTS_EXPLORER_IMAGE_SIZE"
)

func applyEnv(cfg *Config) {
	cfg.API.BaseURL = envOrDefault(EnvBaseURL, cfg.API.BaseURL)
	cfg.API.APIKey = envOrDefault(EnvAPIKey, cfg.API.APIKey)
	cfg.API.Timeout = durationEnvOrDefault(EnvTimeout, cfg.API.Timeout)
	cfg.Logging.Level = envOrDefault(EnvLogLevel, cfg.Logging.Level)
	cfg.Logging.Format = envOrDefault(EnvLogFormat, cfg.Logging.Format)
	cfg.Metrics.Addr = envOrDefault(EnvMetricsAddr, cfg.Metrics.Addr)

	size := intEnvOrDefault(EnvImageSize, 0)
	if size > 0 {
		cfg.Images.Width = size
		cfg.Images.Height = size
	}
}

func envOrDefault(key, defaultValue string) string {
	val := os.Getenv(key)
	if val != "" {
		return val
	}
	return defaultValue
}

func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func intEnvOrDefault(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}
