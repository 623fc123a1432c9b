package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"sports-explorer/internal/logger"
)

const (
	DefaultBaseURL = "https://www.thesportsdb.com/api/v1/json"
	DefaultAPIKey  = "3"
)

// Config holds every tunable of the application. The zero value is not usable; start from Default.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Images  ImagesConfig  `yaml:"images"`
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// APIConfig locates the sports-data service.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// ImagesConfig controls player thumbnail fetching.
type ImagesConfig struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Timeout  time.Duration `yaml:"timeout"`
	MaxBytes int64         `yaml:"max_bytes"`
	PoolSize int           `yaml:"pool_size"`
}

type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig enables the Prometheus listener when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			APIKey:  DefaultAPIKey,
			Timeout: 20 * time.Second,
		},
		Images: ImagesConfig{
			Width:    250,
			Height:   250,
			Timeout:  10 * time.Second,
			MaxBytes: 8 << 20,
			PoolSize: 16,
		},
		Window: WindowConfig{
			Title:  "Sports Explorer",
			Width:  1000,
			Height: 700,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the optional YAML file at path over the defaults, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute URL", c.API.BaseURL)
	}
	if c.API.APIKey == "" {
		return errors.New("api.api_key is required")
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}
	if c.Images.Width <= 0 || c.Images.Height <= 0 {
		return fmt.Errorf("images size %dx%d must be positive", c.Images.Width, c.Images.Height)
	}
	if c.Images.Timeout <= 0 {
		return errors.New("images.timeout must be positive")
	}
	if c.Images.MaxBytes <= 0 {
		return errors.New("images.max_bytes must be positive")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.New("window size must be positive")
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}
