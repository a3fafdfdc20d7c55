// Package common provides shared utilities for Folio
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the Folio client
type Config struct {
	Portfolio string        `toml:"portfolio" validate:"required"` // default portfolio id
	Benchmark string        `toml:"benchmark"`                     // optional benchmark symbol for the performance overlay
	Server    ServerConfig  `toml:"server"`
	Charts    ChartsConfig  `toml:"charts"`
	Refresh   RefreshConfig `toml:"refresh"`
	Logging   LoggingConfig `toml:"logging"`
}

// ServerConfig holds remote portfolio API configuration
type ServerConfig struct {
	BaseURL   string `toml:"base_url" validate:"required,url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *ServerConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// ChartsConfig holds chart rendering configuration
type ChartsConfig struct {
	Dir    string `toml:"dir"`    // directory for rendered PNG images
	Width  int    `toml:"width"`  // default chart width in pixels
	Height int    `toml:"height"` // default chart height in pixels
	Seed   int64  `toml:"seed"`   // palette extension seed, shared across runs for reproducible colors
}

// RefreshConfig holds watch-mode refresh configuration
type RefreshConfig struct {
	Schedule string `toml:"schedule"` // cron spec for watch mode, e.g. "@every 5m"
	Debounce string `toml:"debounce"` // search debounce window
	CacheTTL string `toml:"cache_ttl"`
}

// GetDebounce parses the search debounce window
func (c *RefreshConfig) GetDebounce() time.Duration {
	d, err := time.ParseDuration(c.Debounce)
	if err != nil {
		return 300 * time.Millisecond
	}
	return d
}

// GetCacheTTL parses the analysis prefetch cache TTL
func (c *RefreshConfig) GetCacheTTL() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:   "http://localhost:5001",
			RateLimit: 10,
			Timeout:   "30s",
		},
		Charts: ChartsConfig{
			Dir:    "charts",
			Width:  900,
			Height: 400,
			Seed:   1,
		},
		Refresh: RefreshConfig{
			Schedule: "@every 5m",
			Debounce: "300ms",
			CacheTTL: "5m",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// Validate checks required fields and URL shapes.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var errs validator.ValidationErrors
		msgs := make([]string, 0)
		if ok := asValidationErrors(err, &errs); ok {
			for _, fe := range errs {
				msgs = append(msgs, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	if ve, ok := err.(validator.ValidationErrors); ok {
		*target = ve
		return true
	}
	return false
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if url := os.Getenv("FOLIO_SERVER_URL"); url != "" {
		config.Server.BaseURL = url
	}

	if rl := os.Getenv("FOLIO_RATE_LIMIT"); rl != "" {
		if n, err := strconv.Atoi(rl); err == nil {
			config.Server.RateLimit = n
		}
	}

	if level := os.Getenv("FOLIO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if dir := os.Getenv("FOLIO_CHARTS_DIR"); dir != "" {
		config.Charts.Dir = dir
	}

	if p := os.Getenv("FOLIO_PORTFOLIO"); p != "" {
		config.Portfolio = p
	}

	if b := os.Getenv("FOLIO_BENCHMARK"); b != "" {
		config.Benchmark = strings.ToUpper(b)
	}
}
