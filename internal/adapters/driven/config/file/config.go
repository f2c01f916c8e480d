package file

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the server configuration. Timeouts are in seconds so the TOML
// stays plain integers.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Search    SearchConfig    `toml:"search"`
	Log       LogConfig       `toml:"log"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	ListenAddr             string `toml:"listen_addr"`
	ReadTimeoutSeconds     int    `toml:"read_timeout_seconds"`
	WriteTimeoutSeconds    int    `toml:"write_timeout_seconds"`
	ShutdownTimeoutSeconds int    `toml:"shutdown_timeout_seconds"`
}

// SearchConfig controls result paging. MaxPageSize never exceeds the
// hard ceiling the search service enforces.
type SearchConfig struct {
	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// RateLimitConfig controls per-client request throttling.
// A zero RequestsPerSecond disables throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:             ":8080",
			ReadTimeoutSeconds:     15,
			WriteTimeoutSeconds:    60,
			ShutdownTimeoutSeconds: 10,
		},
		Search: SearchConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Log: LogConfig{
			Level: "info",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 50,
			Burst:             100,
		},
	}
}

// Load reads a TOML config file over the defaults. An empty path returns
// the defaults unchanged; a missing or malformed file is an error, so a
// typo in --config never silently runs with defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ReadTimeout returns the read timeout as a duration.
func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown timeout as a duration.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
