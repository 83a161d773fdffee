// Package config loads tjstuff settings from defaults, a config file, the
// environment and command line flags, in increasing priority.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tjstuff setting.
type Config struct {
	Data   DataConfig   `koanf:"data"`
	Server ServerConfig `koanf:"server"`
	Cache  CacheConfig  `koanf:"cache"`
	Chart  ChartConfig  `koanf:"chart"`
	Log    LogConfig    `koanf:"log"`

	// FileUsed is the config file that was read, if any.
	FileUsed string `koanf:"-"`

	raw map[string]any
}

type DataConfig struct {
	Path       string `koanf:"path"`
	Format     string `koanf:"format"`
	MinPitches int64  `koanf:"min_pitches"`
}

type ServerConfig struct {
	Addr              string        `koanf:"addr"`
	SessionSecret     string        `koanf:"session_secret"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
}

type CacheConfig struct {
	Backend  string        `koanf:"backend"`
	TTL      time.Duration `koanf:"ttl"`
	RedisURL string        `koanf:"redis_url"`
}

type ChartConfig struct {
	Width  int `koanf:"width"`
	Height int `koanf:"height"`
	Season int `koanf:"season"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// Defaults are the lowest priority layer.
func Defaults() map[string]any {
	return map[string]any{
		"data.path":                  "",
		"data.format":                "",
		"data.min_pitches":           10,
		"server.addr":                ":8050",
		"server.session_secret":      "",
		"server.cors_origins":        []string{},
		"server.read_header_timeout": "10s",
		"cache.backend":              CacheMemory,
		"cache.ttl":                  "10m",
		"cache.redis_url":            "redis://localhost:6379/0",
		"chart.width":                1000,
		"chart.height":               1100,
		"chart.season":               2024,
		"log.level":                  "info",
	}
}

// Validate checks settings every data command depends on.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return fmt.Errorf("data.path is required\nHint: pass --data or set TJSTUFF_DATA_PATH")
	}
	if c.Data.MinPitches < 0 {
		return fmt.Errorf("data.min_pitches must be >= 0, got %d", c.Data.MinPitches)
	}
	switch c.Cache.Backend {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		return fmt.Errorf("unknown cache.backend %q (want memory, redis or none)", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheRedis && c.Cache.RedisURL == "" {
		return fmt.Errorf("cache.redis_url is required for the redis backend")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	return nil
}

// SlogLevel parses Level as a slog level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// YAML renders the effective settings, for `tjstuff config`.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c.raw)
}
