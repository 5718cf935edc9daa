// Package config loads service configuration from the environment
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the service configuration. Every variable carries the DDTOOLS_
// prefix, e.g. DDTOOLS_GRPC_PORT.
type Config struct {
	GRPCPort       int           `env:"GRPC_PORT"        envDefault:"50051"`
	RedisAddr      string        `env:"REDIS_ADDR"       envDefault:"localhost:6379"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB"         envDefault:"0"`
	RedisTLS       bool          `env:"REDIS_TLS"`
	LogLevel       string        `env:"LOG_LEVEL"        envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT"       envDefault:"text"`
	DND5eBaseURL   string        `env:"DND5E_BASE_URL"   envDefault:"https://www.dnd5eapi.co/api/2014/"`
	DND5eTimeout   time.Duration `env:"DND5E_TIMEOUT"    envDefault:"30s"`
	DND5eCacheTTL  time.Duration `env:"DND5E_CACHE_TTL"  envDefault:"24h"`
	RollSessionTTL time.Duration `env:"ROLL_SESSION_TTL" envDefault:"15m"`
}

// Prefix is prepended to every variable name
const Prefix = "DDTOOLS_"

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: Prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog level. Unknown names mean info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// JSONLogs reports whether logs should be written as JSON
func (c *Config) JSONLogs() bool {
	return strings.EqualFold(c.LogFormat, "json")
}
