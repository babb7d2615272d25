// Package config loads the licensetower configuration file.
//
// The file is TOML and entirely optional; a missing file yields defaults.
// Flags override file values, file values override defaults.
//
// Example:
//
//	chunk_size = 32767
//	license_names = ["notice", "notice.txt"]
//
//	[cache]
//	backend = "file"   # file | redis | none
//	ttl = "720h"
//
//	[cache.redis]
//	addr = "localhost:6379"
//	db = 0
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultChunkSize is the spreadsheet cell content limit, in characters.
const DefaultChunkSize = 32767

// DefaultCacheTTL keeps decode cache entries for 30 days.
const DefaultCacheTTL = 30 * 24 * time.Hour

// Cache backend names accepted in the [cache] section.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config holds all tunable settings.
type Config struct {
	// ChunkSize is the maximum characters per license chunk.
	ChunkSize int `toml:"chunk_size"`

	// LicenseNames lists extra license basenames recognized in addition
	// to the built-in set (license*, licence*, copying*).
	LicenseNames []string `toml:"license_names"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects and configures the decode cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	TTL     duration    `toml:"ttl"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig holds Redis connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// duration wraps time.Duration to accept TOML strings like "720h".
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// TTLOrDefault returns the configured cache TTL, or DefaultCacheTTL.
func (c CacheConfig) TTLOrDefault() time.Duration {
	if c.TTL == 0 {
		return DefaultCacheTTL
	}
	return time.Duration(c.TTL)
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ChunkSize: DefaultChunkSize,
		Cache: CacheConfig{
			Backend: BackendFile,
		},
	}
}

// Load reads the config file at path. An empty path falls back to
// DefaultPath; a missing file at either location yields Default().
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = BackendFile
	}
	return cfg, nil
}

// DefaultPath returns the XDG config file location
// (~/.config/licensetower/config.toml).
func DefaultPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "licensetower", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "licensetower", "config.toml")
}
