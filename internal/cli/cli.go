// Package cli implements the licensetower command-line interface.
//
// The root command scans a node_modules tree and writes the license
// report; cache subcommands manage the decode cache. All commands
// support --verbose (-v) for debug-level logging via charmbracelet/log.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/licensetower/pkg/buildinfo"
	"github.com/matzehuels/licensetower/pkg/cache"
	"github.com/matzehuels/licensetower/pkg/config"
)

// appName is the application name used for directories and display.
const appName = "licensetower"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.scanCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache builds the decode cache selected by configuration.
// Backend failures degrade to a null cache; scanning never depends on
// the cache being available.
func newCache(ctx context.Context, logger *log.Logger, cfg config.CacheConfig, noCache bool) cache.Cache {
	if noCache || cfg.Backend == config.BackendNone {
		return cache.NewNullCache()
	}

	switch cfg.Backend {
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Warn("redis cache unavailable, continuing without", "addr", cfg.Redis.Addr, "err", err)
			return cache.NewNullCache()
		}
		return rc
	default:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			logger.Warn("file cache unavailable, continuing without", "dir", dir, "err", err)
			return cache.NewNullCache()
		}
		return fc
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/licensetower/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
