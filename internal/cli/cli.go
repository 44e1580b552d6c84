// Package cli implements the graphport command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/graphport/graphport/pkg/buildinfo"
	"github.com/graphport/graphport/pkg/cache"
	"github.com/graphport/graphport/pkg/config"
)

// appName is the application name used for directories and display.
const appName = "graphport"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "graphport",
		Short:        "Graphport converts and renders graph files",
		Long:         `Graphport reads graphs in a dozen serialization formats, converts between them, and draws them as SVG, PNG, or Graphviz DOT.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.formatsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache builds the artifact cache named in the config. A backend that
// cannot be reached degrades to the null cache rather than failing the
// command.
func (c *CLI) newCache(ctx context.Context, cfg config.Cache, noCache bool) cache.Cache {
	if noCache || cfg.Backend == "none" {
		return cache.NewNullCache()
	}
	if cfg.Backend == "redis" {
		rc, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
		if err != nil {
			c.Logger.Warn("redis unreachable, caching disabled", "addr", cfg.RedisAddr, "error", err)
			return cache.NewNullCache()
		}
		return rc
	}

	dir := cfg.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache()
		}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache directory unusable, caching disabled", "dir", dir, "error", err)
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/graphport/).
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
