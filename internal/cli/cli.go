// Package cli implements the vtdesigner command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vtdesigner/pkg/buildinfo"
	"github.com/matzehuels/vtdesigner/pkg/cache"
	"github.com/matzehuels/vtdesigner/pkg/clipboard"
	"github.com/matzehuels/vtdesigner/pkg/config"
	"github.com/matzehuels/vtdesigner/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "vtdesigner"

	// redisConnectTimeout bounds the clipboard backend ping.
	redisConnectTimeout = 3 * time.Second
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the default config file location.
	ConfigPath string
}

// New creates a new CLI instance with a default logger and registers
// logging document hooks.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	observability.SetDocumentHooks(&logHooks{logger: c.Logger})
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "vtdesigner edits ISOBUS virtual terminal object pools",
		Long: `vtdesigner is a command-line editor for ISO 11783-6 object pools. It reads
raw pools (.iop) and project files (.aitp), edits them with undo history,
merges objects between pools and exports C headers for ECU firmware.`,
		Version:       buildinfo.Resolved(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default "+defaultConfigHint()+")")
	c.addVerboseFlag(root)

	root.AddCommand(c.infoCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.newCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.rmCommand())
	root.AddCommand(c.renameCommand())
	root.AddCommand(c.linkCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.copyCommand())
	root.AddCommand(c.pasteCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Clipboard
// =============================================================================

// loadConfig reads the config file, falling back to defaults when it is
// missing.
func (c *CLI) loadConfig() (config.Config, *config.Store, error) {
	store, err := config.NewStore(c.ConfigPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	cfg, err := store.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, store, nil
}

// newClipboard opens the clipboard on the configured backend. An
// unreachable Redis server falls back to the file backend.
func (c *CLI) newClipboard(ctx context.Context) (*clipboard.Clipboard, error) {
	cfg, _, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := c.newCache(ctx, cfg.Clipboard)
	if err != nil {
		return nil, err
	}
	return clipboard.New(cache.Scoped(store, appName+":"), 0), nil
}

func (c *CLI) newCache(ctx context.Context, cfg config.Clipboard) (cache.Cache, error) {
	switch cfg.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:           cfg.RedisAddr,
			ConnectTimeout: redisConnectTimeout,
		})
		if err == nil {
			return rc, nil
		}
		c.Logger.Warn("redis clipboard unavailable, using files", "addr", cfg.RedisAddr, "err", err)
	}
	dir := cfg.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/vtdesigner/).
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

func defaultConfigHint() string {
	return filepath.Join("$XDG_CONFIG_HOME", appName, "config.toml")
}
