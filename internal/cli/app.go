// Package cli wires configuration, logging and caches for the lrucache commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bnema/lrucache/internal/application/port"
	"github.com/bnema/lrucache/internal/cli/styles"
	"github.com/bnema/lrucache/internal/domain/build"
	"github.com/bnema/lrucache/internal/infrastructure/config"
	"github.com/bnema/lrucache/internal/logging"
	"github.com/bnema/lrucache/pkg/lru"
	"github.com/bnema/lrucache/pkg/synclru"
)

// Options carries command-line overrides applied on top of the config file.
type Options struct {
	ConfigFile string
	Capacity   int    // 0 keeps the configured value
	LogLevel   string // empty keeps the configured value
	LogOutput  io.Writer
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// NewApp loads configuration and builds the logger.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if opts.Capacity != 0 {
		mgr.Set("cache.capacity", opts.Capacity)
	}
	if opts.LogLevel != "" {
		mgr.Set("logging.level", opts.LogLevel)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	logOutput := opts.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = cfg.Logging.Format
	logCfg.TimeFormat = "15:04:05"
	logCfg.Output = logOutput
	logger := logging.New(logCfg)

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithCapacity(ctx, cfg.Cache.Capacity)
	if used := mgr.ConfigFileUsed(); used != "" {
		logging.FromContext(ctx).Debug().Str("file", used).Msg("config loaded")
	}

	return &App{
		Config: cfg,
		Theme:  styles.NewTheme(),
		ctx:    ctx,
	}, nil
}

// Context returns the application context carrying the logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// NewCache builds the configured cache, registering listener for evictions.
func (a *App) NewCache(listener lru.EvictionListener[string, string]) (port.Cache[string, string], error) {
	capacity := a.Config.Cache.Capacity
	if a.Config.Cache.Synchronized {
		c, err := synclru.New(capacity, synclru.WithEvictionListener(listener))
		if err != nil {
			return nil, fmt.Errorf("create synchronized cache: %w", err)
		}
		return c, nil
	}

	c, err := lru.New(capacity, lru.WithEvictionListener(listener))
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	return c, nil
}
