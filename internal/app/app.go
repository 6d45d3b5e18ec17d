package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/cligram/internal/registry"
)

// App encapsulates the application's dependencies, configuration and
// lifecycle: a registry of grammar trees populated from compiled-in
// modules, an isolated logger, and the output writer.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
}

// NewApp constructs the application: it builds the logger, creates the
// registry and registers every module (defaulting to the compiled-in core
// modules when none are given). Logs go to logW, grammar output to outW.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		if err := mod.Register(reg); err != nil {
			return nil, fmt.Errorf("registering grammar module: %w", err)
		}
	}
	logger.Debug("All grammar modules registered.", "count", len(modules), "trees", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
	}, nil
}

// Registry returns the application's registry. Primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
