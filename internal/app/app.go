package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/shellforge/internal/catalog"
	"github.com/vk/shellforge/internal/config"
	"github.com/vk/shellforge/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	desc    *config.Descriptor
	sources *catalog.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, the loaded
// descriptor, and the catalog backend registry. The report is rendered to
// outW; logs go to logW so machine-readable output stays clean.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, sources *catalog.Registry) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the descriptor into the format-agnostic model first.
	desc, err := loader.Load(ctx, appConfig.EnvPath)
	if err != nil {
		// A failure to load the descriptor is a fatal startup error.
		panic(fmt.Errorf("failed to load environment descriptor: %w", err))
	}
	logger.Debug("Descriptor loaded and translated into unified model.")

	if appConfig.Catalog != "" {
		// CLI override wins over the declared source location.
		override := *desc.Source
		override.Location = appConfig.Catalog
		desc.Source = &override
		logger.Debug("Source location overridden from CLI.", "location", appConfig.Catalog)
	}

	if sources == nil {
		sources = catalog.DefaultRegistry()
	}

	return &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		desc:    desc,
		sources: sources,
	}
}

// Descriptor returns the loaded descriptor. This is primarily for testing.
func (a *App) Descriptor() *config.Descriptor {
	return a.desc
}
