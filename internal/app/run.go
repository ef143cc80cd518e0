package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vk/shellforge/internal/catalog"
	"github.com/vk/shellforge/internal/ctxlog"
	"github.com/vk/shellforge/internal/platform"
	"github.com/vk/shellforge/internal/runner"
)

const (
	snapshotAttempts = 3
	snapshotBackoff  = 250 * time.Millisecond
)

// Run executes the main application logic: enumerate platforms, snapshot
// the catalog, resolve the descriptor per platform, and render the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	// CLI platforms win over the descriptor's list; with neither, the
	// enumerator falls back to its built-in default set.
	declared := a.config.Platforms
	if len(declared) == 0 {
		declared = a.desc.Platforms
	}
	platforms, err := platform.NewStatic(declared...).Enumerate(ctx)
	if err != nil {
		return fmt.Errorf("failed to enumerate platforms: %w", err)
	}
	a.logger.Debug("Platforms enumerated.", "platforms", platforms)

	src, err := a.sources.Open(a.desc.Source)
	if err != nil {
		return fmt.Errorf("failed to open source %q: %w", a.desc.Source.Name, err)
	}
	snap, err := catalog.SnapshotWithRetry(ctx, src, snapshotAttempts, snapshotBackoff)
	if err != nil {
		return fmt.Errorf("failed to snapshot source %q: %w", a.desc.Source.Name, err)
	}
	a.logger.Info("Catalog snapshot taken.", "source", a.desc.Source.Name, "revision", snap.Revision())

	report := runner.New(a.config.Workers).Run(ctx, a.desc, platforms, snap)
	a.logger.Info("Resolution finished.", "runID", report.RunID, "platforms", len(report.Results), "failed", len(report.Failed()))

	if err := a.render(report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("resolution failed for %d of %d platforms: %s",
			len(failed), len(report.Results), strings.Join(failed, ", "))
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}
