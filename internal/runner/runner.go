// Package runner fans descriptor resolution out across target platforms.
//
// Each platform's resolution touches only its own inputs and output, so the
// runner executes them concurrently on a fixed worker pool. Failures are
// scoped: one platform failing never aborts resolutions completed or in
// flight for other platforms.
package runner

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vk/shellforge/internal/catalog"
	"github.com/vk/shellforge/internal/config"
	"github.com/vk/shellforge/internal/ctxlog"
	"github.com/vk/shellforge/internal/resolve"
)

// Runner resolves a descriptor for a set of platforms concurrently.
type Runner struct {
	workers int
}

// New creates a runner with the given worker count. Values below one are
// clamped to one.
func New(workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{workers: workers}
}

// Run resolves the descriptor once per platform against a single shared
// snapshot and aggregates the per-platform outcomes. It always returns a
// report; individual failures live in the report's results.
func (r *Runner) Run(ctx context.Context, desc *config.Descriptor, platforms []string, snap *catalog.Snapshot) *Report {
	logger := ctxlog.FromContext(ctx)

	report := &Report{
		RunID:    uuid.NewString(),
		Revision: snap.Revision(),
		Results:  make(map[string]*Result, len(platforms)),
	}

	workers := r.workers
	if workers > len(platforms) {
		workers = len(platforms)
	}

	platformChan := make(chan string)
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for workerID := 0; workerID < workers; workerID++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			workerLogger := logger.With("workerID", workerID, "runID", report.RunID)

			for p := range platformChan {
				var result Result
				result.Platform = p

				if err := ctx.Err(); err != nil {
					result.Err = err
				} else {
					result.Record, result.Err = resolve.Resolve(ctx, desc, p, snap)
				}

				if result.Err != nil {
					workerLogger.Error("Platform resolution failed.", "platform", p, "error", result.Err)
				} else {
					workerLogger.Debug("Platform resolution succeeded.", "platform", p, "tools", len(result.Record.Tools))
				}

				mu.Lock()
				report.Results[p] = &result
				mu.Unlock()
			}
		}(workerID)
	}

	for _, p := range platforms {
		platformChan <- p
	}
	close(platformChan)
	wg.Wait()

	return report
}
