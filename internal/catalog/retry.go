package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/vk/shellforge/internal/ctxlog"
)

// SnapshotWithRetry takes a snapshot, retrying UnavailableError up to
// attempts times with a doubling backoff. Any other error, and a context
// cancellation, surface immediately.
func SnapshotWithRetry(ctx context.Context, src Source, attempts int, backoff time.Duration) (*Snapshot, error) {
	logger := ctxlog.FromContext(ctx)
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		snap, err := src.Snapshot(ctx)
		if err == nil {
			return snap, nil
		}

		var unavailable *UnavailableError
		if !errors.As(err, &unavailable) {
			return nil, err
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		logger.Warn("Catalog snapshot failed, retrying.", "attempt", attempt, "backoff", backoff, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return nil, lastErr
}
