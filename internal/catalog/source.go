package catalog

import (
	"context"
	"fmt"
)

// Source is the read side of an external package catalog.
type Source interface {
	// Snapshot returns a point-in-time view of the catalog contents. The
	// call must observe a single consistent state: a refresh running in the
	// background never bleeds into a snapshot already handed out.
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// UnavailableError reports that the catalog could not be reached or read.
// Callers may retry a bounded number of times before surfacing it.
type UnavailableError struct {
	Location string
	Err      error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("source %q unavailable: %v", e.Location, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
