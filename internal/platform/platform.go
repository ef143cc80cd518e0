// Package platform enumerates the target platforms an environment
// descriptor is resolved for.
package platform

import (
	"context"
	"fmt"
)

// DefaultPlatforms is the built-in platform set used when neither the
// descriptor nor the caller names one.
var DefaultPlatforms = []string{
	"aarch64-darwin",
	"aarch64-linux",
	"x86_64-darwin",
	"x86_64-linux",
}

// Enumerator produces the set of platform identifiers a descriptor must be
// resolved for. The result is non-empty and duplicate-free; an enumeration
// failure is fatal for the whole run.
type Enumerator interface {
	Enumerate(ctx context.Context) ([]string, error)
}

// DiscoveryFailedError reports that no target platforms could be
// determined. The run aborts: there is nothing to resolve against.
type DiscoveryFailedError struct {
	Reason string
}

func (e *DiscoveryFailedError) Error() string {
	return fmt.Sprintf("platform discovery failed: %s", e.Reason)
}
