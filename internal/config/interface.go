package config

import "context"

// Loader is the interface for a format-specific descriptor loader.
type Loader interface {
	// Load reads one or more descriptor documents (files or directories),
	// translates them into the format-agnostic model, and validates the
	// result.
	Load(ctx context.Context, paths ...string) (*Descriptor, error)
}
