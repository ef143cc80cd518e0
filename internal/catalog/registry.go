package catalog

import (
	"fmt"
	"strings"

	"github.com/vk/shellforge/internal/config"
)

// Opener constructs a Source backend for a source reference.
type Opener func(ref *config.SourceRef) (Source, error)

// Registry maps URI schemes to Source backends for a single application
// instance.
type Registry struct {
	openers map[string]Opener
}

// NewRegistry creates an empty backend registry.
func NewRegistry() *Registry {
	return &Registry{openers: make(map[string]Opener)}
}

// Register adds a backend for a scheme, replacing any previous one.
func (r *Registry) Register(scheme string, open Opener) {
	r.openers[scheme] = open
}

// Open dispatches a source reference to the backend registered for its
// location scheme. A location without a scheme is treated as a local path.
func (r *Registry) Open(ref *config.SourceRef) (Source, error) {
	if ref == nil {
		return nil, fmt.Errorf("no source reference provided")
	}
	scheme := "file"
	if i := strings.Index(ref.Location, "://"); i > 0 {
		scheme = ref.Location[:i]
	}
	open, ok := r.openers[scheme]
	if !ok {
		return nil, fmt.Errorf("source %q: no backend registered for scheme %q", ref.Name, scheme)
	}
	return open(ref)
}

// DefaultRegistry returns a registry with the built-in backends: local
// files (file:// or bare paths) and HTTP(S) catalogs.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("file", NewFile)
	r.Register("http", NewHTTP)
	r.Register("https", NewHTTP)
	return r
}
