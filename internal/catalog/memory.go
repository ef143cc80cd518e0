package catalog

import (
	"context"
	"sync"
)

// Memory is an in-memory Source, used for embedding and as a test double.
// It is safe for concurrent use: Snapshot copies the current contents under
// a read lock, so a snapshot handed out never observes later mutations.
type Memory struct {
	mu       sync.RWMutex
	revision string
	packages []Reference
	variants []Reference
}

// NewMemory creates an empty in-memory catalog at the given revision.
func NewMemory(revision string) *Memory {
	return &Memory{revision: revision}
}

// Add registers plain package references.
func (m *Memory) Add(refs ...Reference) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.packages = append(m.packages, refs...)
}

// AddVariants registers toolchain variants.
func (m *Memory) AddVariants(refs ...Reference) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.variants = append(m.variants, refs...)
}

// SetRevision moves the catalog to a new revision, e.g. after a refresh.
func (m *Memory) SetRevision(revision string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revision = revision
}

// Snapshot implements Source.
func (m *Memory) Snapshot(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return NewSnapshot(m.revision, m.packages, m.variants), nil
}
