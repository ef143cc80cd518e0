package catalog

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"github.com/vk/shellforge/internal/config"
)

// defaultHTTPTimeout bounds a single catalog fetch so a hung source
// surfaces as UnavailableError instead of blocking the run.
const defaultHTTPTimeout = 30 * time.Second

// HTTP is a Source that fetches a catalog document over HTTP(S). One fetch
// is one snapshot: the document is downloaded and parsed atomically, so a
// catalog republished mid-run never mixes into an existing snapshot.
type HTTP struct {
	client   *resty.Client
	url      string
	revision string
}

// NewHTTP creates an HTTP-backed source from a source reference.
func NewHTTP(ref *config.SourceRef) (Source, error) {
	client := resty.New().SetTimeout(defaultHTTPTimeout)
	return &HTTP{client: client, url: ref.Location, revision: ref.Revision}, nil
}

// Snapshot implements Source.
func (h *HTTP) Snapshot(ctx context.Context) (*Snapshot, error) {
	res, err := h.client.R().SetContext(ctx).Get(h.url)
	if err != nil {
		return nil, &UnavailableError{Location: h.url, Err: err}
	}
	if res.IsError() {
		return nil, &UnavailableError{Location: h.url, Err: fmt.Errorf("unexpected status %s", res.Status())}
	}

	packages, variants, revision, err := parseDocument(h.url, res.Bytes(), h.revision)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(revision, packages, variants), nil
}

// Close releases the underlying HTTP client resources.
func (h *HTTP) Close() error {
	return h.client.Close()
}
