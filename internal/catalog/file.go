package catalog

import (
	"context"
	"os"
	"strings"

	"github.com/vk/shellforge/internal/config"
	"github.com/vk/shellforge/internal/fsutil"
)

// File is a Source backed by HCL catalog documents on the local
// filesystem: either a single file or a directory of them. Each Snapshot
// call re-reads the documents, so the snapshot reflects the files as they
// are at that moment.
type File struct {
	path     string
	revision string
}

// NewFile creates a file-backed source from a source reference. The
// reference location may carry a file:// scheme or be a bare path.
func NewFile(ref *config.SourceRef) (Source, error) {
	path := strings.TrimPrefix(ref.Location, "file://")
	return &File{path: path, revision: ref.Revision}, nil
}

// Snapshot implements Source.
func (f *File) Snapshot(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(f.path)
	if err != nil {
		return nil, &UnavailableError{Location: f.path, Err: err}
	}

	paths := []string{f.path}
	if info.IsDir() {
		paths, err = fsutil.FindFiles(f.path, ".hcl")
		if err != nil {
			return nil, &UnavailableError{Location: f.path, Err: err}
		}
	}

	var (
		packages []Reference
		variants []Reference
		revision = f.revision
	)
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, &UnavailableError{Location: path, Err: err}
		}
		pkgs, vars, rev, err := parseDocument(path, src, revision)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkgs...)
		variants = append(variants, vars...)
		revision = rev
	}

	return NewSnapshot(revision, packages, variants), nil
}
