package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/shellforge/internal/config"
	"github.com/vk/shellforge/internal/ctxlog"
	"github.com/vk/shellforge/internal/fsutil"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL descriptor loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader. Each path may be a single .hcl file or a
// directory searched recursively; documents merge in sorted path order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat descriptor path: %w", err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFiles(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("failed to scan descriptor directory %s: %w", path, err)
			}
			files = append(files, found...)
		} else {
			files = append(files, path)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no descriptor documents found in %v", paths)
	}
	logger.Debug("Descriptor documents discovered.", "count", len(files))

	parser := hclparse.NewParser()
	desc := &config.Descriptor{}
	for _, path := range files {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
		}
		var doc descriptorFile
		if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
		}
		if err := l.mergeDocument(desc, &doc, path); err != nil {
			return nil, err
		}
	}

	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid descriptor: %w", err)
	}
	logger.Debug("Descriptor loaded.",
		"source", desc.Source.Name,
		"overlays", len(desc.Overlays),
		"tools", len(desc.Tools),
		"toolchains", len(desc.Toolchains),
	)
	return desc, nil
}
