// Package yamlcfg implements the config.Loader interface for YAML
// environment descriptors, as a second concrete format behind the same
// format-agnostic model the HCL loader feeds.
package yamlcfg

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/shellforge/internal/config"
	"github.com/vk/shellforge/internal/ctxlog"
	"github.com/vk/shellforge/internal/fsutil"
)

// descriptorDoc mirrors the HCL descriptor grammar in YAML.
type descriptorDoc struct {
	Source     *sourceDoc     `yaml:"source"`
	Overlays   []overlayDoc   `yaml:"overlays"`
	Tools      []string       `yaml:"tools"`
	Toolchain  *toolchainDoc  `yaml:"toolchain"`
	Toolchains []toolchainDoc `yaml:"toolchains"`
	Platforms  []string       `yaml:"platforms"`
	Startup    string         `yaml:"startup"`
}

type sourceDoc struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Revision string `yaml:"revision"`
}

type overlayDoc struct {
	Name     string       `yaml:"name"`
	Packages []packageDoc `yaml:"packages"`
}

type packageDoc struct {
	Name      string   `yaml:"name"`
	Version   string   `yaml:"version"`
	Locator   string   `yaml:"locator"`
	Platforms []string `yaml:"platforms"`
}

type toolchainDoc struct {
	Name       string   `yaml:"name"`
	Channel    string   `yaml:"channel"`
	Extensions []string `yaml:"extensions"`
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML descriptor loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader. Each path may be a single .yaml/.yml file
// or a directory searched recursively; documents merge in sorted path
// order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat descriptor path: %w", err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFiles(path, ".yaml", ".yml")
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

	desc := &config.Descriptor{}
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		var doc descriptorDoc
		if err := yaml.Unmarshal(src, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		if err := mergeDocument(desc, &doc, path); err != nil {
			return nil, err
		}
	}

	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid descriptor: %w", err)
	}
	logger.Debug("Descriptor loaded.", "source", desc.Source.Name, "files", len(files))
	return desc, nil
}

func mergeDocument(desc *config.Descriptor, doc *descriptorDoc, path string) error {
	if doc.Source != nil {
		if desc.Source != nil {
			return fmt.Errorf("%s: source %q conflicts with already declared source %q", path, doc.Source.Name, desc.Source.Name)
		}
		desc.Source = &config.SourceRef{
			Name:     doc.Source.Name,
			Location: doc.Source.Location,
			Revision: doc.Source.Revision,
		}
	}

	for _, ov := range doc.Overlays {
		overlay := &config.Overlay{Name: ov.Name}
		for _, pkg := range ov.Packages {
			overlay.Packages = append(overlay.Packages, &config.PackageDef{
				Name:      pkg.Name,
				Version:   pkg.Version,
				Locator:   pkg.Locator,
				Platforms: pkg.Platforms,
			})
		}
		desc.Overlays = append(desc.Overlays, overlay)
	}

	// The single `toolchain` field is the common case; `toolchains` allows
	// more than one selector. Both may appear.
	selectors := doc.Toolchains
	if doc.Toolchain != nil {
		selectors = append([]toolchainDoc{*doc.Toolchain}, selectors...)
	}
	for _, tc := range selectors {
		desc.Toolchains = append(desc.Toolchains, &config.ToolchainSelector{
			Name:       tc.Name,
			Channel:    tc.Channel,
			Extensions: tc.Extensions,
		})
	}

	desc.Tools = append(desc.Tools, doc.Tools...)
	desc.Platforms = append(desc.Platforms, doc.Platforms...)
	if doc.Startup != "" {
		if desc.Startup != "" {
			return fmt.Errorf("%s: startup action declared more than once", path)
		}
		desc.Startup = doc.Startup
	}
	return nil
}
