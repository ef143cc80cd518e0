package hcl

import (
	"fmt"

	"github.com/vk/shellforge/internal/config"
)

// mergeDocument folds one parsed document into the descriptor under
// construction. Overlays, tools, and toolchains append in document order;
// only one source may be declared across all documents.
func (l *Loader) mergeDocument(desc *config.Descriptor, doc *descriptorFile, path string) error {
	for _, src := range doc.Sources {
		if desc.Source != nil {
			return fmt.Errorf("%s: source %q conflicts with already declared source %q", path, src.Name, desc.Source.Name)
		}
		desc.Source = translateSource(src)
	}
	for _, ov := range doc.Overlays {
		desc.Overlays = append(desc.Overlays, translateOverlay(ov))
	}
	for _, tc := range doc.Toolchains {
		desc.Toolchains = append(desc.Toolchains, translateToolchain(tc))
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

func translateSource(s *sourceBlock) *config.SourceRef {
	return &config.SourceRef{
		Name:     s.Name,
		Location: s.Location,
		Revision: s.Revision,
	}
}

func translateOverlay(o *overlayBlock) *config.Overlay {
	ov := &config.Overlay{Name: o.Name}
	for _, pkg := range o.Packages {
		ov.Packages = append(ov.Packages, &config.PackageDef{
			Name:      pkg.Name,
			Version:   pkg.Version,
			Locator:   pkg.Locator,
			Platforms: pkg.Platforms,
		})
	}
	return ov
}

func translateToolchain(t *toolchainBlock) *config.ToolchainSelector {
	return &config.ToolchainSelector{
		Name:       t.Name,
		Channel:    t.Channel,
		Extensions: t.Extensions,
	}
}
