package resolve

import (
	"context"
	"fmt"

	"github.com/vk/shellforge/internal/catalog"
	"github.com/vk/shellforge/internal/config"
	"github.com/vk/shellforge/internal/ctxlog"
	"github.com/vk/shellforge/internal/shellwords"
)

// Resolve evaluates a descriptor for one platform against one catalog
// snapshot. Overlays are applied as a sequential fold in declared order, so
// a later overlay sees and may shadow what an earlier one defined. Plain
// tools resolve before toolchain selectors, each group in declaration
// order.
func Resolve(ctx context.Context, desc *config.Descriptor, platform string, snap *catalog.Snapshot) (*Record, error) {
	logger := ctxlog.FromContext(ctx).With("platform", platform)

	overlaid := snap
	for _, ov := range desc.Overlays {
		overlaid = overlaid.Overlay(overlayReferences(ov, snap.Revision()))
		logger.Debug("Overlay applied.", "overlay", ov.Name, "packages", len(ov.Packages))
	}

	tools := make([]catalog.Reference, 0, len(desc.Tools)+len(desc.Toolchains))
	for _, name := range desc.Tools {
		ref, ok := overlaid.Query(name, platform)
		if !ok {
			return nil, &UnresolvedToolError{Tool: name, Platform: platform}
		}
		tools = append(tools, ref)
	}

	for _, sel := range desc.Toolchains {
		ref, err := selectVariant(overlaid, sel, platform)
		if err != nil {
			return nil, err
		}
		logger.Debug("Toolchain variant selected.", "toolchain", sel.Name, "version", ref.Version)
		tools = append(tools, ref)
	}

	argv, err := shellwords.Split(desc.Startup)
	if err != nil {
		return nil, fmt.Errorf("invalid startup action %q: %w", desc.Startup, err)
	}

	return &Record{
		Platform:    platform,
		Tools:       tools,
		Startup:     desc.Startup,
		StartupArgv: argv,
	}, nil
}

// overlayReferences expands an overlay's package definitions into catalog
// references, one per declared platform.
func overlayReferences(ov *config.Overlay, revision string) []catalog.Reference {
	var refs []catalog.Reference
	for _, pkg := range ov.Packages {
		platforms := pkg.Platforms
		if len(platforms) == 0 {
			platforms = []string{catalog.AnyPlatform}
		}
		for _, p := range platforms {
			refs = append(refs, catalog.Reference{
				Name:     pkg.Name,
				Version:  pkg.Version,
				Platform: p,
				Locator:  pkg.Locator,
				Revision: revision,
			})
		}
	}
	return refs
}
