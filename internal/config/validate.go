package config

import (
	"errors"
	"fmt"
)

// Validate checks the structural integrity of a loaded descriptor. Loaders
// call it after translation; it does not touch the catalog.
func (d *Descriptor) Validate() error {
	if d.Source == nil {
		return errors.New("descriptor must declare a source")
	}
	if d.Source.Location == "" {
		return fmt.Errorf("source %q must declare a location", d.Source.Name)
	}

	seenOverlays := make(map[string]struct{}, len(d.Overlays))
	for _, ov := range d.Overlays {
		if ov.Name == "" {
			return errors.New("overlay without a name")
		}
		if _, dup := seenOverlays[ov.Name]; dup {
			return fmt.Errorf("duplicate overlay %q", ov.Name)
		}
		seenOverlays[ov.Name] = struct{}{}
		for _, pkg := range ov.Packages {
			if pkg.Name == "" {
				return fmt.Errorf("overlay %q contains a package without a name", ov.Name)
			}
			if pkg.Version == "" {
				return fmt.Errorf("overlay %q: package %q must declare a version", ov.Name, pkg.Name)
			}
		}
	}

	seenTools := make(map[string]struct{}, len(d.Tools))
	for _, tool := range d.Tools {
		if tool == "" {
			return errors.New("empty tool name in tools list")
		}
		if _, dup := seenTools[tool]; dup {
			return fmt.Errorf("duplicate tool %q", tool)
		}
		seenTools[tool] = struct{}{}
	}

	seenToolchains := make(map[string]struct{}, len(d.Toolchains))
	for _, sel := range d.Toolchains {
		if sel.Name == "" {
			return errors.New("toolchain selector without a name")
		}
		if sel.Channel == "" {
			return fmt.Errorf("toolchain %q must declare a channel", sel.Name)
		}
		if _, dup := seenToolchains[sel.Name]; dup {
			return fmt.Errorf("duplicate toolchain %q", sel.Name)
		}
		seenToolchains[sel.Name] = struct{}{}
	}

	return nil
}
