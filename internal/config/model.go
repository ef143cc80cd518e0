package config

// Descriptor is the unified, format-agnostic representation of an
// environment descriptor: one package source, an ordered list of overlays,
// the requested tools and toolchains, and the startup action. A Descriptor
// is immutable once loaded.
type Descriptor struct {
	Source     *SourceRef
	Overlays   []*Overlay
	Tools      []string
	Toolchains []*ToolchainSelector
	Platforms  []string
	Startup    string
}

// SourceRef names an external package catalog and pins it to a revision.
type SourceRef struct {
	Name     string
	Location string
	Revision string
}

// Overlay is an ordered package-set transformation. Applying an overlay adds
// or replaces the named packages; later overlays in the descriptor shadow
// earlier ones.
type Overlay struct {
	Name     string
	Packages []*PackageDef
}

// PackageDef is a single package definition inside an overlay. An empty
// Platforms list means the definition applies to every platform.
type PackageDef struct {
	Name      string
	Version   string
	Locator   string
	Platforms []string
}

// ToolchainSelector requests exactly one concrete variant of a toolchain
// family, e.g. the latest nightly of "rust" with a set of extensions.
type ToolchainSelector struct {
	Name       string
	Channel    string
	Extensions []string
}
