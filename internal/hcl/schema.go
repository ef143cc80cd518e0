package hcl

// descriptorFile is the top-level HCL schema of one descriptor document.
type descriptorFile struct {
	Sources    []*sourceBlock    `hcl:"source,block"`
	Overlays   []*overlayBlock   `hcl:"overlay,block"`
	Toolchains []*toolchainBlock `hcl:"toolchain,block"`
	Tools      []string          `hcl:"tools,optional"`
	Platforms  []string          `hcl:"platforms,optional"`
	Startup    string            `hcl:"startup,optional"`
}

// sourceBlock pins the package catalog the descriptor resolves against.
type sourceBlock struct {
	Name     string `hcl:"name,label"`
	Location string `hcl:"location"`
	Revision string `hcl:"revision,optional"`
}

// overlayBlock declares an ordered package-set transformation. Overlay
// order in the document is declaration order for the fold.
type overlayBlock struct {
	Name     string          `hcl:"name,label"`
	Packages []*packageBlock `hcl:"package,block"`
}

// packageBlock adds or replaces one package inside an overlay.
type packageBlock struct {
	Name      string   `hcl:"name,label"`
	Version   string   `hcl:"version"`
	Locator   string   `hcl:"locator,optional"`
	Platforms []string `hcl:"platforms,optional"`
}

// toolchainBlock requests one concrete variant of a toolchain family.
type toolchainBlock struct {
	Name       string   `hcl:"name,label"`
	Channel    string   `hcl:"channel"`
	Extensions []string `hcl:"extensions,optional"`
}
