package catalog

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// catalogDocument is the HCL schema for a catalog file: the packages and
// toolchain variants one source exposes.
type catalogDocument struct {
	Revision string          `hcl:"revision,optional"`
	Packages []*packageBlock `hcl:"package,block"`
	Variants []*variantBlock `hcl:"variant,block"`
}

type packageBlock struct {
	Name      string   `hcl:"name,label"`
	Version   string   `hcl:"version"`
	Locator   string   `hcl:"locator,optional"`
	Platforms []string `hcl:"platforms,optional"`
}

type variantBlock struct {
	Name       string   `hcl:"name,label"`
	Channel    string   `hcl:"channel"`
	Version    string   `hcl:"version"`
	Locator    string   `hcl:"locator,optional"`
	Platforms  []string `hcl:"platforms,optional"`
	Extensions []string `hcl:"extensions,optional"`
}

// parseDocument decodes one catalog document. The returned revision is the
// document's own, or fallbackRevision when the document does not pin one.
func parseDocument(filename string, src []byte, fallbackRevision string) (packages, variants []Reference, revision string, err error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, nil, "", fmt.Errorf("failed to parse catalog %s: %w", filename, diags)
	}

	var doc catalogDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, nil, "", fmt.Errorf("failed to decode catalog %s: %w", filename, diags)
	}

	revision = doc.Revision
	if revision == "" {
		revision = fallbackRevision
	}

	for _, pkg := range doc.Packages {
		for _, platform := range platformsOrAny(pkg.Platforms) {
			packages = append(packages, Reference{
				Name:     pkg.Name,
				Version:  pkg.Version,
				Platform: platform,
				Locator:  pkg.Locator,
				Revision: revision,
			})
		}
	}
	for _, v := range doc.Variants {
		for _, platform := range platformsOrAny(v.Platforms) {
			variants = append(variants, Reference{
				Name:       v.Name,
				Version:    v.Version,
				Platform:   platform,
				Locator:    v.Locator,
				Revision:   revision,
				Channel:    v.Channel,
				Extensions: v.Extensions,
			})
		}
	}
	return packages, variants, revision, nil
}

func platformsOrAny(platforms []string) []string {
	if len(platforms) == 0 {
		return []string{AnyPlatform}
	}
	return platforms
}
