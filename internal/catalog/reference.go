package catalog

// AnyPlatform marks a package definition that applies to every platform.
const AnyPlatform = "*"

// Reference is a concrete, installable tool reference: one package at one
// version for one platform, pinned to the source revision it came from.
// Channel and Extensions are set only for toolchain variants.
type Reference struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Platform   string   `json:"platform"`
	Locator    string   `json:"locator,omitempty"`
	Revision   string   `json:"revision,omitempty"`
	Channel    string   `json:"channel,omitempty"`
	Extensions []string `json:"extensions,omitempty"`
}

// matchesPlatform reports whether the reference is installable on the given
// platform.
func (r Reference) matchesPlatform(platform string) bool {
	return r.Platform == AnyPlatform || r.Platform == platform
}
