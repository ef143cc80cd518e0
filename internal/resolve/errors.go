package resolve

import (
	"fmt"
	"strings"
)

// UnresolvedToolError reports a plain tool request absent from the overlaid
// package set for one platform. It aborts resolution for that platform
// only.
type UnresolvedToolError struct {
	Tool     string
	Platform string
}

func (e *UnresolvedToolError) Error() string {
	return fmt.Sprintf("tool %q is not available for platform %q", e.Tool, e.Platform)
}

// NoMatchingVariantError reports a toolchain selector with zero qualifying
// candidates on one platform.
type NoMatchingVariantError struct {
	Toolchain string
	Channel   string
	Platform  string
}

func (e *NoMatchingVariantError) Error() string {
	return fmt.Sprintf("toolchain %q has no variant matching channel %q for platform %q", e.Toolchain, e.Channel, e.Platform)
}

// AmbiguousSelectorError reports a toolchain selector whose candidates tie
// under the version ordering, so no single variant can be picked
// deterministically.
type AmbiguousSelectorError struct {
	Toolchain  string
	Channel    string
	Platform   string
	Candidates []string
}

func (e *AmbiguousSelectorError) Error() string {
	return fmt.Sprintf("toolchain %q channel %q is ambiguous for platform %q: candidates %s tie",
		e.Toolchain, e.Channel, e.Platform, strings.Join(e.Candidates, ", "))
}
