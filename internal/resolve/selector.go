package resolve

import (
	"strings"

	"github.com/vk/shellforge/internal/catalog"
	"github.com/vk/shellforge/internal/config"
)

// latestPrefix marks a channel request that floats to the newest variant of
// the underlying channel, e.g. "latest-nightly" over the "nightly" channel.
// Selection still only reads the snapshot, so "latest" is pinned to the
// snapshot's state.
const latestPrefix = "latest-"

// selectVariant evaluates one toolchain selector against the overlaid
// package set restricted to the platform. Candidates must match the channel
// and offer every requested extension; among qualifying candidates the
// highest version under CompareVersions wins. A tie between distinct
// references is an AmbiguousSelectorError.
func selectVariant(snap *catalog.Snapshot, sel *config.ToolchainSelector, platform string) (catalog.Reference, error) {
	channel := strings.TrimPrefix(sel.Channel, latestPrefix)

	var candidates []catalog.Reference
	for _, ref := range snap.Variants(sel.Name, channel, platform) {
		if offersExtensions(ref, sel.Extensions) {
			candidates = append(candidates, ref)
		}
	}
	if len(candidates) == 0 {
		return catalog.Reference{}, &NoMatchingVariantError{Toolchain: sel.Name, Channel: sel.Channel, Platform: platform}
	}

	best := candidates[0]
	tied := false
	for _, ref := range candidates[1:] {
		switch CompareVersions(ref.Version, best.Version) {
		case 1:
			best = ref
			tied = false
		case 0:
			if ref.Locator != best.Locator {
				tied = true
			}
		}
	}
	if tied {
		var versions []string
		for _, ref := range candidates {
			if CompareVersions(ref.Version, best.Version) == 0 {
				versions = append(versions, ref.Version)
			}
		}
		return catalog.Reference{}, &AmbiguousSelectorError{
			Toolchain:  sel.Name,
			Channel:    sel.Channel,
			Platform:   platform,
			Candidates: versions,
		}
	}

	// The resolved reference carries the extensions the selector asked
	// for, not everything the variant could offer.
	best.Extensions = append([]string(nil), sel.Extensions...)
	return best, nil
}

// offersExtensions reports whether the variant offers every requested
// extension.
func offersExtensions(ref catalog.Reference, requested []string) bool {
	if len(requested) == 0 {
		return true
	}
	offered := make(map[string]struct{}, len(ref.Extensions))
	for _, ext := range ref.Extensions {
		offered[ext] = struct{}{}
	}
	for _, ext := range requested {
		if _, ok := offered[ext]; !ok {
			return false
		}
	}
	return true
}
