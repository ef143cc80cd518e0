package catalog

import "sort"

type pkgKey struct {
	name     string
	platform string
}

// Snapshot is an immutable, point-in-time view of a catalog's contents.
// All reads during one resolution go through a single Snapshot, and overlay
// application derives a new Snapshot instead of mutating the original.
type Snapshot struct {
	revision string
	packages map[pkgKey]Reference
	variants map[string][]Reference
}

// NewSnapshot builds a snapshot from plain package references and toolchain
// variants. The inputs are copied; the caller may reuse its slices.
func NewSnapshot(revision string, packages []Reference, variants []Reference) *Snapshot {
	s := &Snapshot{
		revision: revision,
		packages: make(map[pkgKey]Reference, len(packages)),
		variants: make(map[string][]Reference, len(variants)),
	}
	for _, ref := range packages {
		s.insert(ref)
	}
	for _, ref := range variants {
		if ref.Platform == "" {
			ref.Platform = AnyPlatform
		}
		if ref.Revision == "" {
			ref.Revision = revision
		}
		s.variants[ref.Name] = append(s.variants[ref.Name], ref)
	}
	return s
}

// Revision returns the source revision this snapshot was taken at.
func (s *Snapshot) Revision() string {
	return s.revision
}

// Query looks up a plain package for one platform. A platform-specific
// entry wins over an any-platform entry. The returned reference is concrete:
// its Platform field names the requested platform.
func (s *Snapshot) Query(name, platform string) (Reference, bool) {
	ref, ok := s.packages[pkgKey{name: name, platform: platform}]
	if !ok {
		ref, ok = s.packages[pkgKey{name: name, platform: AnyPlatform}]
	}
	if !ok {
		return Reference{}, false
	}
	ref.Platform = platform
	return ref, true
}

// Variants returns every variant of a toolchain family matching the channel
// and installable on the platform, in a deterministic order.
func (s *Snapshot) Variants(family, channel, platform string) []Reference {
	var out []Reference
	for _, ref := range s.variants[family] {
		if ref.Channel != channel || !ref.matchesPlatform(platform) {
			continue
		}
		ref.Platform = platform
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out
}

// Overlay derives a new snapshot with the given package references added,
// shadowing what was there before. The receiver is left untouched.
//
// Shadowing is layer-aware: an any-platform definition evicts every
// existing entry for that name, platform-specific or not, so a later layer
// always wins over an earlier one regardless of how specifically the
// earlier layer declared the package.
func (s *Snapshot) Overlay(packages []Reference) *Snapshot {
	next := &Snapshot{
		revision: s.revision,
		packages: make(map[pkgKey]Reference, len(s.packages)+len(packages)),
		variants: s.variants,
	}
	for k, v := range s.packages {
		next.packages[k] = v
	}
	for _, ref := range packages {
		if ref.Platform == "" || ref.Platform == AnyPlatform {
			for k := range next.packages {
				if k.name == ref.Name {
					delete(next.packages, k)
				}
			}
		}
		next.insert(ref)
	}
	return next
}

func (s *Snapshot) insert(ref Reference) {
	if ref.Platform == "" {
		ref.Platform = AnyPlatform
	}
	if ref.Revision == "" {
		ref.Revision = s.revision
	}
	s.packages[pkgKey{name: ref.Name, platform: ref.Platform}] = ref
}
