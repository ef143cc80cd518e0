package resolve

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/shellforge/internal/catalog"
	"github.com/vk/shellforge/internal/config"
)

const (
	linuxX64  = "x86_64-linux"
	darwinArm = "aarch64-darwin"
)

// testSnapshot builds a snapshot with openssl and pkg-config for linux,
// openssl only for darwin, and two nightly rust variants.
func testSnapshot() *catalog.Snapshot {
	packages := []catalog.Reference{
		{Name: "openssl", Version: "3.2.1", Platform: linuxX64, Locator: "pkgs/openssl-linux"},
		{Name: "openssl", Version: "3.2.1", Platform: darwinArm, Locator: "pkgs/openssl-darwin"},
		{Name: "pkg-config", Version: "0.29.2", Platform: linuxX64, Locator: "pkgs/pkg-config-linux"},
	}
	variants := []catalog.Reference{
		{Name: "rust", Version: "2024-01-01", Channel: "nightly", Locator: "toolchains/rust-2024-01-01", Extensions: []string{"rust-src", "rust-analyzer"}},
		{Name: "rust", Version: "2024-02-01", Channel: "nightly", Locator: "toolchains/rust-2024-02-01", Extensions: []string{"rust-src", "rust-analyzer"}},
	}
	return catalog.NewSnapshot("rev123", packages, variants)
}

func TestResolveExampleDescriptor(t *testing.T) {
	desc := &config.Descriptor{
		Source: &config.SourceRef{Name: "pkgs", Location: "mem://", Revision: "rev123"},
		Tools:  []string{"openssl", "pkg-config"},
		Toolchains: []*config.ToolchainSelector{
			{Name: "rust", Channel: "latest-nightly", Extensions: []string{"rust-src", "rust-analyzer"}},
		},
		Startup: "noop",
	}

	rec, err := Resolve(context.Background(), desc, linuxX64, testSnapshot())
	require.NoError(t, err)

	require.Len(t, rec.Tools, 3)
	assert.Equal(t, "openssl", rec.Tools[0].Name)
	assert.Equal(t, "pkg-config", rec.Tools[1].Name)
	assert.Equal(t, "rust", rec.Tools[2].Name)
	assert.Equal(t, "2024-02-01", rec.Tools[2].Version, "latest nightly must win")
	assert.Equal(t, []string{"rust-src", "rust-analyzer"}, rec.Tools[2].Extensions)
	assert.Equal(t, "noop", rec.Startup)
	assert.Equal(t, []string{"noop"}, rec.StartupArgv)
	for _, ref := range rec.Tools {
		assert.Equal(t, linuxX64, ref.Platform)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	desc := &config.Descriptor{
		Source: &config.SourceRef{Name: "pkgs", Location: "mem://"},
		Tools:  []string{"openssl", "pkg-config"},
		Toolchains: []*config.ToolchainSelector{
			{Name: "rust", Channel: "latest-nightly"},
		},
		Startup: "exec zsh",
	}
	snap := testSnapshot()

	first, err := Resolve(context.Background(), desc, linuxX64, snap)
	require.NoError(t, err)
	second, err := Resolve(context.Background(), desc, linuxX64, snap)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("records differ between identical resolutions (-first +second):\n%s", diff)
	}
}

func TestOverlayOrderLastWriteWins(t *testing.T) {
	desc := &config.Descriptor{
		Source: &config.SourceRef{Name: "pkgs", Location: "mem://"},
		Overlays: []*config.Overlay{
			{Name: "first", Packages: []*config.PackageDef{{Name: "x", Version: "1.0.0", Locator: "overlay-one/x"}}},
			{Name: "second", Packages: []*config.PackageDef{{Name: "x", Version: "2.0.0", Locator: "overlay-two/x"}}},
		},
		Tools: []string{"x"},
	}

	rec, err := Resolve(context.Background(), desc, linuxX64, testSnapshot())
	require.NoError(t, err)

	require.Len(t, rec.Tools, 1)
	assert.Equal(t, "2.0.0", rec.Tools[0].Version)
	assert.Equal(t, "overlay-two/x", rec.Tools[0].Locator)
}

func TestOverlayDoesNotMutateSnapshot(t *testing.T) {
	snap := testSnapshot()
	desc := &config.Descriptor{
		Source: &config.SourceRef{Name: "pkgs", Location: "mem://"},
		Overlays: []*config.Overlay{
			{Name: "pin", Packages: []*config.PackageDef{{Name: "openssl", Version: "9.9.9"}}},
		},
		Tools: []string{"openssl"},
	}

	rec, err := Resolve(context.Background(), desc, linuxX64, snap)
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", rec.Tools[0].Version)

	// The shared snapshot must still hold the original definition.
	ref, ok := snap.Query("openssl", linuxX64)
	require.True(t, ok)
	assert.Equal(t, "3.2.1", ref.Version)
}

func TestOverlayShadowsPlatformSpecificBase(t *testing.T) {
	desc := &config.Descriptor{
		Source: &config.SourceRef{Name: "pkgs", Location: "mem://"},
		Overlays: []*config.Overlay{
			{Name: "pin", Packages: []*config.PackageDef{{Name: "openssl", Version: "9.9.9"}}},
		},
		Tools: []string{"openssl"},
	}

	// The base snapshot defines openssl per platform; the overlay entry
	// names no platforms, so it must win on every one of them.
	for _, p := range []string{linuxX64, darwinArm} {
		rec, err := Resolve(context.Background(), desc, p, testSnapshot())
		require.NoError(t, err, "platform %s", p)
		require.Len(t, rec.Tools, 1)
		assert.Equal(t, "9.9.9", rec.Tools[0].Version, "platform %s", p)
	}
}

func TestUnresolvedToolScopedToPlatform(t *testing.T) {
	desc := &config.Descriptor{
		Source: &config.SourceRef{Name: "pkgs", Location: "mem://"},
		Tools:  []string{"pkg-config"},
	}
	snap := testSnapshot()

	// pkg-config exists for linux but not darwin.
	rec, err := Resolve(context.Background(), desc, linuxX64, snap)
	require.NoError(t, err)
	assert.Len(t, rec.Tools, 1)

	_, err = Resolve(context.Background(), desc, darwinArm, snap)
	var unresolved *UnresolvedToolError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "pkg-config", unresolved.Tool)
	assert.Equal(t, darwinArm, unresolved.Platform)
}

func TestSelectorNoMatchingVariant(t *testing.T) {
	desc := &config.Descriptor{
		Source: &config.SourceRef{Name: "pkgs", Location: "mem://"},
		Toolchains: []*config.ToolchainSelector{
			{Name: "rust", Channel: "latest-beta"},
		},
	}

	_, err := Resolve(context.Background(), desc, linuxX64, testSnapshot())
	var noMatch *NoMatchingVariantError
	require.ErrorAs(t, err, &noMatch)
	assert.Equal(t, "rust", noMatch.Toolchain)
	assert.Equal(t, "latest-beta", noMatch.Channel)
}

func TestSelectorMissingExtension(t *testing.T) {
	desc := &config.Descriptor{
		Source: &config.SourceRef{Name: "pkgs", Location: "mem://"},
		Toolchains: []*config.ToolchainSelector{
			{Name: "rust", Channel: "latest-nightly", Extensions: []string{"miri"}},
		},
	}

	_, err := Resolve(context.Background(), desc, linuxX64, testSnapshot())
	var noMatch *NoMatchingVariantError
	require.ErrorAs(t, err, &noMatch)
}

func TestSelectorAmbiguousTie(t *testing.T) {
	variants := []catalog.Reference{
		{Name: "rust", Version: "2024-02-01", Channel: "nightly", Locator: "mirrors/a/rust"},
		{Name: "rust", Version: "2024-02-01", Channel: "nightly", Locator: "mirrors/b/rust"},
	}
	snap := catalog.NewSnapshot("rev123", nil, variants)
	desc := &config.Descriptor{
		Source: &config.SourceRef{Name: "pkgs", Location: "mem://"},
		Toolchains: []*config.ToolchainSelector{
			{Name: "rust", Channel: "latest-nightly"},
		},
	}

	_, err := Resolve(context.Background(), desc, linuxX64, snap)
	var ambiguous *AmbiguousSelectorError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.Candidates, 2)
}

func TestSelectorIdenticalDuplicatesAreNotAmbiguous(t *testing.T) {
	variants := []catalog.Reference{
		{Name: "rust", Version: "2024-02-01", Channel: "nightly", Locator: "toolchains/rust"},
		{Name: "rust", Version: "2024-02-01", Channel: "nightly", Locator: "toolchains/rust"},
	}
	snap := catalog.NewSnapshot("rev123", nil, variants)
	desc := &config.Descriptor{
		Source: &config.SourceRef{Name: "pkgs", Location: "mem://"},
		Toolchains: []*config.ToolchainSelector{
			{Name: "rust", Channel: "latest-nightly"},
		},
	}

	rec, err := Resolve(context.Background(), desc, linuxX64, snap)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", rec.Tools[0].Version)
}

func TestLatestSelectionOverSemanticVersions(t *testing.T) {
	variants := []catalog.Reference{
		{Name: "go", Version: "1.2.0", Channel: "stable"},
		{Name: "go", Version: "1.3.0", Channel: "stable"},
		{Name: "go", Version: "1.1.0", Channel: "stable"},
	}
	snap := catalog.NewSnapshot("rev123", nil, variants)
	desc := &config.Descriptor{
		Source: &config.SourceRef{Name: "pkgs", Location: "mem://"},
		Toolchains: []*config.ToolchainSelector{
			{Name: "go", Channel: "latest-stable"},
		},
	}

	rec, err := Resolve(context.Background(), desc, linuxX64, snap)
	require.NoError(t, err)
	require.Len(t, rec.Tools, 1)
	assert.Equal(t, "1.3.0", rec.Tools[0].Version)
}

func TestResolveRejectsUnterminatedStartup(t *testing.T) {
	desc := &config.Descriptor{
		Source:  &config.SourceRef{Name: "pkgs", Location: "mem://"},
		Startup: "echo 'unterminated",
	}

	_, err := Resolve(context.Background(), desc, linuxX64, testSnapshot())
	assert.ErrorContains(t, err, "invalid startup action")
}
