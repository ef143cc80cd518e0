package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/shellforge/internal/config"
)

const catalogDoc = `
revision = "rev123"

package "openssl" {
  version   = "3.2.1"
  locator   = "pkgs/openssl"
  platforms = ["x86_64-linux", "aarch64-darwin"]
}

package "git" {
  version = "2.44.0"
}

variant "rust" {
  channel    = "nightly"
  version    = "2024-02-01"
  extensions = ["rust-src", "rust-analyzer"]
}
`

func writeCatalog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSnapshotSingleDocument(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), "catalog.hcl", catalogDoc)

	src, err := NewFile(&config.SourceRef{Name: "pkgs", Location: path})
	require.NoError(t, err)

	snap, err := src.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rev123", snap.Revision())

	ref, ok := snap.Query("openssl", "x86_64-linux")
	require.True(t, ok)
	assert.Equal(t, "3.2.1", ref.Version)
	assert.Equal(t, "rev123", ref.Revision)

	_, ok = snap.Query("openssl", "riscv64-linux")
	assert.False(t, ok, "platform not listed in the package block")

	_, ok = snap.Query("git", "riscv64-linux")
	assert.True(t, ok, "package without platforms applies everywhere")

	variants := snap.Variants("rust", "nightly", "x86_64-linux")
	require.Len(t, variants, 1)
	assert.Equal(t, []string{"rust-src", "rust-analyzer"}, variants[0].Extensions)
}

func TestFileSnapshotDirectory(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "a.hcl", `package "alpha" { version = "1.0.0" }`)
	writeCatalog(t, dir, "b.hcl", `package "beta" { version = "2.0.0" }`)

	src, err := NewFile(&config.SourceRef{Name: "pkgs", Location: "file://" + dir, Revision: "pinned"})
	require.NoError(t, err)

	snap, err := src.Snapshot(context.Background())
	require.NoError(t, err)

	_, ok := snap.Query("alpha", "x86_64-linux")
	assert.True(t, ok)
	_, ok = snap.Query("beta", "x86_64-linux")
	assert.True(t, ok)
	assert.Equal(t, "pinned", snap.Revision())
}

func TestFileSnapshotMissingPath(t *testing.T) {
	src, err := NewFile(&config.SourceRef{Name: "pkgs", Location: filepath.Join(t.TempDir(), "nope.hcl")})
	require.NoError(t, err)

	_, err = src.Snapshot(context.Background())
	var unavailable *UnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestFileSnapshotMalformedDocument(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), "broken.hcl", `package "x" {`)

	src, err := NewFile(&config.SourceRef{Name: "pkgs", Location: path})
	require.NoError(t, err)

	_, err = src.Snapshot(context.Background())
	assert.ErrorContains(t, err, "failed to parse")
}
