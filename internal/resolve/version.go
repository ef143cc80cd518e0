package resolve

import (
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// CompareVersions orders two version strings deterministically. When both
// parse as versions they are compared semantically, so "1.10" sorts above
// "1.9". Otherwise the comparison falls back to byte-wise lexicographic
// order, which ranks ISO-dated channel tags such as "2024-02-01" correctly.
// Returns -1, 0, or 1.
func CompareVersions(a, b string) int {
	va, errA := goversion.NewVersion(a)
	vb, errB := goversion.NewVersion(b)
	if errA == nil && errB == nil {
		return va.Compare(vb)
	}
	return strings.Compare(a, b)
}
