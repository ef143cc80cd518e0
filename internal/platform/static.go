package platform

import (
	"context"
	"sort"
)

// Static is an Enumerator over a fixed platform list. With no platforms
// given it falls back to DefaultPlatforms.
type Static struct {
	platforms []string
}

// NewStatic creates a static enumerator. The input is copied.
func NewStatic(platforms ...string) *Static {
	return &Static{platforms: append([]string(nil), platforms...)}
}

// Enumerate implements Enumerator. The output is deduplicated and sorted so
// callers see a stable order regardless of how the set was declared.
func (s *Static) Enumerate(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	platforms := s.platforms
	if len(platforms) == 0 {
		platforms = DefaultPlatforms
	}

	seen := make(map[string]struct{}, len(platforms))
	var out []string
	for _, p := range platforms {
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	if len(out) == 0 {
		return nil, &DiscoveryFailedError{Reason: "platform list is empty"}
	}

	sort.Strings(out)
	return out, nil
}
