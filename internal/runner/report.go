package runner

import (
	"sort"

	"github.com/vk/shellforge/internal/resolve"
)

// Result is the outcome of resolving one platform: a record or an error,
// never both.
type Result struct {
	Platform string
	Record   *resolve.Record
	Err      error
}

// Report aggregates the per-platform outcomes of one resolution run.
type Report struct {
	RunID    string
	Revision string
	Results  map[string]*Result
}

// Platforms returns every platform in the report, sorted.
func (r *Report) Platforms() []string {
	out := make([]string, 0, len(r.Results))
	for p := range r.Results {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Failed returns the platforms whose resolution failed, sorted.
func (r *Report) Failed() []string {
	var out []string
	for p, res := range r.Results {
		if res.Err != nil {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// OK reports whether every platform resolved.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}
