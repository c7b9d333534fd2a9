package normalise

import (
	"sort"
	"strings"
)

// Flatten reduces an arbitrary document tree to a single string: the
// space-joined concatenation of every string leaf, visited depth-first.
// Maps are visited in sorted key order so output is deterministic,
// sequences in index order. Non-string scalars (numbers, booleans,
// null) carry no searchable text and are skipped, as is any
// unrecognized type. Flatten never fails.
func Flatten(v any) string {
	var parts []string

	var walk func(any)
	walk = func(x any) {
		switch t := x.(type) {
		case string:
			parts = append(parts, t)
		case map[string]any:
			keys := make([]string, 0, len(t))
			for k := range t {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				walk(t[k])
			}
		case []any:
			for _, item := range t {
				walk(item)
			}
		case []string:
			for _, item := range t {
				parts = append(parts, item)
			}
		}
	}
	walk(v)

	return strings.Join(parts, " ")
}
