package dataset

import (
	"sort"
	"strings"

	"github.com/wdm0006/tjstuff/pkg/pitch"
)

// Filter selects pitch types for the table view. The zero value is NoFilter.
type Filter struct {
	active    bool
	selectors []string
}

// NoFilter keeps every pitch type.
func NoFilter() Filter { return Filter{} }

// Only keeps a single pitch type, given as a code or a display name.
func Only(selector string) Filter {
	return Filter{active: true, selectors: []string{selector}}
}

// AnyOf keeps the listed pitch types. An empty list keeps nothing.
func AnyOf(selectors ...string) Filter {
	return Filter{active: true, selectors: append([]string(nil), selectors...)}
}

// ParseFilter builds a filter from request values; nil means no filter.
func ParseFilter(values []string) Filter {
	if values == nil {
		return NoFilter()
	}
	return AnyOf(values...)
}

func (f Filter) Active() bool { return f.active }

// Codes returns the resolved pitch codes, deduplicated and sorted.
func (f Filter) Codes() []string {
	seen := make(map[string]struct{}, len(f.selectors))
	out := make([]string, 0, len(f.selectors))
	for _, s := range f.selectors {
		code := pitch.Resolve(s)
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Key identifies the filter in cache keys. Equivalent selections share a key.
func (f Filter) Key() string {
	if !f.active {
		return "*"
	}
	return "[" + strings.Join(f.Codes(), ",") + "]"
}

func (f Filter) String() string { return f.Key() }
