package scanner

import (
	"path"
	"path/filepath"
)

// Filter decides whether a discovered file belongs in the tracked inventory.
// It combines a set of filename mask patterns with an ignore list of
// absolute paths. The zero-value Filter includes everything.
type Filter struct {
	masks  []string
	ignore map[string]struct{}
}

// NewFilter builds a Filter from mask patterns and ignored absolute paths.
func NewFilter(masks, ignore []string) *Filter {
	f := &Filter{
		masks:  masks,
		ignore: make(map[string]struct{}, len(ignore)),
	}
	for _, p := range ignore {
		f.ignore[p] = struct{}{}
	}
	return f
}

// Include reports whether p passes the filter. The ignore list wins over any
// mask match. An empty mask set includes every name; otherwise the base name
// must match at least one mask with shell-glob semantics (*, ?, character
// classes). A malformed mask pattern simply never matches.
func (f *Filter) Include(p string) bool {
	if _, ok := f.ignore[p]; ok {
		return false
	}
	if len(f.masks) == 0 {
		return true
	}
	base := filepath.Base(p)
	for _, mask := range f.masks {
		if ok, err := path.Match(mask, base); err == nil && ok {
			return true
		}
	}
	return false
}
