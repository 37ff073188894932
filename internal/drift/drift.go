// Package drift computes the added/removed/modified classification between a
// recorded snapshot and the current state of the watched tree.
package drift

import (
	"os"

	"github.com/blackwell-systems/driftwatch/internal/scanner"
	"github.com/blackwell-systems/driftwatch/internal/snapshot"
)

// Result holds the three disjoint drift classifications produced by one
// check. It lives only for the duration of that check and is never
// persisted. The slices are unordered; rendering sorts them.
type Result struct {
	Added    []string
	Removed  []string
	Modified []string
}

// Empty reports whether the check found no drift at all.
func (r Result) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Modified) == 0
}

// ModTimeFunc reads the current modification time of one tracked file.
type ModTimeFunc func(path string) (float64, error)

// OSModTime stats path on the local filesystem.
func OSModTime(path string) (float64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return scanner.ModTimeSeconds(fi.ModTime()), nil
}

// Diff compares the recorded snapshot against the current filtered scan.
//
// Every snapshot key is checked directly against the filesystem: a failed
// stat classifies the path as removed (without more information a permission
// error cannot be told apart from a deletion, so both fold into removed),
// and a timestamp that differs from the recorded value in any way, with no
// tolerance window, classifies it as modified. Paths in current that the
// snapshot does not know are added.
//
// Note the asymmetry: current is the filtered inventory, but snapshot keys
// are checked unfiltered. A tracked file that today's masks or ignore list
// would exclude is therefore still checked for removal and modification,
// while it can never reappear as added.
func Diff(old snapshot.Snapshot, current []string, modTime ModTimeFunc) Result {
	var res Result

	for path, rec := range old {
		mt, err := modTime(path)
		if err != nil {
			res.Removed = append(res.Removed, path)
			continue
		}
		if mt != rec.LastModified {
			res.Modified = append(res.Modified, path)
		}
	}

	for _, path := range current {
		if _, tracked := old[path]; !tracked {
			res.Added = append(res.Added, path)
		}
	}

	return res
}
