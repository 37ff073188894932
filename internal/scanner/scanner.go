// Package scanner walks a watched directory tree and builds the filtered
// file inventory that the init and check commands operate on.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// ErrNotDirectory is returned when the watched root is missing or is not a
// directory. It aborts the operation before any diffing happens.
var ErrNotDirectory = errors.New("watched path is not a directory")

// File is one entry in the scanned inventory.
type File struct {
	Path    string  // absolute path
	ModTime float64 // seconds since the epoch, fractional
}

// ModTimeSeconds converts a modification time to the fractional-second form
// stored in snapshots and compared by the drift engine.
func ModTimeSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// Scan walks the tree rooted at root and returns every regular file that
// passes filter, with its modification time. Directories are traversed but
// never yielded; a symlink to a regular file is yielded with the target's
// timestamp. The full inventory is materialized before returning and its
// ordering is not significant.
//
// Files that vanish while the walk is in progress are skipped rather than
// failing the scan; the next check will classify them.
func Scan(root string, filter *Filter) ([]File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	var files []File
	walkErr := filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}

		var fi fs.FileInfo
		if d.Type()&fs.ModeSymlink != 0 {
			// Follow the link; only symlinks to regular files are tracked.
			fi, err = os.Stat(p)
		} else if d.Type().IsRegular() {
			fi, err = d.Info()
		} else {
			return nil
		}
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !fi.Mode().IsRegular() {
			return nil
		}

		if !filter.Include(p) {
			return nil
		}
		files = append(files, File{Path: p, ModTime: ModTimeSeconds(fi.ModTime())})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", abs, walkErr)
	}

	return files, nil
}

// Paths returns just the path of every scanned file, in scan order.
func Paths(files []File) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths
}
