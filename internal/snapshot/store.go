package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

var (
	// ErrLoad wraps any failure to read or parse a snapshot file. A check
	// cannot proceed without a loadable snapshot.
	ErrLoad = errors.New("cannot load snapshot")

	// ErrSave wraps a failure to write the new snapshot file.
	ErrSave = errors.New("cannot save snapshot")

	// ErrBackup indicates the pre-write backup rename failed. Saving anyway
	// could destroy the only historical copy, so the save is aborted.
	ErrBackup = errors.New("cannot back up existing snapshot")
)

// Save writes snap to path as indented JSON. An existing file at path is
// first renamed to <path>.backup.<unix-seconds> and that name is returned;
// if the rename fails the save is aborted with ErrBackup. The new content
// goes to a temporary file that is renamed into place, so a failed write
// never leaves a truncated snapshot behind.
func Save(path string, snap Snapshot) (backup string, err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		backup = fmt.Sprintf("%s.backup.%d", path, time.Now().Unix())
		if err := os.Rename(path, backup); err != nil {
			return "", fmt.Errorf("%w: %v", ErrBackup, err)
		}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return backup, fmt.Errorf("%w: %v", ErrSave, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return backup, fmt.Errorf("%w: %v", ErrSave, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return backup, fmt.Errorf("%w: %v", ErrSave, err)
	}

	return backup, nil
}

// Load reads and parses the snapshot at path. A missing, unreadable, or
// malformed file wraps ErrLoad.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	return snap, nil
}
