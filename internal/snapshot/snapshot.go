// Package snapshot defines the persisted inventory of tracked files and its
// on-disk JSON store. A snapshot maps each absolute file path to the
// modification time recorded when it was taken; it is the only durable state
// driftwatch keeps.
package snapshot

import (
	"time"

	"github.com/blackwell-systems/driftwatch/internal/scanner"
)

// HumanTimeFormat is the layout of the informational timestamp stored next
// to the numeric one. The numeric value is authoritative; the human form is
// recomputed from it in local time.
const HumanTimeFormat = "2006-01-02 15:04:05"

// Record holds the recorded state of one tracked file.
type Record struct {
	LastModified      float64 `json:"last_modif"`
	LastModifiedHuman string  `json:"last_modif_human"`
}

// Snapshot maps absolute file paths to their recorded modification state.
type Snapshot map[string]Record

// NewRecord builds a record for the given modification time, deriving the
// human-readable form.
func NewRecord(modTime float64) Record {
	sec := int64(modTime)
	nsec := int64((modTime - float64(sec)) * 1e9)
	return Record{
		LastModified:      modTime,
		LastModifiedHuman: time.Unix(sec, nsec).Format(HumanTimeFormat),
	}
}

// FromScan builds a snapshot from a filtered scan of the watched tree.
func FromScan(files []scanner.File) Snapshot {
	snap := make(Snapshot, len(files))
	for _, f := range files {
		snap[f.Path] = NewRecord(f.ModTime)
	}
	return snap
}
