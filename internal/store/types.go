package store

import "time"

// CheckRun is one recorded invocation of the check command.
type CheckRun struct {
	ID           int64
	RanAt        time.Time
	Root         string
	SnapshotPath string
	Added        int
	Removed      int
	Modified     int
}

// Drift event kinds.
const (
	KindAdded    = "added"
	KindRemoved  = "removed"
	KindModified = "modified"
)

// DriftEvent is one classified path from a recorded check run.
type DriftEvent struct {
	RunID int64
	Path  string
	Kind  string // KindAdded, KindRemoved or KindModified
}
