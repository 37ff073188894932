package store

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/driftwatch/internal/drift"
)

// InsertCheckRun records one check invocation together with every classified
// path, and returns the new run ID.
func (s *Store) InsertCheckRun(run *CheckRun, result drift.Result) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO check_runs (ran_at, root, snapshot_path, added, removed, modified)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.RanAt.Format(time.RFC3339),
		run.Root,
		run.SnapshotPath,
		len(result.Added),
		len(result.Removed),
		len(result.Modified),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert check run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get check run id: %w", err)
	}

	insert := func(paths []string, kind string) error {
		for _, p := range paths {
			if _, err := s.db.Exec(
				`INSERT INTO drift_events (run_id, path, kind) VALUES (?, ?, ?)`,
				runID, p, kind,
			); err != nil {
				return fmt.Errorf("failed to insert %s event for %s: %w", kind, p, err)
			}
		}
		return nil
	}
	if err := insert(result.Added, KindAdded); err != nil {
		return 0, err
	}
	if err := insert(result.Removed, KindRemoved); err != nil {
		return 0, err
	}
	if err := insert(result.Modified, KindModified); err != nil {
		return 0, err
	}

	return runID, nil
}

// ListCheckRuns returns up to limit check runs, newest first. A limit of
// zero or less returns all runs.
func (s *Store) ListCheckRuns(limit int) ([]*CheckRun, error) {
	query := `
		SELECT id, ran_at, root, snapshot_path, added, removed, modified
		FROM check_runs
		ORDER BY id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list check runs: %w", err)
	}
	defer rows.Close()

	var runs []*CheckRun
	for rows.Next() {
		var run CheckRun
		var ranAt string
		if err := rows.Scan(&run.ID, &ranAt, &run.Root, &run.SnapshotPath,
			&run.Added, &run.Removed, &run.Modified); err != nil {
			return nil, fmt.Errorf("failed to scan check run: %w", err)
		}
		run.RanAt, err = time.Parse(time.RFC3339, ranAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse check run time %q: %w", ranAt, err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate check runs: %w", err)
	}

	return runs, nil
}

// ListEvents returns every classified path recorded for the given run.
func (s *Store) ListEvents(runID int64) ([]*DriftEvent, error) {
	rows, err := s.db.Query(`
		SELECT run_id, path, kind
		FROM drift_events
		WHERE run_id = ?
		ORDER BY kind, path`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drift events: %w", err)
	}
	defer rows.Close()

	var events []*DriftEvent
	for rows.Next() {
		var ev DriftEvent
		if err := rows.Scan(&ev.RunID, &ev.Path, &ev.Kind); err != nil {
			return nil, fmt.Errorf("failed to scan drift event: %w", err)
		}
		events = append(events, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate drift events: %w", err)
	}

	return events, nil
}
