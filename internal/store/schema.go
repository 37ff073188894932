package store

const schema = `
CREATE TABLE IF NOT EXISTS check_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    ran_at TIMESTAMP NOT NULL,
    root TEXT NOT NULL,
    snapshot_path TEXT NOT NULL,
    added INTEGER NOT NULL,
    removed INTEGER NOT NULL,
    modified INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS drift_events (
    run_id INTEGER NOT NULL,
    path TEXT NOT NULL,
    kind TEXT NOT NULL,
    FOREIGN KEY (run_id) REFERENCES check_runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_events_run ON drift_events(run_id);
CREATE INDEX IF NOT EXISTS idx_runs_ran_at ON check_runs(ran_at);
`
