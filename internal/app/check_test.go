package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blackwell-systems/driftwatch/internal/snapshot"
)

func TestCheckCommand(t *testing.T) {
	if checkCmd.Use != "check" {
		t.Errorf("expected Use to be 'check', got '%s'", checkCmd.Use)
	}
	if checkCmd.Short == "" {
		t.Error("expected Short description to be set")
	}
	if checkCmd.Long == "" {
		t.Error("expected Long description to be set")
	}
	if checkCmd.Example == "" {
		t.Error("expected Example to be set")
	}
	if checkCmd.RunE == nil {
		t.Error("expected RunE to be set")
	}
}

func TestCheckCommandFlags(t *testing.T) {
	for _, name := range []string{"fail-on-drift", "log-history", "history-db"} {
		flag := checkCmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("expected flag '%s' to be registered", name)
			continue
		}
		if flag.Usage == "" {
			t.Errorf("expected flag '%s' to have usage text", name)
		}
	}
}

// setFlags points the persistent flag values at a test tree and restores
// them afterwards.
func setFlags(t *testing.T, cfg, dir, db string) {
	t.Helper()
	prevConfig, prevDir, prevDB := configFile, watchedDir, database
	prevFail, prevLog, prevHistDB := checkFailOnDrift, checkLogHistory, checkHistoryDB
	configFile, watchedDir, database = cfg, dir, db
	t.Cleanup(func() {
		configFile, watchedDir, database = prevConfig, prevDir, prevDB
		checkFailOnDrift, checkLogHistory, checkHistoryDB = prevFail, prevLog, prevHistDB
	})
}

func TestInitThenCheck_NoDrift(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	setFlags(t, "", dir, db)

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit() error: %v", err)
	}
	if _, err := os.Stat(db); err != nil {
		t.Fatalf("database file not written: %v", err)
	}

	// With no filesystem change, check must succeed even with --fail-on-drift.
	checkFailOnDrift = true
	if err := runCheck(checkCmd, nil); err != nil {
		t.Errorf("runCheck() error: %v, want nil for unchanged tree", err)
	}
}

func TestInitThenCheck_DriftDetected(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(t.TempDir(), "db.json")
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	setFlags(t, "", dir, db)

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit() error: %v", err)
	}

	// Push the file's mtime forward so the recorded timestamp disagrees.
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	checkFailOnDrift = true
	if err := runCheck(checkCmd, nil); err == nil {
		t.Error("runCheck() error = nil, want drift failure with --fail-on-drift")
	}
}

func TestCheck_MissingDatabase(t *testing.T) {
	dir := t.TempDir()
	setFlags(t, "", dir, filepath.Join(dir, "missing.json"))

	err := runCheck(checkCmd, nil)
	if !errors.Is(err, snapshot.ErrLoad) {
		t.Errorf("runCheck() error = %v, want ErrLoad for missing database", err)
	}
}

func TestCheck_MissingWatchedDirectory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "db.json")
	if _, err := snapshot.Save(db, snapshot.Snapshot{}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	setFlags(t, "", filepath.Join(t.TempDir(), "nope"), db)

	if err := runCheck(checkCmd, nil); err == nil {
		t.Error("runCheck() error = nil, want scan failure for missing directory")
	}
}

func TestCheck_LogHistory(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(t.TempDir(), "db.json")
	histDB := filepath.Join(t.TempDir(), "history.db")
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	setFlags(t, "", dir, db)

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit() error: %v", err)
	}

	checkLogHistory = true
	checkHistoryDB = histDB
	if err := runCheck(checkCmd, nil); err != nil {
		t.Fatalf("runCheck() error: %v", err)
	}

	if _, err := os.Stat(histDB); err != nil {
		t.Errorf("history database not created: %v", err)
	}
}
