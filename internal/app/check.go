package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/driftwatch/internal/config"
	"github.com/blackwell-systems/driftwatch/internal/drift"
	"github.com/blackwell-systems/driftwatch/internal/output"
	"github.com/blackwell-systems/driftwatch/internal/scanner"
	"github.com/blackwell-systems/driftwatch/internal/snapshot"
	"github.com/blackwell-systems/driftwatch/internal/store"
)

var (
	checkFailOnDrift bool
	checkLogHistory  bool
	checkHistoryDB   string

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Report drift against the recorded snapshot",
		Long: `Load the snapshot database, re-scan the watched directory tree, and report
every tracked file that was removed or modified since the snapshot was
taken, plus every currently tracked file the snapshot does not know.

Removal and modification are checked for every file in the snapshot, even
when the current masks or ignore list would exclude it; only additions are
limited to currently tracked files. The report is printed even when no
drift is found, with all three sections empty.`,
		Example: `  # Check the current directory against its snapshot
  driftwatch check

  # Check a tree and fail the invocation when drift is found
  driftwatch check -d /srv/www -b /var/lib/driftwatch/www.json --fail-on-drift

  # Record the result in the check history
  driftwatch check --log-history`,
		RunE: runCheck,
	}
)

func init() {
	checkCmd.Flags().BoolVar(&checkFailOnDrift, "fail-on-drift", false,
		"exit with a non-zero status when any drift is reported")
	checkCmd.Flags().BoolVar(&checkLogHistory, "log-history", false,
		"record this check in the history database")
	checkCmd.Flags().StringVar(&checkHistoryDB, "history-db", "",
		"history database path (default: ~/.driftwatch/history.db)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	fmt.Printf("Performing check ... (database file: '%s')\n", cfg.DatabasePath)

	snap, err := snapshot.Load(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to read database file: %w", err)
	}

	filter := scanner.NewFilter(cfg.WatchMasks, cfg.IgnoreList)
	files, err := scanner.Scan(cfg.WatchedDir, filter)
	if err != nil {
		return fmt.Errorf("failed to scan watched directory: %w", err)
	}

	res := drift.Diff(snap, scanner.Paths(files), drift.OSModTime)

	fmt.Print(output.RenderReport(res, output.IsColorEnabled()))

	if checkLogHistory {
		// Best effort: a history failure never changes the check outcome.
		if err := logHistory(cfg, res); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record check history: %v\n", err)
		}
	}

	if checkFailOnDrift && !res.Empty() {
		return fmt.Errorf("drift detected: %d added, %d removed, %d modified",
			len(res.Added), len(res.Removed), len(res.Modified))
	}

	return nil
}

// logHistory appends one check run to the history database.
func logHistory(cfg config.Config, res drift.Result) error {
	dbPath := checkHistoryDB
	if dbPath == "" {
		var err error
		dbPath, err = getDefaultHistoryDB()
		if err != nil {
			return err
		}
	}

	db, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return err
	}

	run := &store.CheckRun{
		RanAt:        time.Now(),
		Root:         cfg.WatchedDir,
		SnapshotPath: cfg.DatabasePath,
	}
	if _, err := db.InsertCheckRun(run, res); err != nil {
		return err
	}

	return nil
}
