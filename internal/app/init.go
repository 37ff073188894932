package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/driftwatch/internal/scanner"
	"github.com/blackwell-systems/driftwatch/internal/snapshot"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Record a snapshot of the watched directory tree",
	Long: `Scan the watched directory tree and write a snapshot database listing every
tracked file and its last modification time.

Files are tracked when their name matches one of the watch_masks patterns
from the configuration file (all files when no masks are configured) and
their path is not on the ignore_list. An existing database file at the
target path is renamed to a timestamped .backup file before the new snapshot
is written.`,
	Example: `  # Snapshot the current directory
  driftwatch init

  # Snapshot a tree with an explicit database location
  driftwatch init -d /srv/www -b /var/lib/driftwatch/www.json`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	fmt.Println("Performing initialization ...")
	fmt.Printf("Processing '%s' directory ...\n", cfg.WatchedDir)

	filter := scanner.NewFilter(cfg.WatchMasks, cfg.IgnoreList)
	files, err := scanner.Scan(cfg.WatchedDir, filter)
	if err != nil {
		return fmt.Errorf("failed to scan watched directory: %w", err)
	}

	snap := snapshot.FromScan(files)

	fmt.Printf("Storing timestamp info about %d files ...\n", len(snap))
	backup, err := snapshot.Save(cfg.DatabasePath, snap)
	if backup != "" {
		fmt.Printf("Database file '%s' existed, backed up as '%s'.\n", cfg.DatabasePath, backup)
	}
	if err != nil {
		// A failed backup rename risks losing the only historical copy and
		// aborts the run; a plain write failure is reported and the process
		// still finishes cleanly.
		if errors.Is(err, snapshot.ErrBackup) {
			return fmt.Errorf("failed to back up existing database file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Could not write data into '%s': %v\n", cfg.DatabasePath, err)
		return nil
	}

	fmt.Printf("Finished, database file written: '%s'\n", cfg.DatabasePath)
	return nil
}
