package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/driftwatch/internal/output"
	"github.com/blackwell-systems/driftwatch/internal/store"
)

var (
	historyLimit  int
	historyDB     string
	historyEvents int64

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "List recorded check runs",
		Long: `List check runs previously recorded with 'check --log-history', newest
first, with their added/removed/modified counts. Use --events to list the
classified paths of one run.`,
		Example: `  # Show the last ten recorded checks
  driftwatch history

  # Show the classified paths of run 3
  driftwatch history --events 3`,
		RunE: runHistory,
	}
)

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "maximum number of runs to list (0 for all)")
	historyCmd.Flags().StringVar(&historyDB, "history-db", "", "history database path (default: ~/.driftwatch/history.db)")
	historyCmd.Flags().Int64Var(&historyEvents, "events", 0, "list the classified paths of the given run id")
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath := historyDB
	if dbPath == "" {
		var err error
		dbPath, err = getDefaultHistoryDB()
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No check history yet. Run 'driftwatch check --log-history' first.")
		return nil
	}

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return fmt.Errorf("failed to prepare history database: %w", err)
	}

	if historyEvents > 0 {
		events, err := db.ListEvents(historyEvents)
		if err != nil {
			return fmt.Errorf("failed to list events for run %d: %w", historyEvents, err)
		}
		fmt.Print(output.RenderEventList(events))
		return nil
	}

	runs, err := db.ListCheckRuns(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list check runs: %w", err)
	}
	fmt.Print(output.RenderHistoryTable(runs))
	return nil
}
