package output

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/driftwatch/internal/store"
)

// RenderHistoryTable renders recorded check runs as a fixed-width table,
// in the order given (the store returns newest first).
func RenderHistoryTable(runs []*store.CheckRun) string {
	if len(runs) == 0 {
		return "No check runs recorded.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-5s %-20s %-35s %7s %8s %9s\n",
		"ID", "RAN AT", "ROOT", "ADDED", "REMOVED", "MODIFIED"))
	sb.WriteString(strings.Repeat("-", 90) + "\n")

	for _, run := range runs {
		sb.WriteString(fmt.Sprintf("%-5d %-20s %-35s %7d %8d %9d\n",
			run.ID,
			run.RanAt.Format("2006-01-02 15:04:05"),
			truncate(run.Root, 35),
			run.Added,
			run.Removed,
			run.Modified,
		))
	}

	return sb.String()
}

// RenderEventList renders the classified paths of one recorded run, grouped
// the same way the live report is (the store returns them sorted by kind).
func RenderEventList(events []*store.DriftEvent) string {
	if len(events) == 0 {
		return "No drift recorded for this run.\n"
	}

	var sb strings.Builder
	for _, ev := range events {
		fmt.Fprintf(&sb, "%-9s %s\n", ev.Kind, ev.Path)
	}
	return sb.String()
}

// truncate shortens s to max runes, marking the cut with a trailing "...".
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
