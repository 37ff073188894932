// Package output renders drift reports and check-history tables for the
// terminal. Rendering is purely presentational; all classification happens
// in the drift package.
package output

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/driftwatch/internal/drift"
)

// ANSI color codes for drift section headers
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// RenderReport renders the drift summary with its three sections in fixed
// order: Removed, New, Modified. Empty sections keep their headers so the
// summary shape is stable, and paths are sorted within each section.
func RenderReport(res drift.Result, color bool) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 80))
	sb.WriteString("\nSummary:\n\n")

	writeSection(&sb, "Removed:", res.Removed, colorRed, color)
	writeSection(&sb, "New:", res.Added, colorGreen, color)
	writeSection(&sb, "Modified:", res.Modified, colorYellow, color)

	return sb.String()
}

func writeSection(sb *strings.Builder, title string, paths []string, clr string, color bool) {
	if color {
		sb.WriteString(clr + title + colorReset + "\n")
	} else {
		sb.WriteString(title + "\n")
	}

	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	for _, p := range sorted {
		fmt.Fprintf(sb, "    %s\n", p)
	}
	sb.WriteString("\n")
}
