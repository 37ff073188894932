// Package app implements the driftwatch command line interface.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/driftwatch/internal/config"
)

var (
	configFile string
	watchedDir string
	database   string

	// RootCmd is the root command for driftwatch
	RootCmd = &cobra.Command{
		Use:   "driftwatch",
		Short: "Detect drift between a directory tree and its recorded snapshot",
		Long: `driftwatch records a snapshot of the files in a watched directory tree and
later reports which files were added, removed, or modified since, so an
operator can reconcile a remote copy by hand.

The snapshot maps every tracked file to its last modification time and is
stored as a JSON database file. File masks and an ignore list from the
configuration file control which files are tracked.

Examples:
  # Record the current state of a tree
  driftwatch init -d /srv/www -b /var/lib/driftwatch/www.json

  # Report drift against the recorded state
  driftwatch check -d /srv/www -b /var/lib/driftwatch/www.json

  # Review past checks
  driftwatch history`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("driftwatch: directory tree drift detection")
			fmt.Println()
			fmt.Println("Run 'driftwatch init' to record a snapshot of a watched tree.")
			fmt.Println("Run 'driftwatch check' to report drift against it.")
			fmt.Println("Run 'driftwatch --help' for the full reference.")
			return nil
		},
	}
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		fmt.Sprintf("path to the configuration file (default: %s in the current directory, if present)", config.DefaultConfigFile))
	RootCmd.PersistentFlags().StringVarP(&watchedDir, "directory", "d", "",
		"path to the watched directory tree (default: current directory)")
	RootCmd.PersistentFlags().StringVarP(&database, "database", "b", "",
		fmt.Sprintf("path to the snapshot database file (default: %s inside the watched directory)", config.DefaultDatabaseFile))

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(historyCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// resolveConfig applies the defaulting rules: when --config is not given the
// current directory is probed for the default configuration file, the
// watched directory falls back to the current directory, and the database
// falls back to the default file inside the watched directory.
func resolveConfig() (config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfgPath := configFile
	if cfgPath == "" {
		probe := filepath.Join(cwd, config.DefaultConfigFile)
		if _, err := os.Stat(probe); err == nil {
			cfgPath = probe
			fmt.Printf("Option --config not specified, using '%s'.\n", probe)
		}
	}

	var file config.FileValues
	if cfgPath != "" {
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			fmt.Printf("Configuration file '%s' does not exist, using default values.\n", cfgPath)
		} else {
			file, err = config.LoadFile(cfgPath)
			if err != nil {
				return config.Config{}, fmt.Errorf("failed to process configuration file: %w", err)
			}
		}
	}

	flags := config.Flags{
		ConfigFile: cfgPath,
		WatchedDir: watchedDir,
		Database:   database,
	}
	cfg := config.Merge(flags, file, cwd)

	if watchedDir == "" {
		fmt.Printf("Option --directory not specified, working in '%s'.\n", cfg.WatchedDir)
	}
	if database == "" {
		fmt.Printf("Option --database not specified, using '%s'.\n", cfg.DatabasePath)
	}

	return cfg, nil
}

// getDefaultHistoryDB returns the default history database path, creating
// ~/.driftwatch if needed.
func getDefaultHistoryDB() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	dir := filepath.Join(home, ".driftwatch")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create driftwatch directory: %w", err)
	}

	return filepath.Join(dir, "history.db"), nil
}
