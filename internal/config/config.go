// Package config provides configuration for driftwatch: the typed settings
// consumed by init and check, the sectioned key=value configuration file,
// and the merge of defaults, file values, and command line flags.
package config

import (
	"path/filepath"
)

const (
	// DefaultDatabaseFile is the snapshot filename used inside the watched
	// directory when --database is not given.
	DefaultDatabaseFile = "driftwatch-db.json"

	// DefaultConfigFile is probed in the current directory when --config is
	// not given.
	DefaultConfigFile = "driftwatch.conf"
)

// Config holds every setting the init and check commands consume.
type Config struct {
	ConfigFile   string
	WatchedDir   string
	DatabasePath string
	WatchMasks   []string
	IgnoreList   []string
}

// Flags holds the raw command line values before any defaulting.
type Flags struct {
	ConfigFile string
	WatchedDir string
	Database   string
}

// Merge resolves the effective configuration: command line flags win, then
// configuration file values, then defaults. The watched directory defaults
// to cwd, and the snapshot database defaults to DefaultDatabaseFile inside
// the watched directory. Pure; no filesystem access.
func Merge(flags Flags, file FileValues, cwd string) Config {
	cfg := Config{
		ConfigFile: flags.ConfigFile,
		WatchMasks: file.WatchMasks,
		IgnoreList: file.IgnoreList,
	}

	cfg.WatchedDir = flags.WatchedDir
	if cfg.WatchedDir == "" {
		cfg.WatchedDir = cwd
	}

	cfg.DatabasePath = flags.Database
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(cfg.WatchedDir, DefaultDatabaseFile)
	}

	return cfg
}
