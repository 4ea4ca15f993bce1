// Package constants provides centralized constant values used throughout
// things-bridge. This package is the single source of truth for all shared
// constants and MUST NOT import any other internal packages.
package constants

import "time"

// External automation interpreter settings.
const (
	// OsascriptBinary is the name of the macOS automation interpreter binary.
	OsascriptBinary = "osascript"

	// DefaultAppName is the scripting target application.
	DefaultAppName = "Things3"
)

// Timeout configuration for script execution.
const (
	// DefaultScriptTimeout is the default maximum duration for a single
	// osascript invocation. Things responds within a few seconds for
	// reasonable database sizes; 30 seconds leaves headroom for large
	// property dumps without letting a hung process linger.
	DefaultScriptTimeout = 30 * time.Second
)

// Directory and file names used for configuration and logs.
const (
	// BridgeHome is the hidden directory name where things-bridge stores
	// its data. This directory is created in the user's home directory.
	BridgeHome = ".thingsbridge"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// LogFileName is the name of the rotating log file.
	LogFileName = "thingsbridge.log"

	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yaml"

	// EnvPrefix is the prefix for environment variable configuration.
	EnvPrefix = "THINGSBRIDGE"
)

// Log rotation settings for lumberjack.
const (
	// LogMaxSizeMB is the maximum size of a log file before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of a rotated log file.
	LogMaxAgeDays = 30
)

// MissingValue is the automation language literal for an absent value.
const MissingValue = "missing value"

// Built-in list names recognized by the application.
//
//nolint:gochecknoglobals // Constant-like lookup slice
var BuiltinLists = []string{"Inbox", "Today", "Upcoming", "Anytime", "Someday", "Logbook", "Trash"}
