package config

import (
	"os"
	"path/filepath"

	"github.com/thingsbridge/thingsbridge/internal/constants"
	"github.com/thingsbridge/thingsbridge/internal/errors"
)

// GlobalConfigDir returns the path to the global things-bridge configuration
// directory, typically ~/.thingsbridge.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.BridgeHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file,
// typically ~/.thingsbridge/config.yaml.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// ProjectConfigPath returns the relative path to the project configuration
// file, always .thingsbridge/config.yaml relative to the working directory.
func ProjectConfigPath() string {
	return filepath.Join(constants.BridgeHome, constants.ConfigFileName)
}

// LogFilePath returns the full path to the rotating log file, typically
// ~/.thingsbridge/logs/thingsbridge.log.
func LogFilePath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.LogsDir, constants.LogFileName), nil
}
