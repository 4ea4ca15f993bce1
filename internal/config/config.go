// Package config provides configuration management for things-bridge with
// layered precedence.
//
// Configuration sources are loaded in the following order (highest
// precedence first):
//  1. Environment variables (THINGSBRIDGE_* prefix)
//  2. Project config (.thingsbridge/config.yaml)
//  3. Global config (~/.thingsbridge/config.yaml)
//  4. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

import "time"

// Config is the root configuration structure for things-bridge.
type Config struct {
	// App contains settings for the scripting target application.
	App AppConfig `yaml:"app" mapstructure:"app"`

	// Script contains settings for osascript execution.
	Script ScriptConfig `yaml:"script" mapstructure:"script"`

	// Logging contains settings for diagnostic logging.
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// AppConfig contains settings for the scripting target application.
type AppConfig struct {
	// Name is the application name used in tell blocks.
	// Default: "Things3"
	Name string `yaml:"name" mapstructure:"name"`
}

// ScriptConfig contains settings for osascript execution.
type ScriptConfig struct {
	// Binary is the automation interpreter binary name or path.
	// Default: "osascript"
	Binary string `yaml:"binary" mapstructure:"binary"`

	// Timeout is the maximum duration for a single script invocation.
	// The child process is killed when exceeded.
	// Default: 30 seconds
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// LoggingConfig contains settings for diagnostic logging.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: "info"
	Level string `yaml:"level" mapstructure:"level"`

	// File enables writing logs to the rotating file under
	// ~/.thingsbridge/logs/ in addition to the console.
	// Default: true
	File bool `yaml:"file" mapstructure:"file"`
}
