package config

import (
	"github.com/spf13/viper"

	"github.com/thingsbridge/thingsbridge/internal/constants"
)

// DefaultConfig returns a Config populated with built-in defaults. This is
// the configuration used when no file or environment overrides exist.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name: constants.DefaultAppName,
		},
		Script: ScriptConfig{
			Binary:  constants.OsascriptBinary,
			Timeout: constants.DefaultScriptTimeout,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  true,
		},
	}
}

// setDefaults configures all default values on the Viper instance.
// IMPORTANT: Keys must match the YAML tag names exactly for proper mapping.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", constants.DefaultAppName)
	v.SetDefault("script.binary", constants.OsascriptBinary)
	v.SetDefault("script.timeout", constants.DefaultScriptTimeout.String())
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", true)
}
