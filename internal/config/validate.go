package config

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/thingsbridge/thingsbridge/internal/errors"
)

// maxScriptTimeout caps the configurable script timeout. A hung interpreter
// should never be allowed to linger for longer than this.
const maxScriptTimeout = 10 * time.Minute

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - app name must not be empty
//   - script binary must not be empty
//   - script timeout must be positive and at most 10 minutes
//   - logging level must be a recognized level name
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if cfg.App.Name == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "app.name must not be empty")
	}

	if cfg.Script.Binary == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "script.binary must not be empty")
	}
	if cfg.Script.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"script.timeout must be positive, got %s", cfg.Script.Timeout)
	}
	if cfg.Script.Timeout > maxScriptTimeout {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"script.timeout must be at most %s, got %s", maxScriptTimeout, cfg.Script.Timeout)
	}

	if _, err := zerolog.ParseLevel(cfg.Logging.Level); err != nil {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"logging.level %q is not a recognized level", cfg.Logging.Level)
	}

	return nil
}
