package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thingsbridge/thingsbridge/internal/errors"
)

// Init writes the default configuration to the global config file and
// returns its path. An existing file is left untouched unless force is set.
func Init(force bool) (string, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return "", err
	}
	if fileExists(path) && !force {
		return path, errors.Wrapf(errors.ErrConfigInvalid,
			"config file already exists at %s", path)
	}
	if err := WriteDefault(path); err != nil {
		return "", err
	}
	return path, nil
}

// WriteDefault writes the default configuration as YAML to the given path,
// creating parent directories as needed. Durations are written in their
// string form ("30s") so the file stays readable.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	doc := map[string]any{
		"app": map[string]any{
			"name": cfg.App.Name,
		},
		"script": map[string]any{
			"binary":  cfg.Script.Binary,
			"timeout": cfg.Script.Timeout.String(),
		},
		"logging": map[string]any{
			"level": cfg.Logging.Level,
			"file":  cfg.Logging.File,
		},
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}
