// Package config provides the configuration loader for rpn.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"go.trai.ch/rpn/internal/core/domain"
	"go.trai.ch/rpn/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up when no path is given.
const DefaultFilename = "rpn.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	logger ports.Logger
}

// NewLoader creates a new FileConfigLoader.
func NewLoader(log ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{logger: log}
}

// Load reads settings from path. A missing file yields domain.DefaultSettings.
func (l *FileConfigLoader) Load(path string) (domain.Settings, error) {
	if path == "" {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("config file not found, using defaults", "path", path)
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	return Parse(data)
}

// Parse decodes an rpn.yaml document on top of domain.DefaultSettings.
func Parse(data []byte) (domain.Settings, error) {
	var file Rpnfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "invalid YAML")
	}

	settings := domain.DefaultSettings()
	if file.Workers != nil {
		settings.Workers = *file.Workers
	}
	if file.Validate != nil {
		settings.Validate = *file.Validate
	}
	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return domain.Settings{}, zerr.With(
				zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "invalid timeout"),
				"timeout", file.Timeout,
			)
		}
		settings.Timeout = timeout
	}

	if err := settings.Check(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}
