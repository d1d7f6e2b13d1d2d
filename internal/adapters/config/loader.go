// Package config provides the configuration loader for nh.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when none is given.
const DefaultFilename = "nh.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path and fills unset values with defaults.
// A missing file is not an error.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no configuration file at " + path + ", using defaults")
			return cfg, nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	file, err := parse(data)
	if err != nil {
		invalid := zerr.Wrap(domain.ErrConfigInvalid, "failed to parse config file")
		invalid = zerr.With(invalid, "path", path)
		return domain.Config{}, zerr.With(invalid, "cause", err.Error())
	}

	if file.Flake != "" {
		cfg.Flake = file.Flake
	}

	for _, pattern := range file.Ignore {
		if err := domain.ValidatePattern(pattern); err != nil {
			invalid := zerr.Wrap(domain.ErrConfigInvalid, "malformed ignore pattern")
			invalid = zerr.With(invalid, "path", path)
			return domain.Config{}, zerr.With(invalid, "pattern", pattern)
		}
	}
	cfg.Ignore = file.Ignore

	return cfg, nil
}

func parse(data []byte) (File, error) {
	var file File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}
	return file, nil
}
