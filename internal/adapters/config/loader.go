// Package config loads the shared toolchain configuration file.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"go.trai.ch/cargostep/internal/core/domain"
	"go.trai.ch/cargostep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	logger ports.Logger
}

// NewLoader creates a new FileConfigLoader.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{logger: logger}
}

// Load reads the toolchain configuration from path.
func (l *FileConfigLoader) Load(path string) (*domain.ToolchainConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Debug("loaded toolchain config", "path", path)
	return cfg, nil
}

// Parse decodes a toolchain configuration document. Unknown keys are rejected
// and an empty document yields an empty configuration.
func Parse(data []byte) (*domain.ToolchainConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg domain.ToolchainConfig
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return &cfg, nil
}
