// Package config loads the bootstrap configuration from stagehand.yaml.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"go.trai.ch/stagehand/internal/core/domain"
	"go.trai.ch/stagehand/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path, applies .env and STAGEHAND_* overrides and
// returns the normalized configuration. An absent stage defaults to domain.DefaultStage.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = DefaultFileName
	}
	l.loadDotEnv(path)

	var file Stagefile
	if err := readAndDecodeYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if file.Version != "" && file.Version != SupportedVersion {
		return nil, zerr.With(zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version), "path", path)
	}
	if err := applyEnv(&file); err != nil {
		return nil, err
	}
	if file.Build == "" {
		return nil, zerr.With(domain.ErrMissingBuildTriple, "path", path)
	}

	cfg := &domain.Config{
		Build:   domain.NewTriple(file.Build),
		Hosts:   domain.NewTriples(file.Hosts),
		Targets: domain.NewTriples(file.Targets),
		Stage:   domain.DefaultStage,
	}
	if file.Stage != nil {
		cfg.Stage = *file.Stage
	}
	cfg.Normalize()

	return cfg, nil
}

// readAndDecodeYAML decodes configPath into target, rejecting unknown fields.
// An empty file decodes to the zero value.
func readAndDecodeYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the user
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
