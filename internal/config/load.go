package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// Format is the syntax of a site file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the syntax from the file extension; anything that is not
// .json or .jsonc is read as YAML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Load reads, normalizes, defaults and validates the site file at path.
// .env files next to it are loaded first so ${VAR} references resolve.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(filepath.Dir(path)); err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryConfig, "failed to load environment file").
			WithContext("dir", filepath.Dir(path)).
			Fatal().
			Build()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, derrors.NotFoundError(fmt.Sprintf("configuration file not found: %s", path)).
			WithContext("path", path).
			Build()
	}
	if err != nil {
		return nil, derrors.FileSystemError(err, "failed to read config file").
			WithContext("path", path).
			Build()
	}

	cfg, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryConfig, "invalid configuration").
			WithContext("path", path).
			Fatal().
			Build()
	}
	slog.Debug("Configuration loaded", logfields.ConfigPath(path), logfields.Count(len(cfg.Sidebar)))
	return cfg, nil
}

// Parse decodes data and runs the same pipeline as Load, minus file and .env
// handling.
func Parse(data []byte, format Format) (*Config, error) {
	expanded := expandEnv(data)

	var cfg Config
	if err := decode(expanded, format, &cfg); err != nil {
		return nil, err
	}

	if cfg.Version != Version {
		return nil, fmt.Errorf("unsupported configuration version: %q (expected %q)", cfg.Version, Version)
	}

	res, err := NormalizeConfig(&cfg)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	for _, w := range res.Warnings {
		slog.Warn("Config normalization", slog.String("warning", w))
	}

	if err := NewDefaultApplier().ApplyDefaults(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}
	return nil
}
