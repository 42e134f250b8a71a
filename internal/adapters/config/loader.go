// Package config provides the configuration loader for grind.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/grind/internal/core/domain"
	"go.trai.ch/grind/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file grind looks for.
const DefaultFilename = "grind.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	logger ports.Logger
}

// NewLoader creates a new FileConfigLoader.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{logger: logger}
}

// Load reads the configuration file at path, falling back to the
// default filename in the current directory when path is empty.
// A missing file yields the built-in defaults; the toolchain
// configuration is static, the file only overrides it.
func (l *FileConfigLoader) Load(path string) (domain.Config, error) {
	if path == "" {
		path = DefaultFilename
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("config file " + path + " not found, using built-in defaults")
		return domain.Default(), nil
	}
	return Load(path)
}

// Load reads a configuration file from the given path and returns a
// domain.Config with defaults applied for absent fields.
func Load(path string) (domain.Config, error) {
	cfg := domain.Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return domain.Config{}, errors.Join(domain.ErrConfigReadFailed,
			zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path))
	}

	var file Grindfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, errors.Join(domain.ErrConfigParseFailed,
			zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path))
	}

	if file.Compiler != nil {
		applyTool(&cfg.Compiler, file.Compiler)
	}
	if file.Checker != nil {
		applyTool(&cfg.Checker, file.Checker)
	}
	if file.LdFlags != nil {
		cfg.LinkFlags = file.LdFlags
	}
	if file.Sources != nil {
		// Source order is the link order; pass it through verbatim.
		cfg.Sources = file.Sources
	}
	if file.Artifact != "" {
		cfg.Artifact = file.Artifact
	}
	if file.RunArgs != nil {
		cfg.RunArgs = file.RunArgs
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}

	return cfg, nil
}

func applyTool(tool *domain.Tool, dto *ToolDTO) {
	if dto.Path != "" {
		tool.Path = dto.Path
	}
	if dto.Flags != nil {
		tool.Flags = dto.Flags
	}
}
