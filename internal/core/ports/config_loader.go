package ports

import "go.trai.ch/grind/internal/core/domain"

// ConfigLoader loads the toolchain configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path; empty means the default
	// location. A missing file is not an error; the built-in defaults apply.
	Load(path string) (domain.Config, error)
}
