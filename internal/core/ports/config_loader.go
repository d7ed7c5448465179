package ports

import "go.trai.ch/dcmget/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration from defaults, the config file in cwd
	// (or path, when set) and the environment.
	Load(cwd, path string) (*domain.Config, error)

	// LoadDefaults resolves the defaults and the environment without reading a file.
	LoadDefaults() (*domain.Config, error)

	// WriteTemplate writes a commented configuration file to path. An existing
	// file is only replaced when replace is set.
	WriteTemplate(path string, cfg *domain.Config, replace bool) error
}
