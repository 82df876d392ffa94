package ports

import "go.trai.ch/stagehand/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path, applies environment overrides and
	// returns the normalized configuration.
	Load(path string) (*domain.Config, error)
}
