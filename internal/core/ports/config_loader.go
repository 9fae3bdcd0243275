package ports

import "go.trai.ch/cargostep/internal/core/domain"

// ConfigLoader defines the interface for loading the shared toolchain configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the toolchain configuration file at path.
	Load(path string) (*domain.ToolchainConfig, error)
}
