package ports

import "go.trai.ch/rpn/internal/core/domain"

// ConfigLoader defines the interface for loading generation settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads settings from the given path. A missing file yields the defaults.
	Load(path string) (domain.Settings, error)
}
