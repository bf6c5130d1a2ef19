package ports

import "github.com/peerpin/peerpin/internal/core/domain"

// ConfigLoader reads the optional peerpin.yaml override file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads peerpin.yaml from dir. A missing file is not an error
	// and yields the zero config.
	Load(dir string) (*domain.Config, error)
}
