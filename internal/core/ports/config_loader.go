package ports

import "go.trai.ch/gant/internal/core/domain"

// ConfigLoader defines the interface for loading step files.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the step file at path.
	Load(path string) (*domain.StepFile, error)
}
