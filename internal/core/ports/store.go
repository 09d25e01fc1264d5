package ports

import "go.trai.ch/gant/internal/core/domain"

// InstallationStore persists the installation list.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type InstallationStore interface {
	// Load returns the stored installations. A missing store yields an empty list.
	Load() ([]domain.Installation, error)

	// Save replaces the stored installations.
	Save(installations []domain.Installation) error

	// Path returns the location of the store.
	Path() string
}
