package ports

import "go.trai.ch/gant/internal/core/domain"

// InstallationResolver looks up installations by name.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InstallationResolver interface {
	// Resolve returns the installation called name.
	// It reports false for an empty name or when nothing matches.
	Resolve(name string) (domain.Installation, bool)
}
