package ports

import "go.trai.ch/dcmget/internal/core/domain"

// ExecutableLocator finds external tools on the search path.
//
//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type ExecutableLocator interface {
	// Locate returns the first matching executable for the base name.
	// It returns an error wrapping domain.ErrExecutableNotFound if none matches.
	Locate(name string) (domain.ExecutableLocation, error)

	// HasExecutable reports whether Locate would succeed.
	HasExecutable(name string) bool
}
