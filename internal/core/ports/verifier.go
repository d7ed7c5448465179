package ports

import "go.trai.ch/dcmget/internal/core/domain"

// InstallationVerifier decides whether a version is present in the local cache.
//
//go:generate mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type InstallationVerifier interface {
	// IsInstalled reports whether every module manifest of version exists.
	// Unresolvable or absent cache roots yield false.
	IsInstalled(version domain.PackageVersion) bool

	// Missing returns the modules whose manifest is absent for version.
	Missing(version domain.PackageVersion) []domain.Module

	// Digest returns a digest over all module manifests of version.
	Digest(version domain.PackageVersion) (uint64, error)

	// LocalRepository returns the repository the verifier inspects.
	LocalRepository() string
}
