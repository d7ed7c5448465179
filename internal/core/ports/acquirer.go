package ports

import (
	"context"

	"go.trai.ch/dcmget/internal/core/domain"
)

// SourceAcquirer obtains the package family's source tree.
//
//go:generate mockgen -source=acquirer.go -destination=mocks/mock_acquirer.go -package=mocks
type SourceAcquirer interface {
	// Clone clones the upstream repository below parent and returns the new tree.
	// A non-zero exit is returned as an error wrapping domain.ErrCloneFailed.
	Clone(ctx context.Context, git domain.ExecutableLocation, parent string) (domain.WorkingTree, error)

	// Checkout checks out version inside tree.
	// A non-zero exit is returned as an error wrapping domain.ErrCheckoutFailed.
	Checkout(ctx context.Context, git domain.ExecutableLocation, tree domain.WorkingTree, version domain.PackageVersion) error
}
