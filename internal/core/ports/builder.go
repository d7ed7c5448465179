package ports

import (
	"context"

	"go.trai.ch/dcmget/internal/core/domain"
)

// BuildInvoker runs build-tool goals against a working tree.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type BuildInvoker interface {
	// Install runs the install goal. The exit code is returned uninterpreted.
	Install(ctx context.Context, mvn domain.ExecutableLocation, tree domain.WorkingTree) (domain.ProcessOutcome, error)

	// Clean runs the clean goal. The exit code is returned uninterpreted.
	Clean(ctx context.Context, mvn domain.ExecutableLocation, tree domain.WorkingTree) (domain.ProcessOutcome, error)
}
