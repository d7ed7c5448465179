// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/dcmget/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd to completion and returns its exit code.
	//
	// A non-zero exit is reported through the outcome, not the error.
	// The error is reserved for processes that could not be started.
	Execute(ctx context.Context, cmd *domain.Command) (domain.ProcessOutcome, error)
}
