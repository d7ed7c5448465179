package ports

import "context"

// Tracer defines the interface for tracing workflow steps.
//
//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Tracer interface {
	// Start creates a span named after a workflow step.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is a single traced step.
type Span interface {
	// End completes the span.
	End()

	// RecordError marks the span as failed.
	RecordError(err error)

	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
