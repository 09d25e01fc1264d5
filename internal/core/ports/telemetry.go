package ports

import (
	"context"
	"time"

	"go.trai.ch/gant/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// Metrics records step executions.
type Metrics interface {
	// ObserveStep records the outcome and duration of one step.
	ObserveStep(step string, outcome domain.StepOutcome, elapsed time.Duration)
	// WriteTextfile writes all metrics in the Prometheus text format to path.
	WriteTextfile(path string) error
}
