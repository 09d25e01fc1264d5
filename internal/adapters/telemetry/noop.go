package telemetry

import (
	"context"
	"time"

	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/gant/internal/core/ports"
)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start creates a new no-op span.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

// NoOpSpan is a no-op implementation of ports.Span.
type NoOpSpan struct{}

// End does nothing.
func (s *NoOpSpan) End() {}

// RecordError does nothing.
func (s *NoOpSpan) RecordError(_ error) {}

// SetAttribute does nothing.
func (s *NoOpSpan) SetAttribute(_ string, _ any) {}

// NoOpMetrics is a no-op implementation of ports.Metrics.
type NoOpMetrics struct{}

// ObserveStep does nothing.
func (NoOpMetrics) ObserveStep(_ string, _ domain.StepOutcome, _ time.Duration) {}

// WriteTextfile does nothing.
func (NoOpMetrics) WriteTextfile(_ string) error {
	return nil
}
