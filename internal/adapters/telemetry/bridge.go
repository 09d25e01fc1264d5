package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/gant/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to report finished steps to a Logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	var step string
	exitCode := -1
	for _, kv := range s.Attributes() {
		switch kv.Key {
		case "step":
			step = kv.Value.AsString()
		case "exit_code":
			if kv.Value.Type() == attribute.INT64 {
				exitCode = int(kv.Value.AsInt64())
			}
		}
	}
	if step == "" {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	switch {
	case s.Status().Code == codes.Error:
		b.logger.Warn(fmt.Sprintf("step %s failed after %s: %s", step, elapsed, s.Status().Description))
	case exitCode != 0:
		b.logger.Warn(fmt.Sprintf("step %s failed after %s (exit code %d)", step, elapsed, exitCode))
	default:
		b.logger.Info(fmt.Sprintf("step %s succeeded in %s", step, elapsed))
	}
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
