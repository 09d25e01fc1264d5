package telemetry

import (
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/gant/internal/core/ports"
)

// Setup configures the global OpenTelemetry SDK to report finished steps to logger.
// The returned provider must be shut down by the caller.
func Setup(logger ports.Logger) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp
}
