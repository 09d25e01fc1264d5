package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gant/internal/core/ports"
)

const (
	// TracerNodeID is the unique identifier for the tracer Graft node.
	TracerNodeID graft.ID = "adapter.telemetry"
	// MetricsNodeID is the unique identifier for the metrics Graft node.
	MetricsNodeID graft.ID = "adapter.metrics"
)

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewOTelTracer(InstrumentationName), nil
		},
	})

	graft.Register(graft.Node[ports.Metrics]{
		ID:        MetricsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Metrics, error) {
			return NewMetrics(), nil
		},
	})
}
