package step

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gant/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gant/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gant/internal/core/ports"
	"go.trai.ch/gant/internal/engine/registry"
)

// NodeID is the unique identifier for the step performer Graft node.
const NodeID graft.ID = "engine.step"

func init() {
	graft.Register(graft.Node[*Performer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			shell.NodeID,
			telemetry.TracerNodeID,
			telemetry.MetricsNodeID,
		},
		Run: func(ctx context.Context) (*Performer, error) {
			reg, err := graft.Dep[*registry.Registry](ctx)
			if err != nil {
				return nil, err
			}

			launcher, err := graft.Dep[ports.Launcher](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			metrics, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			return NewPerformer(reg, launcher, tracer, metrics), nil
		},
	})
}
