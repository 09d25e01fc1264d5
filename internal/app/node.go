package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gant/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gant/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gant/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/gant/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/gant/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/gant/internal/core/ports"
	"go.trai.ch/gant/internal/engine/registry"
	"go.trai.ch/gant/internal/engine/step"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			step.NodeID,
			registry.NodeID,
			store.NodeID,
			watcher.NodeID,
			telemetry.MetricsNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	performer, err := graft.Dep[*step.Performer](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[*registry.Registry](ctx)
	if err != nil {
		return nil, err
	}

	installations, err := graft.Dep[ports.InstallationStore](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	metrics, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, performer, reg, installations, w, metrics, log), nil
}
