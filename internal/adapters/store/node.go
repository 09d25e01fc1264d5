package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/gant/internal/core/ports"
)

// NodeID is the unique identifier for the installation store Graft node.
const NodeID graft.ID = "adapter.installation_store"

func init() {
	graft.Register(graft.Node[ports.InstallationStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstallationStore, error) {
			return NewStore(domain.DefaultInstallationsPath()), nil
		},
	})
}
