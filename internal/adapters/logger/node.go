package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/gant/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			// --json can still switch the format once the CLI has parsed its flags.
			l, err := NewWithFormat(os.Getenv(FormatEnvVar))
			if err != nil {
				return nil, err
			}
			return l, nil
		},
	})
}
