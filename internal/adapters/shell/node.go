package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargostep/internal/adapters/logger"
	"go.trai.ch/cargostep/internal/core/ports"
)

// NodeID is the unique identifier for the toolchain runner Graft node.
const NodeID graft.ID = "adapter.toolchain"

func init() {
	graft.Register(graft.Node[ports.Toolchain]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Toolchain, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
