package depfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargostep/internal/core/ports"
)

// NodeID is the unique identifier for the depfile normalizer Graft node.
const NodeID graft.ID = "adapter.depfile"

func init() {
	graft.Register(graft.Node[ports.DepfileNormalizer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DepfileNormalizer, error) {
			return NewNormalizer(), nil
		},
	})
}
