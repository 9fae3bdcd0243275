package publish

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargostep/internal/core/ports"
)

// NodeID is the unique identifier for the artifact publisher Graft node.
const NodeID graft.ID = "adapter.publish"

func init() {
	graft.Register(graft.Node[ports.ArtifactPublisher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactPublisher, error) {
			return NewSymlinkPublisher(), nil
		},
	})
}
