package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargostep/internal/core/ports"
)

const (
	// ManifestNodeID is the unique identifier for the manifest reader Graft node.
	ManifestNodeID graft.ID = "adapter.cargo.manifest"
	// ConfigNodeID is the unique identifier for the vendor config writer Graft node.
	ConfigNodeID graft.ID = "adapter.cargo.config"
	// MessagesNodeID is the unique identifier for the message parser Graft node.
	MessagesNodeID graft.ID = "adapter.cargo.messages"
)

func init() {
	graft.Register(graft.Node[ports.ManifestReader]{
		ID:        ManifestNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestReader, error) {
			return NewManifestReader(), nil
		},
	})

	graft.Register(graft.Node[ports.VendorConfigWriter]{
		ID:        ConfigNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VendorConfigWriter, error) {
			return NewConfigWriter(), nil
		},
	})

	graft.Register(graft.Node[ports.BuildOutputParser]{
		ID:        MessagesNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildOutputParser, error) {
			return NewMessageParser(), nil
		},
	})
}
