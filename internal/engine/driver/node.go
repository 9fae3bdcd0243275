package driver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargostep/internal/adapters/cargo"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cargostep/internal/adapters/depfile"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cargostep/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cargostep/internal/adapters/metadata"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cargostep/internal/adapters/publish"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cargostep/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cargostep/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cargostep/internal/core/ports"
)

// NodeID is the unique identifier for the driver Graft node.
const NodeID graft.ID = "engine.driver"

func init() {
	graft.Register(graft.Node[*Driver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cargo.ManifestNodeID,
			metadata.NodeID,
			cargo.ConfigNodeID,
			shell.NodeID,
			cargo.MessagesNodeID,
			depfile.NodeID,
			publish.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Driver, error) {
			manifest, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.MetadataStore](ctx)
			if err != nil {
				return nil, err
			}

			vendor, err := graft.Dep[ports.VendorConfigWriter](ctx)
			if err != nil {
				return nil, err
			}

			toolchain, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.BuildOutputParser](ctx)
			if err != nil {
				return nil, err
			}

			depfiles, err := graft.Dep[ports.DepfileNormalizer](ctx)
			if err != nil {
				return nil, err
			}

			publisher, err := graft.Dep[ports.ArtifactPublisher](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(manifest, store, vendor, toolchain, parser, depfiles, publisher, tracer, log), nil
		},
	})
}
