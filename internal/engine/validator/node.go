package validator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bincache/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bincache/internal/adapters/metadata"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bincache/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bincache/internal/core/ports"
)

// NodeID is the unique identifier for the validator factory Graft node.
const NodeID graft.ID = "engine.validator_factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			metadata.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			store, err := graft.Dep[ports.MetadataStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.SourceHasher](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(store, hasher, tel), nil
		},
	})
}
