package metadata

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bincache/internal/core/ports"
)

// NodeID is the unique identifier for the metadata store Graft node.
const NodeID graft.ID = "adapter.metadata_store"

func init() {
	graft.Register(graft.Node[ports.MetadataStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MetadataStore, error) {
			return NewStore(), nil
		},
	})
}
