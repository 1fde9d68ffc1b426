package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bincache/internal/core/ports"
)

// NodeID provides the recorder that traces each validation pipeline stage.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return New(), nil
		},
	})
}
