package detect

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/peerpin/peerpin/internal/core/ports"
)

// NodeID is the unique identifier for the detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.ManagerDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManagerDetector, error) {
			return NewDetector(), nil
		},
	})
}
