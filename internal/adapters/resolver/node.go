package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/peerpin/peerpin/internal/core/ports"
)

// NodeID is the unique identifier for the peer resolver Graft node.
const NodeID graft.ID = "adapter.resolver"

func init() {
	graft.Register(graft.Node[ports.PeerResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PeerResolver, error) {
			return NewNodeResolver(), nil
		},
	})
}
