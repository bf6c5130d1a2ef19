package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/peerpin/peerpin/internal/adapters/logger"
	"github.com/peerpin/peerpin/internal/core/ports"
	"go.opentelemetry.io/otel/trace"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[trace.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (trace.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewTracer(log), nil
		},
	})
}
