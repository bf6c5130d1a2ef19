package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/peerpin/peerpin/internal/adapters/config"
	"github.com/peerpin/peerpin/internal/adapters/detect"
	"github.com/peerpin/peerpin/internal/adapters/logger"
	"github.com/peerpin/peerpin/internal/adapters/manifest"
	"github.com/peerpin/peerpin/internal/adapters/resolver"
	"github.com/peerpin/peerpin/internal/adapters/shell"
	"github.com/peerpin/peerpin/internal/adapters/telemetry"
	"github.com/peerpin/peerpin/internal/adapters/workspace"
	"github.com/peerpin/peerpin/internal/core/ports"
	"go.opentelemetry.io/otel/trace"
)

// Components contains the initialized application components.
// It provides controlled access to everything the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			detect.NodeID,
			workspace.NodeID,
			resolver.NodeID,
			shell.NodeID,
			config.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			manifests, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}
			detector, err := graft.Dep[ports.ManagerDetector](ctx)
			if err != nil {
				return nil, err
			}
			workspaces, err := graft.Dep[ports.WorkspaceResolver](ctx)
			if err != nil {
				return nil, err
			}
			peers, err := graft.Dep[ports.PeerResolver](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			configs, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[trace.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			application := New(manifests, detector, workspaces, peers, executor, configs, log, tracer)
			return &Components{App: application, Logger: log}, nil
		},
	})
}
