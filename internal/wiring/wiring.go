// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/peerpin/peerpin/internal/adapters/config"
	_ "github.com/peerpin/peerpin/internal/adapters/detect"
	_ "github.com/peerpin/peerpin/internal/adapters/logger"
	_ "github.com/peerpin/peerpin/internal/adapters/manifest"
	_ "github.com/peerpin/peerpin/internal/adapters/resolver"
	_ "github.com/peerpin/peerpin/internal/adapters/shell"
	_ "github.com/peerpin/peerpin/internal/adapters/telemetry"
	_ "github.com/peerpin/peerpin/internal/adapters/workspace"
	// Register the app components node.
	_ "github.com/peerpin/peerpin/internal/app"
)
