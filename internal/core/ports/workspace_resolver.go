package ports

import "github.com/peerpin/peerpin/internal/core/domain"

// WorkspaceResolver discovers pnpm workspace roots.
//
//go:generate mockgen -source=workspace_resolver.go -destination=mocks/mock_workspace_resolver.go -package=mocks
type WorkspaceResolver interface {
	// Find walks up from start and returns the first directory containing
	// a workspace manifest. ok is false when no ancestor has one.
	Find(start string) (root string, ok bool)

	// Load parses the workspace manifest in root.
	Load(root string) (*domain.Workspace, error)
}
