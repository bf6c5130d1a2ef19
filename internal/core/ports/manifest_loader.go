package ports

import "github.com/peerpin/peerpin/internal/core/domain"

// ManifestLoader reads package manifests from disk.
// Manifests are loaded fresh on every call; nothing is cached between runs.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load parses the manifest at path, preserving peerDependencies order.
	Load(path string) (*domain.Manifest, error)

	// Version reads only the version field of the manifest at path.
	Version(path string) (string, error)
}
