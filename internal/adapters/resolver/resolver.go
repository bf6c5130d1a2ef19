// Package resolver locates installed packages the way Node's module
// resolution does: through node_modules directories from the consumer root
// upward.
package resolver

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// NodeResolver implements ports.PeerResolver against the local filesystem.
type NodeResolver struct{}

// NewNodeResolver creates a new NodeResolver.
func NewNodeResolver() *NodeResolver {
	return &NodeResolver{}
}

// Resolve returns the path to name's installed package manifest.
// It checks root/node_modules/<name>/package.json, then each ancestor's
// node_modules, stopping at the filesystem root.
func (r *NodeResolver) Resolve(root, name string) (string, error) {
	if root == "" {
		return "", zerr.New("no consumer root to resolve from")
	}

	dir := root
	for {
		candidate := filepath.Join(dir, "node_modules", name, "package.json")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", zerr.With(zerr.New("package not installed"), "package", name)
}
