// Package workspace discovers and reads pnpm workspace manifests.
package workspace

import (
	"os"
	"path/filepath"

	"github.com/peerpin/peerpin/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// markerNames are the recognized workspace manifest filenames, in probe order.
var markerNames = []string{"pnpm-workspace.yaml", "pnpm-workspace.yml"}

// Resolver implements ports.WorkspaceResolver against the local filesystem.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Find walks up from start looking for a workspace manifest.
// The walk stops when the parent of the current directory is the directory
// itself, which is how filepath.Dir signals the filesystem root.
func (r *Resolver) Find(start string) (string, bool) {
	dir := start
	for {
		for _, name := range markerNames {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Load parses the workspace manifest found in root.
func (r *Resolver) Load(root string) (*domain.Workspace, error) {
	var data []byte
	var err error
	for _, name := range markerNames {
		data, err = os.ReadFile(filepath.Join(root, name))
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkspaceParseFailed.Error()), "root", root)
	}

	var manifest struct {
		Packages []string `yaml:"packages"`
	}
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkspaceParseFailed.Error()), "root", root)
	}

	return &domain.Workspace{Root: root, Packages: manifest.Packages}, nil
}
