// Package detect determines which package manager governs a project.
package detect

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/peerpin/peerpin/internal/core/domain"
)

// lockfiles maps lockfile names to managers, in probe order.
var lockfiles = []struct {
	name    string
	manager domain.Manager
}{
	{"pnpm-lock.yaml", domain.ManagerPnpm},
	{"bun.lockb", domain.ManagerBun},
	{"package-lock.json", domain.ManagerNpm},
}

// userAgents maps user-agent prefixes to managers, in priority order.
// npm is checked last because other managers embed an npm version in their
// user agent string.
var userAgents = []struct {
	prefix  string
	manager domain.Manager
}{
	{"pnpm/", domain.ManagerPnpm},
	{"bun/", domain.ManagerBun},
	{"npm/", domain.ManagerNpm},
}

// Detector implements ports.ManagerDetector using filesystem probes.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect resolves the package manager for dir.
// Precedence: explicit choice, user agent, lockfile probe, npm.
func (d *Detector) Detect(explicit, userAgent, dir string) (domain.Manager, error) {
	if explicit != "" {
		return domain.ParseManager(explicit)
	}

	for _, ua := range userAgents {
		if strings.HasPrefix(userAgent, ua.prefix) {
			return ua.manager, nil
		}
	}

	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.name)); err == nil {
			return lf.manager, nil
		}
	}

	return domain.ManagerNpm, nil
}
