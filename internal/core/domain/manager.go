// Package domain contains the core types for peerpin.
package domain

import "go.trai.ch/zerr"

// Manager identifies a supported package manager.
type Manager string

const (
	// ManagerNpm is the npm package manager.
	ManagerNpm Manager = "npm"
	// ManagerPnpm is the pnpm package manager.
	ManagerPnpm Manager = "pnpm"
	// ManagerBun is the bun package manager.
	ManagerBun Manager = "bun"
)

// ParseManager validates a user-supplied manager name.
func ParseManager(name string) (Manager, error) {
	switch Manager(name) {
	case ManagerNpm, ManagerPnpm, ManagerBun:
		return Manager(name), nil
	default:
		return "", zerr.With(ErrUnsupportedManager, "manager", name)
	}
}
