package ports

import "github.com/peerpin/peerpin/internal/core/domain"

// ManagerDetector determines which package manager governs a directory.
//
//go:generate mockgen -source=manager_detector.go -destination=mocks/mock_manager_detector.go -package=mocks
type ManagerDetector interface {
	// Detect resolves the manager with the following precedence: an
	// explicit choice, the invoking tool's user agent, lockfiles in dir,
	// and finally npm. It only fails when the explicit choice is outside
	// the supported set.
	Detect(explicit, userAgent, dir string) (domain.Manager, error)
}
