package ports

import (
	"context"

	"github.com/peerpin/peerpin/internal/core/domain"
)

// Executor runs an install command as a child process.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes cmd with the parent's standard streams attached and
	// blocks until the child exits. A non-zero exit is returned as an
	// error carrying the exit code.
	Run(ctx context.Context, cmd domain.InstallCommand) error
}
