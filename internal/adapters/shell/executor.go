// Package shell executes install commands as child processes.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"github.com/peerpin/peerpin/internal/core/domain"
	"github.com/peerpin/peerpin/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Executor implements ports.Executor using os/exec.
// When stdout is a terminal the child runs on a PTY so the package manager
// keeps its progress bars and colors; otherwise the parent's streams are
// attached directly.
type Executor struct {
	logger ports.Logger

	// isTTY is swapped out in tests.
	isTTY func() bool
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		isTTY: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// Run executes cmd and blocks until the child exits.
// A non-zero exit is returned as domain.ErrInstallFailed carrying the exit
// code; failures to start at all are domain.ErrSpawnFailed.
func (e *Executor) Run(ctx context.Context, cmd domain.InstallCommand) error {
	c := exec.CommandContext(ctx, cmd.Command, cmd.Args...) //nolint:gosec // manager and args are built from the pinned manifest
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	c.Env = os.Environ()

	e.logger.Debug("spawning " + cmd.String())

	var waitErr error
	if e.isTTY() {
		waitErr = runPty(c)
	} else {
		waitErr = runPlain(c)
	}

	if waitErr == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		err := zerr.Wrap(waitErr, domain.ErrInstallFailed.Error())
		return zerr.With(err, "exit_code", exitErr.ExitCode())
	}
	return zerr.Wrap(waitErr, domain.ErrSpawnFailed.Error())
}

func runPlain(c *exec.Cmd) error {
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

func runPty(c *exec.Cmd) error {
	ptmx, err := pty.Start(c)
	if err != nil {
		return err
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// The PTY merges the child's stdout and stderr into one stream.
		_, _ = io.Copy(os.Stdout, ptmx)
	}()

	waitErr := c.Wait()
	_ = ptmx.Close()
	<-ioDone

	return waitErr
}
