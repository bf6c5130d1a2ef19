// Package app implements the application layer for peerpin.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peerpin/peerpin/internal/core/domain"
	"github.com/peerpin/peerpin/internal/core/ports"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/zerr"
)

// ManifestName is the package manifest probed in the consumer root.
const ManifestName = "package.json"

// App represents the main application logic.
type App struct {
	manifests ports.ManifestLoader
	detector  ports.ManagerDetector
	workspace ports.WorkspaceResolver
	resolver  ports.PeerResolver
	executor  ports.Executor
	config    ports.ConfigLoader
	logger    ports.Logger
	tracer    trace.Tracer
}

// New creates a new App instance.
func New(
	manifests ports.ManifestLoader,
	detector ports.ManagerDetector,
	workspace ports.WorkspaceResolver,
	resolver ports.PeerResolver,
	executor ports.Executor,
	config ports.ConfigLoader,
	logger ports.Logger,
	tracer trace.Tracer,
) *App {
	return &App{
		manifests: manifests,
		detector:  detector,
		workspace: workspace,
		resolver:  resolver,
		executor:  executor,
		config:    config,
		logger:    logger,
		tracer:    tracer,
	}
}

// InstallOptions configures PrepareInstall.
// Environment-derived values (user agent, working directory) are passed in
// explicitly so the preparation itself stays deterministic and testable.
type InstallOptions struct {
	// Manager is the explicit --manager choice, empty for auto-detection.
	Manager string
	// Cwd is the consumer project directory.
	Cwd string
	// UserAgent is the invoking tool's npm_config_user_agent value.
	UserAgent string
	// ManifestPath overrides the manifest location.
	ManifestPath string
}

// PrepareInstall resolves everything needed to install the pinned peers:
// the manifest's peer list, the governing package manager, the workspace
// root and the final install command. An empty peer list yields an empty
// plan, which is a legitimate no-op rather than an error.
func (a *App) PrepareInstall(ctx context.Context, opts InstallOptions) (*domain.InstallPlan, error) {
	ctx, span := a.tracer.Start(ctx, "peerpin.prepare")
	defer span.End()

	cfg, err := a.config.Load(opts.Cwd)
	if err != nil {
		return nil, fail(span, err)
	}

	manifestPath := opts.ManifestPath
	if manifestPath == "" && cfg.Manifest != "" {
		manifestPath = filepath.Join(opts.Cwd, cfg.Manifest)
	}
	if manifestPath == "" {
		manifestPath = filepath.Join(opts.Cwd, ManifestName)
	}

	manifest, err := a.manifests.Load(manifestPath)
	if err != nil {
		return nil, fail(span, err)
	}

	pkgs := manifest.Specifiers()
	if len(pkgs) == 0 {
		return &domain.InstallPlan{}, nil
	}

	explicit := opts.Manager
	if explicit == "" {
		explicit = cfg.Manager
	}

	manager, err := a.detector.Detect(explicit, opts.UserAgent, opts.Cwd)
	if err != nil {
		return nil, fail(span, err)
	}

	command, err := domain.BuildInstallCommand(manager, pkgs, domain.BuildOptions{
		Cwd:           opts.Cwd,
		WorkspaceRoot: a.workspaceRoot(opts.Cwd),
	})
	if err != nil {
		return nil, fail(span, err)
	}

	return &domain.InstallPlan{
		Manager:  manager,
		Packages: pkgs,
		Command:  command,
	}, nil
}

// workspaceRoot finds the governing workspace root, if any.
// The workspace manifest's contents are informational only; a broken one
// must not change where the install runs.
func (a *App) workspaceRoot(cwd string) string {
	root, ok := a.workspace.Find(cwd)
	if !ok {
		return ""
	}

	ws, err := a.workspace.Load(root)
	switch {
	case err != nil:
		a.logger.Warn(fmt.Sprintf("workspace manifest in %s could not be parsed", root))
	case len(ws.Packages) > 0:
		a.logger.Debug(fmt.Sprintf("workspace %s declares %d package globs", root, len(ws.Packages)))
	}

	return root
}

// Execute runs a prepared install plan as a child process.
func (a *App) Execute(ctx context.Context, plan *domain.InstallPlan) error {
	if plan == nil || plan.Empty() {
		return nil
	}

	ctx, span := a.tracer.Start(ctx, "peerpin.install")
	defer span.End()

	if err := a.executor.Run(ctx, plan.Command); err != nil {
		return fail(span, err)
	}
	return nil
}

// AuditOptions configures Audit.
type AuditOptions struct {
	// ManifestPath overrides the manifest holding the pins.
	ManifestPath string
	// Root is the consumer project directory to resolve installed peers in.
	Root string
}

// Audit compares each pinned peer against what the consumer actually has
// installed. Resolution and parse failures on individual peers are recorded
// as findings, never returned as errors; only an unreadable pin manifest
// fails the audit itself.
func (a *App) Audit(ctx context.Context, opts AuditOptions) (*domain.AuditResult, error) {
	ctx, span := a.tracer.Start(ctx, "peerpin.audit")
	defer span.End()

	manifestPath := opts.ManifestPath
	if manifestPath == "" {
		manifestPath = filepath.Join(opts.Root, ManifestName)
	}

	manifest, err := a.manifests.Load(manifestPath)
	if err != nil {
		return nil, fail(span, zerr.Wrap(err, domain.ErrAuditFailed.Error()))
	}

	result := &domain.AuditResult{Peers: manifest.Peers}
	if len(manifest.Peers) == 0 {
		return result, nil
	}

	root := opts.Root
	if _, statErr := os.Stat(filepath.Join(root, ManifestName)); statErr != nil {
		// The consumer has no manifest at the given root; resolve relative
		// to the pin manifest instead.
		root = filepath.Dir(manifestPath)
	}

	for _, peer := range manifest.Peers {
		a.auditPeer(ctx, result, root, peer)
	}
	return result, nil
}

func (a *App) auditPeer(ctx context.Context, result *domain.AuditResult, root string, peer domain.Peer) {
	_, span := a.tracer.Start(ctx, "peerpin.resolve",
		trace.WithAttributes(attribute.String("peer", peer.Name)))
	defer span.End()

	path, err := a.resolver.Resolve(root, peer.Name)
	if err != nil {
		result.Missing = append(result.Missing, domain.MissingPeer{
			Name:   peer.Name,
			Want:   peer.Version,
			Reason: err.Error(),
		})
		return
	}

	got, err := a.manifests.Version(path)
	if err != nil {
		result.Mismatched = append(result.Mismatched, domain.MismatchedPeer{
			Name:   peer.Name,
			Want:   peer.Version,
			Got:    "unknown",
			Reason: err.Error(),
		})
		return
	}

	if got != peer.Version {
		result.Mismatched = append(result.Mismatched, domain.MismatchedPeer{
			Name: peer.Name,
			Want: peer.Version,
			Got:  got,
		})
	}
}

// fail records err on the span and passes it through.
func fail(span trace.Span, err error) error {
	span.SetStatus(codes.Error, err.Error())
	return err
}
