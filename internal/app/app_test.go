package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/peerpin/peerpin/internal/app"
	"github.com/peerpin/peerpin/internal/core/domain"
	"github.com/peerpin/peerpin/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	manifests *mocks.MockManifestLoader
	detector  *mocks.MockManagerDetector
	workspace *mocks.MockWorkspaceResolver
	resolver  *mocks.MockPeerResolver
	executor  *mocks.MockExecutor
	config    *mocks.MockConfigLoader
	logger    *mocks.MockLogger
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		manifests: mocks.NewMockManifestLoader(ctrl),
		detector:  mocks.NewMockManagerDetector(ctrl),
		workspace: mocks.NewMockWorkspaceResolver(ctrl),
		resolver:  mocks.NewMockPeerResolver(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		config:    mocks.NewMockConfigLoader(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	// Logging is incidental to the behavior under test.
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	f.app = app.New(
		f.manifests,
		f.detector,
		f.workspace,
		f.resolver,
		f.executor,
		f.config,
		f.logger,
		noop.NewTracerProvider().Tracer("test"),
	)
	return f
}

func toolingManifest() *domain.Manifest {
	return &domain.Manifest{
		Name:    "@acme/tooling-config",
		Version: "4.2.0",
		Peers: []domain.Peer{
			{Name: "eslint", Version: "9.39.1"},
			{Name: "prettier", Version: "3.3.3"},
		},
	}
}

func TestPrepareInstall(t *testing.T) {
	t.Run("builds pnpm command inside workspace", func(t *testing.T) {
		f := newFixture(t)

		f.config.EXPECT().Load("/proj/pkg").Return(&domain.Config{}, nil)
		f.manifests.EXPECT().Load(filepath.Join("/proj/pkg", "package.json")).Return(toolingManifest(), nil)
		f.detector.EXPECT().Detect("", "pnpm/9.0.0 npm/?", "/proj/pkg").Return(domain.ManagerPnpm, nil)
		f.workspace.EXPECT().Find("/proj/pkg").Return("/proj", true)
		f.workspace.EXPECT().Load("/proj").Return(&domain.Workspace{Root: "/proj", Packages: []string{"pkg/*"}}, nil)

		plan, err := f.app.PrepareInstall(context.Background(), app.InstallOptions{
			Cwd:       "/proj/pkg",
			UserAgent: "pnpm/9.0.0 npm/?",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.ManagerPnpm, plan.Manager)
		assert.Equal(t, []domain.Specifier{"eslint@9.39.1", "prettier@3.3.3"}, plan.Packages)
		assert.Equal(t, []string{"add", "-D", "-w", "--save-exact", "eslint@9.39.1", "prettier@3.3.3"}, plan.Command.Args)
		assert.Equal(t, "/proj", plan.Command.Dir)
	})

	t.Run("empty peer list short-circuits", func(t *testing.T) {
		f := newFixture(t)

		f.config.EXPECT().Load("/proj").Return(&domain.Config{}, nil)
		f.manifests.EXPECT().Load(filepath.Join("/proj", "package.json")).
			Return(&domain.Manifest{Name: "@acme/tooling-config"}, nil)

		plan, err := f.app.PrepareInstall(context.Background(), app.InstallOptions{Cwd: "/proj"})
		require.NoError(t, err)
		assert.True(t, plan.Empty())
	})

	t.Run("flag wins over config manager", func(t *testing.T) {
		f := newFixture(t)

		f.config.EXPECT().Load("/proj").Return(&domain.Config{Manager: "pnpm"}, nil)
		f.manifests.EXPECT().Load(gomock.Any()).Return(toolingManifest(), nil)
		f.detector.EXPECT().Detect("bun", "", "/proj").Return(domain.ManagerBun, nil)
		f.workspace.EXPECT().Find("/proj").Return("", false)

		plan, err := f.app.PrepareInstall(context.Background(), app.InstallOptions{Manager: "bun", Cwd: "/proj"})
		require.NoError(t, err)
		assert.Equal(t, domain.ManagerBun, plan.Manager)
	})

	t.Run("config manager used when no flag", func(t *testing.T) {
		f := newFixture(t)

		f.config.EXPECT().Load("/proj").Return(&domain.Config{Manager: "pnpm"}, nil)
		f.manifests.EXPECT().Load(gomock.Any()).Return(toolingManifest(), nil)
		f.detector.EXPECT().Detect("pnpm", "", "/proj").Return(domain.ManagerPnpm, nil)
		f.workspace.EXPECT().Find("/proj").Return("", false)

		plan, err := f.app.PrepareInstall(context.Background(), app.InstallOptions{Cwd: "/proj"})
		require.NoError(t, err)
		assert.Equal(t, domain.ManagerPnpm, plan.Manager)
	})

	t.Run("config manifest override is relative to cwd", func(t *testing.T) {
		f := newFixture(t)

		f.config.EXPECT().Load("/proj").Return(&domain.Config{Manifest: "tools/package.json"}, nil)
		f.manifests.EXPECT().Load(filepath.Join("/proj", "tools/package.json")).Return(toolingManifest(), nil)
		f.detector.EXPECT().Detect("", "", "/proj").Return(domain.ManagerNpm, nil)
		f.workspace.EXPECT().Find("/proj").Return("", false)

		_, err := f.app.PrepareInstall(context.Background(), app.InstallOptions{Cwd: "/proj"})
		require.NoError(t, err)
	})

	t.Run("broken workspace manifest does not change the root", func(t *testing.T) {
		f := newFixture(t)

		f.config.EXPECT().Load("/proj/pkg").Return(&domain.Config{}, nil)
		f.manifests.EXPECT().Load(gomock.Any()).Return(toolingManifest(), nil)
		f.detector.EXPECT().Detect("", "", "/proj/pkg").Return(domain.ManagerPnpm, nil)
		f.workspace.EXPECT().Find("/proj/pkg").Return("/proj", true)
		f.workspace.EXPECT().Load("/proj").Return(nil, zerr.New("bad yaml"))

		plan, err := f.app.PrepareInstall(context.Background(), app.InstallOptions{Cwd: "/proj/pkg"})
		require.NoError(t, err)
		assert.Equal(t, "/proj", plan.Command.Dir)
	})

	t.Run("detector error propagates", func(t *testing.T) {
		f := newFixture(t)

		f.config.EXPECT().Load("/proj").Return(&domain.Config{}, nil)
		f.manifests.EXPECT().Load(gomock.Any()).Return(toolingManifest(), nil)
		f.detector.EXPECT().Detect("yarn", "", "/proj").Return(domain.Manager(""), domain.ErrUnsupportedManager)

		_, err := f.app.PrepareInstall(context.Background(), app.InstallOptions{Manager: "yarn", Cwd: "/proj"})
		require.ErrorIs(t, err, domain.ErrUnsupportedManager)
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		f := newFixture(t)

		f.config.EXPECT().Load("/proj").Return(&domain.Config{}, nil).Times(2)
		f.manifests.EXPECT().Load(gomock.Any()).Return(toolingManifest(), nil).Times(2)
		f.detector.EXPECT().Detect("", "", "/proj").Return(domain.ManagerNpm, nil).Times(2)
		f.workspace.EXPECT().Find("/proj").Return("", false).Times(2)

		opts := app.InstallOptions{Cwd: "/proj"}
		first, err := f.app.PrepareInstall(context.Background(), opts)
		require.NoError(t, err)
		second, err := f.app.PrepareInstall(context.Background(), opts)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestExecute(t *testing.T) {
	t.Run("runs the planned command", func(t *testing.T) {
		f := newFixture(t)

		plan := &domain.InstallPlan{
			Manager:  domain.ManagerNpm,
			Packages: []domain.Specifier{"eslint@9.39.1"},
			Command: domain.InstallCommand{
				Command: "npm",
				Args:    []string{"install", "--save-dev", "--save-exact", "eslint@9.39.1"},
				Dir:     "/proj",
			},
		}
		f.executor.EXPECT().Run(gomock.Any(), plan.Command).Return(nil)

		require.NoError(t, f.app.Execute(context.Background(), plan))
	})

	t.Run("empty plan is a no-op", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.app.Execute(context.Background(), &domain.InstallPlan{}))
		require.NoError(t, f.app.Execute(context.Background(), nil))
	})

	t.Run("executor failure propagates", func(t *testing.T) {
		f := newFixture(t)

		plan := &domain.InstallPlan{
			Packages: []domain.Specifier{"eslint@9.39.1"},
			Command:  domain.InstallCommand{Command: "npm"},
		}
		f.executor.EXPECT().Run(gomock.Any(), plan.Command).Return(domain.ErrInstallFailed)

		err := f.app.Execute(context.Background(), plan)
		require.ErrorIs(t, err, domain.ErrInstallFailed)
	})
}

func consumerRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(`{"name":"consumer"}`), 0o600))
	return root
}

func TestAudit(t *testing.T) {
	t.Run("all peers match", func(t *testing.T) {
		f := newFixture(t)
		root := consumerRoot(t)

		f.manifests.EXPECT().Load(filepath.Join(root, "package.json")).Return(toolingManifest(), nil)
		f.resolver.EXPECT().Resolve(root, "eslint").Return("/mods/eslint/package.json", nil)
		f.manifests.EXPECT().Version("/mods/eslint/package.json").Return("9.39.1", nil)
		f.resolver.EXPECT().Resolve(root, "prettier").Return("/mods/prettier/package.json", nil)
		f.manifests.EXPECT().Version("/mods/prettier/package.json").Return("3.3.3", nil)

		res, err := f.app.Audit(context.Background(), app.AuditOptions{Root: root})
		require.NoError(t, err)
		assert.True(t, res.Clean())
		assert.Len(t, res.Peers, 2)
	})

	t.Run("missing peer is recorded, not fatal", func(t *testing.T) {
		f := newFixture(t)
		root := consumerRoot(t)

		f.manifests.EXPECT().Load(gomock.Any()).Return(toolingManifest(), nil)
		f.resolver.EXPECT().Resolve(root, "eslint").Return("", zerr.New("package not installed"))
		f.resolver.EXPECT().Resolve(root, "prettier").Return("/mods/prettier/package.json", nil)
		f.manifests.EXPECT().Version("/mods/prettier/package.json").Return("3.3.3", nil)

		res, err := f.app.Audit(context.Background(), app.AuditOptions{Root: root})
		require.NoError(t, err)
		require.Len(t, res.Missing, 1)
		assert.Equal(t, "eslint", res.Missing[0].Name)
		assert.Equal(t, "9.39.1", res.Missing[0].Want)
		assert.Contains(t, res.Missing[0].Reason, "not installed")
		assert.Empty(t, res.Mismatched)
	})

	t.Run("version mismatch carries both versions", func(t *testing.T) {
		f := newFixture(t)
		root := consumerRoot(t)

		f.manifests.EXPECT().Load(gomock.Any()).Return(toolingManifest(), nil)
		f.resolver.EXPECT().Resolve(root, "eslint").Return("/mods/eslint/package.json", nil)
		f.manifests.EXPECT().Version("/mods/eslint/package.json").Return("8.57.0", nil)
		f.resolver.EXPECT().Resolve(root, "prettier").Return("/mods/prettier/package.json", nil)
		f.manifests.EXPECT().Version("/mods/prettier/package.json").Return("3.3.3", nil)

		res, err := f.app.Audit(context.Background(), app.AuditOptions{Root: root})
		require.NoError(t, err)
		require.Len(t, res.Mismatched, 1)
		assert.Equal(t, domain.MismatchedPeer{Name: "eslint", Want: "9.39.1", Got: "8.57.0"}, res.Mismatched[0])
	})

	t.Run("unparseable installed manifest becomes unknown mismatch", func(t *testing.T) {
		f := newFixture(t)
		root := consumerRoot(t)

		f.manifests.EXPECT().Load(gomock.Any()).Return(toolingManifest(), nil)
		f.resolver.EXPECT().Resolve(root, "eslint").Return("/mods/eslint/package.json", nil)
		f.manifests.EXPECT().Version("/mods/eslint/package.json").Return("", zerr.New("no version field"))
		f.resolver.EXPECT().Resolve(root, "prettier").Return("/mods/prettier/package.json", nil)
		f.manifests.EXPECT().Version("/mods/prettier/package.json").Return("3.3.3", nil)

		res, err := f.app.Audit(context.Background(), app.AuditOptions{Root: root})
		require.NoError(t, err)
		require.Len(t, res.Mismatched, 1)
		assert.Equal(t, "unknown", res.Mismatched[0].Got)
		assert.Contains(t, res.Mismatched[0].Reason, "no version field")
	})

	t.Run("no peers skips resolution entirely", func(t *testing.T) {
		f := newFixture(t)
		root := consumerRoot(t)

		f.manifests.EXPECT().Load(gomock.Any()).Return(&domain.Manifest{Name: "@acme/tooling-config"}, nil)

		res, err := f.app.Audit(context.Background(), app.AuditOptions{Root: root})
		require.NoError(t, err)
		assert.True(t, res.Clean())
	})

	t.Run("rootless consumer falls back to the pin manifest directory", func(t *testing.T) {
		f := newFixture(t)
		manifestPath := "/elsewhere/tooling/package.json"

		f.manifests.EXPECT().Load(manifestPath).Return(toolingManifest(), nil)
		f.resolver.EXPECT().Resolve("/elsewhere/tooling", "eslint").Return("", zerr.New("package not installed"))
		f.resolver.EXPECT().Resolve("/elsewhere/tooling", "prettier").Return("", zerr.New("package not installed"))

		res, err := f.app.Audit(context.Background(), app.AuditOptions{
			ManifestPath: manifestPath,
			Root:         filepath.Join(t.TempDir(), "missing"),
		})
		require.NoError(t, err)
		assert.Len(t, res.Missing, 2)
	})

	t.Run("unreadable pin manifest fails the audit", func(t *testing.T) {
		f := newFixture(t)

		f.manifests.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrManifestReadFailed)

		_, err := f.app.Audit(context.Background(), app.AuditOptions{Root: t.TempDir()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "peer audit could not be completed")
	})
}
