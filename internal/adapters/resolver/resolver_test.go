package resolver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/peerpin/peerpin/internal/adapters/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installPackage(t *testing.T, root, name, version string) string {
	t.Helper()
	dir := filepath.Join(root, "node_modules", name)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	path := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"`+name+`","version":"`+version+`"}`), 0o600))
	return path
}

func TestNodeResolver_Resolve(t *testing.T) {
	t.Run("direct node_modules", func(t *testing.T) {
		root := t.TempDir()
		want := installPackage(t, root, "eslint", "9.39.1")

		got, err := resolver.NewNodeResolver().Resolve(root, "eslint")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("scoped package", func(t *testing.T) {
		root := t.TempDir()
		want := installPackage(t, root, "@acme/eslint-plugin", "2.0.0")

		got, err := resolver.NewNodeResolver().Resolve(root, "@acme/eslint-plugin")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("hoisted into ancestor", func(t *testing.T) {
		workspaceRoot := t.TempDir()
		project := filepath.Join(workspaceRoot, "packages", "web")
		require.NoError(t, os.MkdirAll(project, 0o750))
		want := installPackage(t, workspaceRoot, "prettier", "3.3.3")

		got, err := resolver.NewNodeResolver().Resolve(project, "prettier")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("nearest installation wins", func(t *testing.T) {
		workspaceRoot := t.TempDir()
		project := filepath.Join(workspaceRoot, "packages", "web")
		require.NoError(t, os.MkdirAll(project, 0o750))
		installPackage(t, workspaceRoot, "eslint", "8.0.0")
		want := installPackage(t, project, "eslint", "9.39.1")

		got, err := resolver.NewNodeResolver().Resolve(project, "eslint")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not installed", func(t *testing.T) {
		_, err := resolver.NewNodeResolver().Resolve(t.TempDir(), "eslint")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not installed")
	})

	t.Run("empty root", func(t *testing.T) {
		_, err := resolver.NewNodeResolver().Resolve("", "eslint")
		require.Error(t, err)
	})
}
