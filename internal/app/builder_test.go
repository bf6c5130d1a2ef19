package app_test

import (
	"context"
	"os"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/peerpin/peerpin/internal/app"
	_ "github.com/peerpin/peerpin/internal/wiring" // Register providers
	"github.com/stretchr/testify/require"
)

// TestAppWiring builds the full component graph in an empty directory to
// catch broken node registrations before any command runs.
func TestAppWiring(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Chdir(cwd))
	}()
	require.NoError(t, os.Chdir(t.TempDir()))

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
