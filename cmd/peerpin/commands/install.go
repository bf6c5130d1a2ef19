package commands

import (
	"fmt"
	"os"

	"github.com/peerpin/peerpin/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the pinned peer tool versions",
		Long: "Detects the package manager governing the consumer project, builds the\n" +
			"exact-version install command for the pinned peers and runs it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, _ := cmd.Flags().GetString("manager")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			manifestPath, _ := cmd.Flags().GetString("manifest")

			plan, err := c.app.PrepareInstall(cmd.Context(), app.InstallOptions{
				Manager:      manager,
				Cwd:          consumerDir(),
				UserAgent:    os.Getenv("npm_config_user_agent"),
				ManifestPath: manifestPath,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if plan.Empty() {
				_, _ = fmt.Fprintln(out, "no peer dependencies declared; nothing to install")
				return nil
			}

			_, _ = fmt.Fprintln(out, plan.Command.String())
			if dryRun {
				return nil
			}

			return c.app.Execute(cmd.Context(), plan)
		},
	}
	cmd.Flags().StringP("manager", "m", "", "Package manager to use: npm, pnpm, or bun")
	cmd.Flags().Bool("dry-run", false, "Print the install command without executing it")
	cmd.Flags().String("manifest", "", "Path to the package manifest holding the pins")
	return cmd
}

// consumerDir returns the consumer project directory.
// Package managers record the original invocation directory in INIT_CWD
// when running lifecycle scripts; outside of one, the working directory is
// the consumer project.
func consumerDir() string {
	if dir := os.Getenv("INIT_CWD"); dir != "" {
		return dir
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
