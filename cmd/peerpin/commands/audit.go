package commands

import (
	"fmt"

	"github.com/peerpin/peerpin/internal/app"
	"github.com/peerpin/peerpin/internal/core/domain"
	"github.com/peerpin/peerpin/internal/ui/report"
	"github.com/spf13/cobra"
)

func (c *CLI) newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check installed peer tools against the pinned versions",
		Long: "Resolves each pinned peer through the consumer's node_modules and reports\n" +
			"missing packages and version mismatches. Intended as a post-install hook:\n" +
			"findings are advisory and never fail the host install unless --strict is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifestPath, _ := cmd.Flags().GetString("manifest")
			root, _ := cmd.Flags().GetString("root")
			strict, _ := cmd.Flags().GetBool("strict")

			if root == "" {
				root = consumerDir()
			}

			result, err := c.app.Audit(cmd.Context(), app.AuditOptions{
				ManifestPath: manifestPath,
				Root:         root,
			})
			if err != nil {
				if strict {
					return err
				}
				// A broken audit must never abort the host install.
				c.logger.Warn("peer audit skipped: " + err.Error())
				return nil
			}

			msg := report.Render(result)
			if msg == "" {
				return nil
			}

			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), msg)
			if strict {
				return domain.ErrPeersOutdated
			}
			return nil
		},
	}
	cmd.Flags().String("manifest", "", "Path to the package manifest holding the pins")
	cmd.Flags().String("root", "", "Consumer project root to resolve installed peers in (defaults to INIT_CWD or the working directory)")
	cmd.Flags().Bool("strict", false, "Exit non-zero when peers are missing or mismatched")
	return cmd
}
