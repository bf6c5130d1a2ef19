// Package report renders audit results as human-readable advisories.
package report

import (
	"strings"

	"github.com/peerpin/peerpin/internal/core/domain"
)

// Render formats an audit result as a multi-line advisory.
// It returns the empty string when the audit found nothing to report, so the
// caller can stay silent on the happy path.
func Render(res *domain.AuditResult) string {
	if res == nil || res.Clean() {
		return ""
	}

	var b strings.Builder
	b.WriteString("Peer tool versions need attention.\n")

	if len(res.Missing) > 0 {
		b.WriteString("\nMissing peers:\n")
		for _, m := range res.Missing {
			b.WriteString("  - " + m.Name + "@" + m.Want + "\n")
		}
	}

	if len(res.Mismatched) > 0 {
		b.WriteString("\nVersion mismatches:\n")
		for _, m := range res.Mismatched {
			line := "  - " + m.Name + "@" + m.Want
			if m.Got != "" && m.Got != "unknown" {
				line += " (found " + m.Got + ")"
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\nRun 'peerpin install' to bring them in line.")
	return b.String()
}
