// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal    = lipgloss.Color("#0E9F8C")
	Ash     = lipgloss.Color("#6B7280")
	White   = lipgloss.Color("#FFFFFF")
	Night   = lipgloss.Color("#101726")
	Jade    = lipgloss.Color("#1F9D55")
	Crimson = lipgloss.Color("#C81E3C")
	Amber   = lipgloss.Color("#E08A00")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)
