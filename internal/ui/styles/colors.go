package styles

import "github.com/charmbracelet/lipgloss"

// Semantic colors, taken from the Mocha flavor of the palette this
// tool edits.
var (
	Accent  = lipgloss.Color("#cba6f7") // mauve - highlights, interactive
	Success = lipgloss.Color("#a6e3a1") // green - success, additions
	Warning = lipgloss.Color("#f9e2af") // yellow - warnings, changed colors
	Error   = lipgloss.Color("#f38ba8") // red - errors, deletions
	Info    = lipgloss.Color("#89b4fa") // blue - info
	Muted   = lipgloss.Color("#6c7086") // overlay0 - secondary text

	// Background colors
	BgHighlight = lipgloss.Color("#313244") // surface0 - selected items
)

// Semantic color aliases for clarity
var (
	// Palette row colors
	ColorChanged   = Warning // colors the rules edited
	ColorUnchanged = Muted   // colors that passed through

	// Diff colors
	ColorDiffAdd     = Success // added lines
	ColorDiffRemove  = Error   // removed lines
	ColorDiffContext = Muted   // context lines
	ColorDiffHunk    = Accent  // hunk headers
)
