package tui

import "github.com/charmbracelet/lipgloss"

// truncate shortens text to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

var (
	// Colors
	colorPrimary   = lipgloss.Color("#059669")
	colorSecondary = lipgloss.Color("#06B6D4")
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorWarning   = lipgloss.Color("#F59E0B")
	colorMuted     = lipgloss.Color("#6B7280")
	colorWhite     = lipgloss.Color("#F9FAFB")

	// Logo style
	styleLogo = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle
	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Box
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// categoryStyle maps a suggestion category to its label color.
var categoryStyle = map[string]lipgloss.Style{
	"spelling":    lipgloss.NewStyle().Foreground(colorError).Bold(true),
	"punctuation": lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
	"tone":        lipgloss.NewStyle().Foreground(colorSecondary).Bold(true),
	"style":       lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Bold(true),
	"mixing":      lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Bold(true),
	"euphony":     lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
}
