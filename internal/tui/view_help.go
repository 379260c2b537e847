package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	commands := []string{
		"  /help, /h      Show this help",
		"  /settings, /s  Open settings",
		"  /quit, /q      Quit spellv3",
		"",
		"  Or type a file path to load a document for review",
	}

	commandsBox := styleBox.
		Width(54).
		Render(strings.Join(commands, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, commandsBox))
	b.WriteString("\n\n")

	shortcutsTitle := styleSubtitle.Render("Review shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcuts := []string{
		"  j/k            Move between suggestions",
		"  a              Accept (apply to the document)",
		"  d              Dismiss",
		"  w              Write the corrected file",
		"  t/s/c          Toggle tone / style / content options",
		"  Esc            Go back / Quit",
	}

	shortcutsBox := styleBox.
		Width(54).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
