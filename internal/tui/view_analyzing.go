package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderAnalyzing() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Analyzing")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if a.state.buffer != nil {
		docInfo := styleSubtitle.Render(truncate(a.state.buffer.Metadata().Title, 60))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, docInfo))
		b.WriteString("\n\n")
	}

	spinLine := fmt.Sprintf("%s Checking spelling, punctuation and style with %s...",
		a.state.spin.View(), a.state.config.Model)
	spinBox := styleBox.
		Width(min(64, a.width-4)).
		Render(spinLine)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, spinBox))
	b.WriteString("\n\n")

	hint := styleSubtitle.Render("This usually takes a few seconds")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, hint))

	return a.centerVertically(b.String())
}
