package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func optionLabel(value, off string) string {
	if value == "" {
		return off
	}
	return value
}

func (a *App) renderDocument() string {
	if a.state.buffer == nil {
		return a.renderWelcome()
	}

	var b strings.Builder
	meta := a.state.buffer.Metadata()

	// Document info header
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(meta.Title)

	metaParts := []string{
		meta.FileSizeHuman(),
		fmt.Sprintf("~%d words", meta.WordCount),
	}
	tokens := estimateTokens(a.state.buffer.Content())
	limit := getContextLimit(a.state.config.Model)
	tokenInfo := fmt.Sprintf("~%d tokens", tokens)
	if tokens > limit/2 {
		tokenInfo = lipgloss.NewStyle().Foreground(colorWarning).Render(tokenInfo + " (long for " + a.state.config.Model + ")")
	}
	metaParts = append(metaParts, tokenInfo)

	metaLine := styleSubtitle.Render(strings.Join(metaParts, "  |  "))

	infoBox := styleBox.
		Width(min(70, a.width-4)).
		BorderForeground(colorSuccess).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, metaLine))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, infoBox))
	b.WriteString("\n\n")

	// Preview
	preview := a.state.buffer.Content()
	previewLines := strings.Split(preview, "\n")
	maxLines := min(8, a.height-18)
	if maxLines < 3 {
		maxLines = 3
	}
	if len(previewLines) > maxLines {
		previewLines = previewLines[:maxLines]
		previewLines = append(previewLines, "…")
	}
	previewBox := styleBox.
		Width(min(70, a.width-4)).
		Foreground(colorMuted).
		Render(strings.Join(previewLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, previewBox))
	b.WriteString("\n\n")

	// Analysis options
	opts := a.state.opts
	optLines := []string{
		fmt.Sprintf("  [t] Tone conversion:   %s", optionLabel(opts.Tone, "off")),
		fmt.Sprintf("  [s] Style conversion:  %s", optionLabel(opts.Style, "off")),
		fmt.Sprintf("  [c] Content feedback:  %v", opts.ContentFeedback),
	}
	optBox := styleBox.
		Width(min(70, a.width-4)).
		Render(strings.Join(optLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, optBox))
	b.WriteString("\n\n")

	statusBar := styleStatusBar.Render("[Enter] Analyze  [t/s/c] Options  [n] New document  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
