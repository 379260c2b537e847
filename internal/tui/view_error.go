package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/youngsunson/spellv3/internal/llm"
	"github.com/youngsunson/spellv3/internal/toon"
)

func (a *App) renderError() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	var srcErr error
	switch {
	case a.state.analysisError != nil:
		srcErr = a.state.analysisError
	case a.state.providerError != nil:
		srcErr = a.state.providerError
	case a.state.docError != nil:
		srcErr = a.state.docError
	}

	errMsg := "Unknown error"
	if srcErr != nil {
		errMsg = srcErr.Error()
	}

	errBox := styleBox.
		Width(min(60, a.width-4)).
		BorderForeground(colorError).
		Render(truncate(errMsg, 300))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	var suggestions []string
	if a.state.docError != nil {
		suggestions = append(suggestions, "Check the file path is correct")
		suggestions = append(suggestions, "Make sure the file exists and is readable")
	} else if errors.Is(srcErr, toon.ErrUnrecognized) {
		// The reply reached us fine; the model just ignored the format.
		suggestions = append(suggestions, "The model answered in an unreadable format")
		suggestions = append(suggestions, "Press [r] to run the analysis again")
	} else if srcErr != nil {
		switch llm.Category(srcErr) {
		case llm.ErrAuth:
			suggestions = append(suggestions, "Check your API key in ~/.config/spellv3/config.yaml")
			suggestions = append(suggestions, "Or press [s] to open settings")
		case llm.ErrQuota:
			suggestions = append(suggestions, "You've hit the API rate limit")
			suggestions = append(suggestions, "Wait a moment and press [r] to retry")
		case llm.ErrTimeout:
			suggestions = append(suggestions, "The request took too long")
			suggestions = append(suggestions, "Try again, or switch to a smaller document")
		case llm.ErrServer:
			suggestions = append(suggestions, "The provider is having trouble; press [r] to retry")
		default:
			if a.state.config != nil && a.state.config.Provider == "ollama" {
				suggestions = append(suggestions, "Make sure Ollama is running: ollama serve")
				suggestions = append(suggestions, "Or switch to a cloud provider in settings")
			} else {
				suggestions = append(suggestions, "Check your internet connection")
				suggestions = append(suggestions, "Or try Ollama for offline use")
			}
		}
	}

	if len(suggestions) > 0 {
		suggBox := styleBox.
			Width(min(60, a.width-4)).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[r] Retry  [s] Settings  [n] New  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
