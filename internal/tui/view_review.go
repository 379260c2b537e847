package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderReview() string {
	var b strings.Builder

	// Header: document + tally
	header := ""
	if a.state.buffer != nil {
		header = a.state.buffer.Metadata().Title + "  ·  "
	}
	header += fmt.Sprintf("%d suggestions", len(a.state.items))
	if a.state.applied > 0 {
		header += fmt.Sprintf("  ·  %d applied", a.state.applied)
	}
	if a.state.buffer != nil && a.state.buffer.Dirty() {
		header += "  ·  unsaved"
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render(header)))
	b.WriteString("\n\n")

	if len(a.state.items) == 0 {
		done := lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true).
			Render("✓ All suggestions handled")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, done))
		b.WriteString("\n\n")

		if a.state.result != nil && a.state.result.Content != nil {
			b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.renderContentBox()))
			b.WriteString("\n\n")
		}

		status := styleStatusBar.Render("[w] Write file  [r] Re-analyze  [n] New document  [Esc] Back")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))
		return a.centerVertically(b.String())
	}

	// Visible window around the cursor
	maxRows := a.height - 16
	if maxRows < 3 {
		maxRows = 3
	}
	start := 0
	if a.state.cursor >= maxRows {
		start = a.state.cursor - maxRows + 1
	}
	end := min(start+maxRows, len(a.state.items))

	width := min(74, a.width-4)
	var rows []string
	for i := start; i < end; i++ {
		item := a.state.items[i]
		label := categoryStyle[string(item.cat)].Render(fmt.Sprintf("%-11s", strings.ToUpper(string(item.cat))))

		cursor := "  "
		line := fmt.Sprintf("%s %s %s → %s", cursor, label,
			truncate(item.current, 24), truncate(item.proposed, 24))
		if i == a.state.cursor {
			cursor = "> "
			line = lipgloss.NewStyle().Bold(true).Render(
				fmt.Sprintf("%s %s %s → %s", cursor, label,
					truncate(item.current, 24), truncate(item.proposed, 24)))
		}
		rows = append(rows, line)
	}

	listBox := styleBox.
		Width(width).
		BorderForeground(colorPrimary).
		Render(strings.Join(rows, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n")

	// Detail pane for the selected item
	sel := a.state.items[a.state.cursor]
	var detail []string
	detail = append(detail, fmt.Sprintf("Current:    %s", sel.current))
	if sel.proposed != "" {
		detail = append(detail, fmt.Sprintf("Suggested:  %s", sel.proposed))
	}
	if sel.detail != "" {
		detail = append(detail, fmt.Sprintf("Note:       %s", sel.detail))
	}
	if sel.position > 0 {
		detail = append(detail, fmt.Sprintf("Near word:  %d", sel.position))
	}
	detailBox := styleBox.
		Width(width).
		Render(strings.Join(detail, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, detailBox))
	b.WriteString("\n")

	if a.state.applyError != nil {
		errLine := lipgloss.NewStyle().Foreground(colorError).
			Render(truncate(a.state.applyError.Error(), width))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errLine))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := styleStatusBar.Render("[a] Accept  [d] Dismiss  [j/k] Move  [w] Write file  [n] New  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func (a *App) renderContentBox() string {
	c := a.state.result.Content
	var lines []string
	lines = append(lines, fmt.Sprintf("Content type: %s", c.ContentType))
	if c.Description != "" {
		lines = append(lines, c.Description)
	}
	for _, m := range c.MissingElements {
		lines = append(lines, "Missing: "+m)
	}
	for _, s := range c.Suggestions {
		lines = append(lines, "Suggestion: "+s)
	}
	return styleBox.
		Width(min(70, a.width-4)).
		Render(strings.Join(lines, "\n"))
}
