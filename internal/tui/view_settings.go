package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/youngsunson/spellv3/internal/config"
)

func (a *App) renderSettings() string {
	switch a.state.settingsMode {
	case "provider":
		return a.renderSettingsProvider()
	case "model":
		return a.renderSettingsModel()
	case "apikey":
		return a.renderSettingsAPIKey()
	default:
		return a.renderSettingsMain()
	}
}

func (a *App) renderSettingsMain() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	provider := config.GetProvider(a.state.config.Provider)
	providerName := a.state.config.Provider
	if provider != nil {
		providerName = provider.Name
	}

	maskedKey := "Not set"
	if a.state.config.APIKey != "" {
		if len(a.state.config.APIKey) > 8 {
			maskedKey = a.state.config.APIKey[:4] + "****" + a.state.config.APIKey[len(a.state.config.APIKey)-4:]
		} else {
			maskedKey = "****"
		}
	}

	configLines := []string{
		fmt.Sprintf("  Provider: %s", providerName),
		fmt.Sprintf("  Model:    %s", a.state.config.Model),
		fmt.Sprintf("  API Key:  %s", maskedKey),
	}

	if a.state.config.Local != nil && a.state.config.Local.Enabled {
		configLines = append(configLines, "")
		configLines = append(configLines, "  Offline fallback:")
		configLines = append(configLines, fmt.Sprintf("    Provider: %s", a.state.config.Local.Provider))
		configLines = append(configLines, fmt.Sprintf("    Model:    %s", a.state.config.Local.Model))
	}

	configBox := styleBox.
		Width(50).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configBox))
	b.WriteString("\n\n")

	actions := []string{
		"  [p] Change provider",
		"  [m] Change model",
		"  [k] Update API key",
	}
	actionsBox := styleBox.
		Width(50).
		Render(strings.Join(actions, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, actionsBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func (a *App) renderSettingsProvider() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Choose provider")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	var lines []string
	for i, p := range config.Providers {
		marker := "[ ]"
		if p.ID == a.state.config.Provider {
			marker = "[x]"
		}
		line := fmt.Sprintf("  %s %-12s %s", marker, p.Name, p.Description)
		if i == a.state.selectedProvider {
			line = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).Render("> " + line[2:])
		} else {
			line = lipgloss.NewStyle().Foreground(colorMuted).Render(line)
		}
		lines = append(lines, line)
	}

	box := styleBox.Width(54).Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[j/k] Navigate  [Enter] Select  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func (a *App) renderSettingsModel() string {
	var b strings.Builder

	p := config.GetProvider(a.state.config.Provider)
	if p == nil {
		return a.renderSettingsMain()
	}

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(fmt.Sprintf("Choose %s model", p.Name))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	var lines []string
	for i, m := range p.Models {
		marker := "[ ]"
		if m == a.state.config.Model {
			marker = "[x]"
		}
		line := fmt.Sprintf("  %s %s", marker, m)
		if i == a.state.selectedModel {
			line = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).Render("> " + line[2:])
		} else {
			line = lipgloss.NewStyle().Foreground(colorMuted).Render(line)
		}
		lines = append(lines, line)
	}

	box := styleBox.Width(54).Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[j/k] Navigate  [Enter] Select  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func (a *App) renderSettingsAPIKey() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Update API key")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	inputBox := styleBox.
		Width(60).
		BorderForeground(colorSecondary).
		Render(a.state.apiKeyInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Enter] Save  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
