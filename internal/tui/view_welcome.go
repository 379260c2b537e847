package tui

import "github.com/charmbracelet/lipgloss"

const logo = `
 ███████╗██████╗ ███████╗██╗     ██╗
 ██╔════╝██╔══██╗██╔════╝██║     ██║
 ███████╗██████╔╝█████╗  ██║     ██║
 ╚════██║██╔═══╝ ██╔══╝  ██║     ██║
 ███████║██║     ███████╗███████╗███████╗
 ╚══════╝╚═╝     ╚══════╝╚══════╝╚══════╝ v3
`

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)

	subtitle := styleSubtitle.Render("বাংলা বানান ও ভাষা পরীক্ষক — Bangla Proofreading")

	status := "Connecting to provider..."
	if a.state.providerReady {
		status = "Provider ready: " + a.state.config.Provider + " / " + a.state.config.Model
	}
	statusLabel := styleSubtitle.Render(status)

	inputBox := styleBox.
		Width(min(70, a.width-4)).
		BorderForeground(colorSecondary).
		Render(a.state.input.View())

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		"",
		statusLabel,
		"",
		inputBox,
	)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusBar := styleStatusBar.Render("[Enter] Load file  [?] Help  [Esc] Quit")
	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
