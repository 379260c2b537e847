package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/youngsunson/spellv3/internal/logging"
	"github.com/youngsunson/spellv3/internal/tui"
)

func newReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Open the interactive review UI",
		Long: `Review launches the full-screen terminal UI: load a document,
run an analysis, then walk through the suggestions accepting or
dismissing each one. Accepted corrections are applied in place and
can be written back to the file.

First run opens a setup wizard to pick a provider.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			logger := logging.New(debug)
			defer logger.Sync()

			app := tui.NewApp(logger)
			p := tea.NewProgram(
				app,
				tea.WithAltScreen(),
			)

			if _, err := p.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return nil
		},
	}
}
