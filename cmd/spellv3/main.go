package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "spellv3",
		Short: "Bangla proofreading powered by LLMs",
		Long: `spellv3 checks Bangla text for spelling, punctuation, tone, style
mixing and euphony problems using an LLM provider of your choice.

Run 'spellv3 review' for the interactive terminal UI, or
'spellv3 check FILE' for a one-shot report.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs")

	rootCmd.AddCommand(
		newVersionCmd(),
		newCheckCmd(),
		newReviewCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
			} else {
				fmt.Printf("spellv3 version %s\n", version)
			}
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
