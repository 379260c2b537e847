// Package formatter renders an analysis result for the one-shot CLI
// path. The TUI has its own presentation.
package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/youngsunson/spellv3/internal/analysis"
)

// DisplayResults formats and writes the analysis result
func DisplayResults(w io.Writer, res *analysis.Result, format string) error {
	switch format {
	case "json":
		return displayJSON(w, res)
	case "yaml":
		return displayYAML(w, res)
	case "human":
		fallthrough
	default:
		displayHuman(w, res)
	}
	return nil
}

func displayJSON(w io.Writer, res *analysis.Result) error {
	output, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func displayYAML(w io.Writer, res *analysis.Result) error {
	output, err := yaml.Marshal(res)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func displayHuman(w io.Writer, res *analysis.Result) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	magenta := color.New(color.FgMagenta, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Fprintln(w)

	if res.Empty() {
		green.Fprintln(w, "✓ No issues found")
		return
	}

	if len(res.SpellingErrors) > 0 {
		red.Fprintf(w, "✗ SPELLING (%d):\n", len(res.SpellingErrors))
		for i, e := range res.SpellingErrors {
			fmt.Fprintf(w, "   %d. %s → %s\n", i+1, e.Wrong, color.GreenString(strings.Join(e.Suggestions, ", ")))
		}
		fmt.Fprintln(w)
	}

	if len(res.PunctuationIssues) > 0 {
		yellow.Fprintf(w, "⚠ PUNCTUATION (%d):\n", len(res.PunctuationIssues))
		for i, p := range res.PunctuationIssues {
			fmt.Fprintf(w, "   %d. %s\n", i+1, p.Issue)
			fmt.Fprintf(w, "      %s\n", p.CurrentSentence)
			fmt.Fprintf(w, "      %s\n", color.GreenString(p.CorrectedSentence))
			if p.Explanation != "" {
				fmt.Fprintf(w, "      %s\n", color.HiBlackString(p.Explanation))
			}
		}
		fmt.Fprintln(w)
	}

	if len(res.ToneSuggestions) > 0 {
		cyan.Fprintf(w, "◆ TONE (%d):\n", len(res.ToneSuggestions))
		for i, t := range res.ToneSuggestions {
			fmt.Fprintf(w, "   %d. %s → %s\n", i+1, t.Current, color.GreenString(t.Suggestion))
			if t.Reason != "" {
				fmt.Fprintf(w, "      %s\n", color.HiBlackString(t.Reason))
			}
		}
		fmt.Fprintln(w)
	}

	if len(res.StyleSuggestions) > 0 {
		magenta.Fprintf(w, "◆ STYLE (%d):\n", len(res.StyleSuggestions))
		for i, s := range res.StyleSuggestions {
			fmt.Fprintf(w, "   %d. %s → %s", i+1, s.Current, color.GreenString(s.Suggestion))
			if s.Type != "" {
				fmt.Fprintf(w, " (%s)", s.Type)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	if res.Mixing.Detected {
		magenta.Fprintln(w, "◆ STYLE MIXING DETECTED:")
		if res.Mixing.RecommendedStyle != "" {
			fmt.Fprintf(w, "   Recommended: %s\n", res.Mixing.RecommendedStyle)
		}
		if res.Mixing.Reason != "" {
			fmt.Fprintf(w, "   %s\n", color.HiBlackString(res.Mixing.Reason))
		}
		for i, c := range res.Mixing.Corrections {
			fmt.Fprintf(w, "   %d. %s → %s\n", i+1, c.Current, color.GreenString(c.Suggestion))
		}
		fmt.Fprintln(w)
	}

	if len(res.EuphonyImprovements) > 0 {
		cyan.Fprintf(w, "♪ EUPHONY (%d):\n", len(res.EuphonyImprovements))
		for i, e := range res.EuphonyImprovements {
			fmt.Fprintf(w, "   %d. %s → %s\n", i+1, e.Current, color.GreenString(strings.Join(e.Suggestions, ", ")))
			if e.Reason != "" {
				fmt.Fprintf(w, "      %s\n", color.HiBlackString(e.Reason))
			}
		}
		fmt.Fprintln(w)
	}

	if res.Content != nil {
		white.Fprintln(w, "▤ CONTENT:")
		fmt.Fprintf(w, "   Type: %s\n", res.Content.ContentType)
		if res.Content.Description != "" {
			fmt.Fprintf(w, "   %s\n", res.Content.Description)
		}
		for _, m := range res.Content.MissingElements {
			fmt.Fprintf(w, "   Missing: %s\n", m)
		}
		for _, s := range res.Content.Suggestions {
			fmt.Fprintf(w, "   Suggestion: %s\n", s)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "%d suggestions · %s\n", res.Count(),
		color.HiBlackString("run with -o json or -o yaml for machine-readable output"))
}
