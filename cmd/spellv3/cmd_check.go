package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/youngsunson/spellv3/internal/analysis"
	"github.com/youngsunson/spellv3/internal/config"
	"github.com/youngsunson/spellv3/internal/document"
	"github.com/youngsunson/spellv3/internal/formatter"
	"github.com/youngsunson/spellv3/internal/llm"
	"github.com/youngsunson/spellv3/internal/logging"
	"github.com/youngsunson/spellv3/internal/prompts"
	"github.com/youngsunson/spellv3/internal/review"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Analyze a file and print the suggestions",
		Long: `Check runs one analysis pass over a text file and prints every
suggestion without modifying anything.

Examples:
  spellv3 check letter.txt
  spellv3 check letter.txt -o json
  spellv3 check letter.txt --tone informal --style sadhu`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			tone, _ := cmd.Flags().GetString("tone")
			style, _ := cmd.Flags().GetString("style")
			content, _ := cmd.Flags().GetBool("content")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			debug, _ := cmd.Flags().GetBool("debug")

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cfg == nil {
				return errors.New("no configuration found; run 'spellv3 review' once to set up a provider")
			}
			if tone == "" {
				tone = cfg.Analysis.Tone
			}
			if style == "" {
				style = cfg.Analysis.Style
			}

			logger := logging.New(debug)
			defer logger.Sync()

			buf, err := document.Load(args[0])
			if err != nil {
				return err
			}

			provider, err := llm.NewProvider(cfg)
			if err != nil {
				return err
			}

			opts := prompts.Options{
				Tone:            tone,
				Style:           style,
				ContentFeedback: content || cfg.Analysis.ContentFeedback,
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			var spin *spinner.Spinner
			if output == "human" {
				spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond,
					spinner.WithWriter(os.Stderr))
				spin.Suffix = fmt.Sprintf(" Analyzing %s with %s...", buf.Metadata().Title, cfg.Model)
				spin.Start()
			}

			res, err := runAnalysis(ctx, cfg, provider, buf, opts, logger)

			if spin != nil {
				spin.Stop()
			}
			if err != nil {
				return err
			}

			return formatter.DisplayResults(os.Stdout, res, output)
		},
	}

	cmd.Flags().StringP("output", "o", "human", "Output format: human, json, yaml")
	cmd.Flags().String("tone", "", "Tone target: formal or informal")
	cmd.Flags().String("style", "", "Style target: sadhu or cholito")
	cmd.Flags().Bool("content", false, "Ask for content-level feedback")
	cmd.Flags().Duration("timeout", 3*time.Minute, "Analysis timeout")
	return cmd
}

// runAnalysis tries the configured provider, then the local fallback
// when the failure was connectivity rather than a bad response.
func runAnalysis(ctx context.Context, cfg *config.Config, provider llm.Provider, buf *document.Buffer, opts prompts.Options, logger *zap.Logger) (*analysis.Result, error) {
	svc := review.NewService(provider, cfg.Model, buf, logger)
	res, err := svc.Analyze(ctx, buf.Content(), opts)
	if err == nil {
		return res, nil
	}

	// Only a transport-level failure justifies rerunning elsewhere. A
	// parse failure would reproduce on any provider and must surface
	// as "analysis failed, retry" instead.
	var apiErr *llm.APIError
	if !errors.As(err, &apiErr) {
		return nil, err
	}
	if apiErr.Category != llm.ErrNetwork && apiErr.Category != llm.ErrTimeout {
		return nil, err
	}

	local, lerr := llm.NewLocalProvider(cfg)
	if lerr != nil || local == nil {
		return nil, err
	}

	fmt.Fprintf(os.Stderr, "warning: %s unreachable, retrying with local %s\n",
		provider.Name(), cfg.Local.Model)
	fallback := review.NewService(local, cfg.Local.Model, buf, logger)
	return fallback.Analyze(ctx, buf.Content(), opts)
}
