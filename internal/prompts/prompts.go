// Package prompts holds the embedded system prompts sent with every
// analysis request.
package prompts

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed review.md
var ReviewBase string

// Options tunes what the model is asked to look at beyond the always-on
// checks (spelling, punctuation, mixing, euphony).
type Options struct {
	// Tone target register: "formal" or "informal". Empty skips tone
	// conversion.
	Tone string
	// Style target: "sadhu" or "cholito". Empty skips style
	// conversion.
	Style string
	// ContentFeedback asks for whole-text observations.
	ContentFeedback bool
}

// BuildReviewPrompt constructs the full proofreading system prompt.
func BuildReviewPrompt(opts Options) string {
	base := strings.TrimSpace(ReviewBase)

	var extra []string
	if opts.Tone != "" {
		extra = append(extra, fmt.Sprintf("Convert the register toward %s tone and report each change in [[TONE]].", opts.Tone))
	} else {
		extra = append(extra, "Skip the [[TONE]] section.")
	}
	if opts.Style != "" {
		extra = append(extra, fmt.Sprintf("Convert toward %s style and report each change in [[STYLE_CONVERSION]].", opts.Style))
	} else {
		extra = append(extra, "Skip the [[STYLE_CONVERSION]] section.")
	}
	if !opts.ContentFeedback {
		extra = append(extra, "Skip the [[CONTENT]] section.")
	}

	return base + "\n\nAdditional instructions:\n- " + strings.Join(extra, "\n- ")
}
