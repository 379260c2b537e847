package prompts

import (
	"strings"
	"testing"
)

func TestBuildReviewPromptDefaults(t *testing.T) {
	got := BuildReviewPrompt(Options{})

	if !strings.Contains(got, "[[SPELLING]]") {
		t.Error("prompt lost the spelling section format")
	}
	for _, skip := range []string{"Skip the [[TONE]]", "Skip the [[STYLE_CONVERSION]]", "Skip the [[CONTENT]]"} {
		if !strings.Contains(got, skip) {
			t.Errorf("expected instruction %q", skip)
		}
	}
}

func TestBuildReviewPromptWithTargets(t *testing.T) {
	got := BuildReviewPrompt(Options{Tone: "informal", Style: "sadhu", ContentFeedback: true})

	if !strings.Contains(got, "informal tone") {
		t.Error("tone target missing from prompt")
	}
	if !strings.Contains(got, "sadhu style") {
		t.Error("style target missing from prompt")
	}
	if strings.Contains(got, "Skip the [[CONTENT]]") {
		t.Error("content section should not be skipped")
	}
}
