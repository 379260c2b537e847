package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/youngsunson/spellv3/internal/analysis"
)

func sampleResult() *analysis.Result {
	return &analysis.Result{
		SpellingErrors: []analysis.SpellingError{
			{Wrong: "ভুল", Suggestions: []string{"ঠিক"}, Position: 2},
		},
		PunctuationIssues: []analysis.PunctuationIssue{
			{Issue: "দাঁড়ি অনুপস্থিত", CurrentSentence: "আমি ভাত খাই", CorrectedSentence: "আমি ভাত খাই।", Position: 1},
		},
	}
}

func TestDisplayJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := DisplayResults(&buf, sampleResult(), "json"); err != nil {
		t.Fatal(err)
	}

	var decoded analysis.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.SpellingErrors) != 1 {
		t.Errorf("got %d spelling errors, want 1", len(decoded.SpellingErrors))
	}
}

func TestDisplayYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := DisplayResults(&buf, sampleResult(), "yaml"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "spellingErrors") {
		t.Errorf("yaml output missing spellingErrors key:\n%s", buf.String())
	}
}

func TestDisplayHuman(t *testing.T) {
	var buf bytes.Buffer
	if err := DisplayResults(&buf, sampleResult(), "human"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"SPELLING", "PUNCTUATION", "ভুল", "ঠিক"} {
		if !strings.Contains(out, want) {
			t.Errorf("human output missing %q:\n%s", want, out)
		}
	}
}

func TestDisplayHumanEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := DisplayResults(&buf, &analysis.Result{}, "human"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No issues found") {
		t.Errorf("empty result should report a clean bill:\n%s", buf.String())
	}
}
