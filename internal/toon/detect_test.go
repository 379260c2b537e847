package toon

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/youngsunson/spellv3/internal/analysis"
)

func TestDetectStructured(t *testing.T) {
	res, err := Detect("[[SPELLING]]\nভুল|ঠিক|1\n", 0)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(res.SpellingErrors) != 1 {
		t.Errorf("SpellingErrors = %d, want 1", len(res.SpellingErrors))
	}
}

func TestDetectGarbage(t *testing.T) {
	for _, raw := range []string{
		"this is not structured at all",
		"",
		"```\njust a fenced paragraph\n```",
		"null",
		"[[]]",
	} {
		_, err := Detect(raw, 0)
		if !errors.Is(err, ErrUnrecognized) {
			t.Errorf("Detect(%q) error = %v, want ErrUnrecognized", raw, err)
		}
	}
}

func TestDetectJSONFallback(t *testing.T) {
	raw := "```json\n{\"spellingErrors\":[{\"wrong\":\"ভুল\",\"suggestions\":[\"ঠিক\"],\"position\":1}]}\n```"
	res, err := Detect(raw, 0)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	want := []analysis.SpellingError{
		{Wrong: "ভুল", Suggestions: []string{"ঠিক"}, Position: 1},
	}
	if diff := cmp.Diff(want, res.SpellingErrors); diff != "" {
		t.Errorf("SpellingErrors mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectJSONFallbackAppliesFilters(t *testing.T) {
	// Latin tokens indicate model confusion and are filtered on the
	// JSON path exactly as on the structured path.
	raw := `{"spellingErrors":[{"wrong":"hello","suggestions":["world"],"position":1}]}`
	res, err := Detect(raw, 0)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(res.SpellingErrors) != 0 {
		t.Errorf("SpellingErrors = %d, want 0 after latin filter", len(res.SpellingErrors))
	}
}

func TestDetectJSONFallbackAppliesCap(t *testing.T) {
	raw := `{"spellingErrors":[`
	for i := 0; i < 30; i++ {
		if i > 0 {
			raw += ","
		}
		raw += `{"wrong":"ভুল` + string(rune('ক'+i)) + `","suggestions":["ঠিক"],"position":1}`
	}
	raw += `]}`

	res, err := Detect(raw, 20)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(res.SpellingErrors) > 10 {
		t.Errorf("SpellingErrors = %d, want at most 10 with wordCount=20", len(res.SpellingErrors))
	}
}

func TestDetectJSONFallbackMixing(t *testing.T) {
	raw := `{"languageStyleMixing":{"detected":true,"recommendedStyle":"চলিত","corrections":[{"current":"তাহার","suggestion":"তার","type":"Pronoun","position":2}]}}`
	res, err := Detect(raw, 0)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if !res.Mixing.Detected || len(res.Mixing.Corrections) != 1 {
		t.Errorf("Mixing = %+v, want detected with 1 correction", res.Mixing)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\ntext\n```", "text"},
		{"no fences", "no fences"},
	}
	for _, tt := range tests {
		if got := stripFences(tt.input); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
