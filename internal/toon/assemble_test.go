package toon

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/youngsunson/spellv3/internal/analysis"
)

const sampleResponse = `[[SPELLING]]
ভুল|ঠিক১,ঠিক২|5
করছি|করিতেছি|12
[[PUNCTUATION]]
@issue: দাঁড়ি অনুপস্থিত
@cur: আমি যাব
@fix: আমি যাব।
@pos: 3
[[TONE]]
করতেছি|করছি|মার্জিত|8
[[EUPHONY]]
কিন্তু|তবে|শ্রুতিমধুর|2
[[MIXING]]
detected: true
recommended: চলিত
CORRECTIONS
তাহার|তার|Pronoun|6
[[CONTENT]]
type: চিঠি
description: ব্যক্তিগত চিঠি
`

func TestAssembleSampleResponse(t *testing.T) {
	res := Assemble(sampleResponse, 0)

	if len(res.SpellingErrors) != 2 {
		t.Errorf("SpellingErrors = %d, want 2", len(res.SpellingErrors))
	}
	if len(res.PunctuationIssues) != 1 {
		t.Errorf("PunctuationIssues = %d, want 1", len(res.PunctuationIssues))
	}
	if len(res.ToneSuggestions) != 1 {
		t.Errorf("ToneSuggestions = %d, want 1", len(res.ToneSuggestions))
	}
	if len(res.EuphonyImprovements) != 1 {
		t.Errorf("EuphonyImprovements = %d, want 1", len(res.EuphonyImprovements))
	}
	if !res.Mixing.Detected || len(res.Mixing.Corrections) != 1 {
		t.Errorf("Mixing = %+v, want detected with 1 correction", res.Mixing)
	}
	if res.Content == nil || res.Content.ContentType != "চিঠি" {
		t.Errorf("Content = %+v, want চিঠি", res.Content)
	}
}

func TestAssembleIdempotent(t *testing.T) {
	first := Assemble(sampleResponse, 100)
	second := Assemble(sampleResponse, 100)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-parse not deep-equal (-first +second):\n%s", diff)
	}
}

func TestAssembleSpellingCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("[[SPELLING]]\n")
	for i := 0; i < 80; i++ {
		fmt.Fprintf(&b, "ভুল%d|ঠিক|%d\n", i, i)
	}

	tests := []struct {
		name      string
		wordCount int
		wantMax   int
	}{
		{"word count known", 40, 20},
		{"word count unknown", 0, 50},
		{"large word count hits flat cap", 10000, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Assemble(b.String(), tt.wordCount)
			if len(res.SpellingErrors) > tt.wantMax {
				t.Errorf("SpellingErrors = %d, want at most %d", len(res.SpellingErrors), tt.wantMax)
			}
		})
	}
}

func TestAssembleDeduplication(t *testing.T) {
	raw := "[[SPELLING]]\nকরছি|করিতেছি|3\nকরছি |করিতেছি|9\nKorchi|fix|1\n"
	res := Assemble(raw, 0)
	if len(res.SpellingErrors) != 1 {
		t.Fatalf("SpellingErrors = %d, want 1 (dedupe + latin filter)", len(res.SpellingErrors))
	}
	if res.SpellingErrors[0].Position != 3 {
		t.Errorf("first occurrence should win, got position %d", res.SpellingErrors[0].Position)
	}
}

func TestAssembleSpellingFilters(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"purely numeric", "123|১২৩|1"},
		{"purely latin", "hello|হ্যালো|2"},
		{"single grapheme", "ক|কা|3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Assemble("[[SPELLING]]\n"+tt.line+"\n", 0)
			if len(res.SpellingErrors) != 0 {
				t.Errorf("entry %q survived, want filtered", tt.line)
			}
		})
	}
}

func TestAssembleUnknownSectionTolerance(t *testing.T) {
	raw := "[[UNKNOWN_SECTION]]\ngarbage|here|1\n[[SPELLING]]\nভুল|ঠিক|1\n"
	res := Assemble(raw, 0)
	if len(res.SpellingErrors) != 1 {
		t.Errorf("SpellingErrors = %d, want 1 despite unknown section", len(res.SpellingErrors))
	}
}

func TestAssemblePositionSort(t *testing.T) {
	raw := "[[SPELLING]]\nতৃতীয়|ঠিক|9\nপ্রথম|ঠিক|1\nদ্বিতীয়|ঠিক|4\nঅজানা|ঠিক|x\n"
	res := Assemble(raw, 0)
	if len(res.SpellingErrors) != 4 {
		t.Fatalf("SpellingErrors = %d, want 4", len(res.SpellingErrors))
	}
	for i := 1; i < len(res.SpellingErrors); i++ {
		if res.SpellingErrors[i-1].Position > res.SpellingErrors[i].Position {
			t.Errorf("positions not ascending: %d before %d",
				res.SpellingErrors[i-1].Position, res.SpellingErrors[i].Position)
		}
	}
	// The unparsable position decodes to the 0 sentinel and sorts first.
	if res.SpellingErrors[0].Wrong != "অজানা" {
		t.Errorf("sentinel-position entry should sort first, got %q", res.SpellingErrors[0].Wrong)
	}
}

func TestAssembleSplitMixingSections(t *testing.T) {
	raw := `@MIXING_META
detected: true
reason: মিশ্রণ আছে
@MIXING_ITEMS
করিতেছি|করছি|Verb|2
`
	res := Assemble(raw, 0)
	want := analysis.StyleMixingReport{
		Detected: true,
		Reason:   "মিশ্রণ আছে",
		Corrections: []analysis.StyleSuggestion{
			{Current: "করিতেছি", Suggestion: "করছি", Type: "Verb", Position: 2},
		},
	}
	if diff := cmp.Diff(want, res.Mixing); diff != "" {
		t.Errorf("Mixing mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleEmptyInput(t *testing.T) {
	res := Assemble("", 0)
	if !res.Empty() {
		t.Errorf("empty input should give empty result, got %+v", res)
	}
}
