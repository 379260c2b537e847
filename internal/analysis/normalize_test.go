package analysis

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"করছি", "করছি"},
		{"করছি ", "করছি"},
		{"  করছি  করব  ", "করছি করব"},
		{"Hello World", "hello world"},
		{"a\t b\n c", "a b c"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := &Result{
		SpellingErrors: []SpellingError{{Wrong: "ভুল", Suggestions: []string{"ঠিক"}, Position: 1}},
		Mixing: StyleMixingReport{
			Detected:    true,
			Corrections: []StyleSuggestion{{Current: "তাহার", Suggestion: "তার"}},
		},
		Content: &ContentAnalysis{ContentType: "চিঠি", MissingElements: []string{"তারিখ"}},
	}

	clone := orig.Clone()
	clone.SpellingErrors[0].Suggestions[0] = "changed"
	clone.Mixing.Corrections[0].Current = "changed"
	clone.Content.MissingElements[0] = "changed"

	if orig.SpellingErrors[0].Suggestions[0] != "ঠিক" {
		t.Error("clone shares spelling suggestions slice with original")
	}
	if orig.Mixing.Corrections[0].Current != "তাহার" {
		t.Error("clone shares mixing corrections slice with original")
	}
	if orig.Content.MissingElements[0] != "তারিখ" {
		t.Error("clone shares content slices with original")
	}
}
