package toon

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantSections []string
	}{
		{
			name:         "no headers",
			raw:          "this is not structured at all",
			wantSections: nil,
		},
		{
			name:         "bracket headers",
			raw:          "[[SPELLING]]\nline1\n[[TONE]]\nline2",
			wantSections: []string{"SPELLING", "TONE"},
		},
		{
			name:         "at-sign headers",
			raw:          "@SPELLING\nline1\n@EUPHONY\nline2",
			wantSections: []string{"SPELLING", "EUPHONY"},
		},
		{
			name:         "mixed header styles",
			raw:          "[[SPELLING]]\na|b|1\n@CONTENT\ntype: essay",
			wantSections: []string{"SPELLING", "CONTENT"},
		},
		{
			name:         "unknown section retained",
			raw:          "[[UNKNOWN_SECTION]]\nstuff\n[[SPELLING]]\na|b|1",
			wantSections: []string{"UNKNOWN_SECTION", "SPELLING"},
		},
		{
			name:         "field line not mistaken for header",
			raw:          "[[PUNCTUATION]]\n@issue: missing daari\n@cur: text",
			wantSections: []string{"PUNCTUATION"},
		},
		{
			name:         "preamble before first header dropped",
			raw:          "Here is my analysis:\n[[SPELLING]]\na|b|1",
			wantSections: []string{"SPELLING"},
		},
		{
			name:         "corrections marker stays inside mixing",
			raw:          "[[MIXING]]\ndetected: true\n@CORRECTIONS\nতাহার|তার|Pronoun|5",
			wantSections: []string{"MIXING"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := Tokenize(tt.raw)
			if len(sections) != len(tt.wantSections) {
				t.Fatalf("Tokenize() returned %d sections, want %d", len(sections), len(tt.wantSections))
			}
			for i, want := range tt.wantSections {
				if sections[i].Name != want {
					t.Errorf("section[%d].Name = %q, want %q", i, sections[i].Name, want)
				}
			}
		})
	}
}

func TestTokenizeBodyAssignment(t *testing.T) {
	raw := "[[SPELLING]]\nfirst\nsecond\n[[TONE]]\nthird"
	sections := Tokenize(raw)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if len(sections[0].Lines) != 2 || sections[0].Lines[0] != "first" {
		t.Errorf("SPELLING lines = %v, want [first second]", sections[0].Lines)
	}
	if len(sections[1].Lines) != 1 || sections[1].Lines[0] != "third" {
		t.Errorf("TONE lines = %v, want [third]", sections[1].Lines)
	}
}

func TestHasRecognizedHeader(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"bracket form", "[[SPELLING]]\na|b|1", true},
		{"at-sign form", "@PUNCTUATION\nissue: x", true},
		{"unknown tag only", "[[SOMETHING_ELSE]]\nx", false},
		{"plain prose", "no structure here", false},
		{"json payload", `{"spellingErrors":[]}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasRecognizedHeader(tt.raw); got != tt.want {
				t.Errorf("HasRecognizedHeader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsSeparator(t *testing.T) {
	for _, line := range []string{"---", "----", "  ---  ", "--------"} {
		if !isSeparator(line) {
			t.Errorf("isSeparator(%q) = false, want true", line)
		}
	}
	for _, line := range []string{"--", "- - -", "---x", ""} {
		if isSeparator(line) {
			t.Errorf("isSeparator(%q) = true, want false", line)
		}
	}
}
