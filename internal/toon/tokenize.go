// Package toon parses the structured plain-text mini-language
// ("TOON") the analysis prompt instructs the model to emit, plus the
// legacy JSON shape older prompt revisions used. Model output is
// never trusted: every layer here is total, dropping what it cannot
// read instead of failing the run.
package toon

import (
	"regexp"
	"strings"
)

// Section is one labeled block of a model response. Name is the
// uppercase tag from the header line; Lines is everything up to the
// next header or end of input.
type Section struct {
	Name  string
	Lines []string
}

// Two header styles are accepted: the bracket form the current prompt
// asks for, and the bare at-sign form older prompts produced.
//
//	[[SPELLING]]
//	@SPELLING
//
// The at-sign form must not swallow "@key: value" field lines, hence
// the no-colon, all-caps constraint.
var (
	bracketHeaderRe = regexp.MustCompile(`^\s*\[\[([A-Z][A-Z_]*)\]\]\s*$`)
	atHeaderRe      = regexp.MustCompile(`^\s*@([A-Z][A-Z_]*)\s*$`)
	separatorRe     = regexp.MustCompile(`^\s*-{3,}\s*$`)
)

// recognizedSections are the tags the assembler dispatches on. The
// tokenizer still keeps unknown tags so forward-compatible sections
// flow through (and contribute nothing).
var recognizedSections = map[string]bool{
	"SPELLING":         true,
	"PUNCTUATION":      true,
	"TONE":             true,
	"STYLE_CONVERSION": true,
	"STYLE":            true,
	"MIXING":           true,
	"MIXING_META":      true,
	"MIXING_ITEMS":     true,
	"EUPHONY":          true,
	"CONTENT":          true,
}

// Tokenize splits a raw model response into ordered sections. It
// never fails: text with no headers yields an empty slice.
func Tokenize(raw string) []Section {
	var sections []Section
	var current *Section

	for _, line := range strings.Split(raw, "\n") {
		if name, ok := headerName(line); ok {
			sections = append(sections, Section{Name: name})
			current = &sections[len(sections)-1]
			continue
		}
		if current != nil {
			current.Lines = append(current.Lines, line)
		}
		// Text before the first header is preamble; the model often
		// narrates before the structured part. Dropped.
	}
	return sections
}

// markerWords are all-caps in-section markers that the at-sign header
// form must not swallow; they belong to the body of the section they
// appear in.
var markerWords = map[string]bool{
	"CORRECTIONS": true,
}

func headerName(line string) (string, bool) {
	if m := bracketHeaderRe.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	if m := atHeaderRe.FindStringSubmatch(line); m != nil && !markerWords[m[1]] {
		return m[1], true
	}
	return "", false
}

// HasRecognizedHeader reports whether the text contains at least one
// known section header. The format detector uses this to choose
// between the TOON path and the legacy JSON path.
func HasRecognizedHeader(raw string) bool {
	for _, line := range strings.Split(raw, "\n") {
		if name, ok := headerName(line); ok && recognizedSections[name] {
			return true
		}
	}
	return false
}

func isSeparator(line string) bool {
	return separatorRe.MatchString(line)
}
