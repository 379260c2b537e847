package toon

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/youngsunson/spellv3/internal/analysis"
)

// ErrUnrecognized is the single "analysis failed to parse" outcome:
// no section headers and not legacy JSON either. Callers must treat
// it as "ask the user to retry", never as "zero issues found".
var ErrUnrecognized = errors.New("response has no recognized structure")

var fenceRe = regexp.MustCompile("```[a-zA-Z]*\n|```")

// stripFences removes markdown code fences so a fenced JSON payload
// can be parsed.
func stripFences(text string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))
}

// Detect routes raw model text to the right parser. Structured
// sections win; otherwise the legacy JSON shape is tried, with the
// same post-processing passes applied so both paths give identical
// guarantees. wordCount feeds the spelling cap, 0 when unknown.
func Detect(raw string, wordCount int) (*analysis.Result, error) {
	if HasRecognizedHeader(raw) {
		return Assemble(raw, wordCount), nil
	}

	cleaned := stripFences(raw)
	if !strings.HasPrefix(cleaned, "{") {
		// json.Unmarshal would accept bare literals like "null";
		// only an object can be a legacy payload.
		return nil, ErrUnrecognized
	}
	var res analysis.Result
	if err := json.Unmarshal([]byte(cleaned), &res); err != nil {
		return nil, ErrUnrecognized
	}
	finalize(&res, wordCount)
	return &res, nil
}
