package toon

import (
	"strings"

	"github.com/youngsunson/spellv3/internal/analysis"
)

// Section parsers. Two strategies, per the wire format:
//
// Strategy A — pipe-delimited single-line records. First field is the
// primary text, last field is the position, fields between are
// category-specific. Lines without the pipe, or with too few fields,
// are dropped silently.
//
// Strategy B — multi-line "key: value" (or "@key: value") records
// accumulated until a blank line, a "---" separator, or a key restart
// flushes them. A record flushes only if an identity field is set;
// everything else is treated as stray model narration.

// boilerplateMarkers flag lines where the model echoed its own
// instructions back: format/example preambles in either language and
// the warning glyph the prompt itself uses.
var boilerplateMarkers = []string{
	"format", "example", "ফরম্যাট", "উদাহরণ", "নমুনা", "⚠",
}

// skipLine reports whether a body line is comment or instructional
// boilerplate rather than data.
func skipLine(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return true
	}
	if strings.HasPrefix(t, "#") || strings.HasPrefix(t, "[") {
		return true
	}
	lower := strings.ToLower(t)
	for _, m := range boilerplateMarkers {
		if strings.HasPrefix(lower, m) {
			return true
		}
	}
	return false
}

// pipeFields splits a Strategy A line and trims each field. ok is
// false when the line has no pipe at all or fewer than min fields.
func pipeFields(line string, min int) ([]string, bool) {
	if !strings.Contains(line, "|") {
		return nil, false
	}
	fields := strings.Split(line, "|")
	if len(fields) < min {
		return nil, false
	}
	for i := range fields {
		fields[i] = decodeString(fields[i])
	}
	return fields, true
}

// parseSpelling reads "wrong|suggestion,suggestion|position" lines.
// Extra middle fields fold into the suggestion list; truncated model
// output often drops the second delimiter mid-list.
func parseSpelling(lines []string) []analysis.SpellingError {
	var out []analysis.SpellingError
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		fields, ok := pipeFields(line, 3)
		if !ok {
			continue
		}
		last := len(fields) - 1
		wrong := fields[0]
		suggestions := decodeList(strings.Join(fields[1:last], ","))
		if wrong == "" || len(suggestions) == 0 {
			continue
		}
		out = append(out, analysis.SpellingError{
			Wrong:       wrong,
			Suggestions: suggestions,
			Position:    decodePosition(fields[last]),
		})
	}
	return out
}

// parseTone reads "current|suggestion|reason|position" lines.
func parseTone(lines []string) []analysis.ToneSuggestion {
	var out []analysis.ToneSuggestion
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		fields, ok := pipeFields(line, 4)
		if !ok || fields[0] == "" {
			continue
		}
		out = append(out, analysis.ToneSuggestion{
			Current:    fields[0],
			Suggestion: fields[1],
			Reason:     fields[2],
			Position:   decodePosition(fields[len(fields)-1]),
		})
	}
	return out
}

// parseStyle reads "current|suggestion|type|position" lines. Shared
// by the style-conversion section and mixing correction items.
func parseStyle(lines []string) []analysis.StyleSuggestion {
	var out []analysis.StyleSuggestion
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		fields, ok := pipeFields(line, 4)
		if !ok || fields[0] == "" {
			continue
		}
		out = append(out, analysis.StyleSuggestion{
			Current:    fields[0],
			Suggestion: fields[1],
			Type:       fields[2],
			Position:   decodePosition(fields[len(fields)-1]),
		})
	}
	return out
}

// parseEuphony reads "current|suggestions|reason|position" lines.
func parseEuphony(lines []string) []analysis.EuphonyImprovement {
	var out []analysis.EuphonyImprovement
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		fields, ok := pipeFields(line, 4)
		if !ok || fields[0] == "" {
			continue
		}
		out = append(out, analysis.EuphonyImprovement{
			Current:     fields[0],
			Suggestions: decodeList(fields[1]),
			Reason:      fields[2],
			Position:    decodePosition(fields[len(fields)-1]),
		})
	}
	return out
}

// keyValue splits a Strategy B line into its canonical key and raw
// value. The leading "@" of the current wire format is optional.
func keyValue(line string) (key, value string, ok bool) {
	t := strings.TrimSpace(line)
	t = strings.TrimPrefix(t, "@")
	i := strings.Index(t, ":")
	if i <= 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(t[:i]))
	key = strings.ReplaceAll(key, "_", "")
	key = strings.ReplaceAll(key, " ", "")
	return key, t[i+1:], true
}

// Per-section synonym tables: every accepted spelling of a field name
// maps to one canonical slot. Adding a synonym is a one-line entry.
var punctuationKeys = map[string]string{
	"issue":             "issue",
	"problem":           "issue",
	"current":           "current",
	"cur":               "current",
	"currentsentence":   "current",
	"sentence":          "current",
	"corrected":         "corrected",
	"fix":               "corrected",
	"correctedsentence": "corrected",
	"correction":        "corrected",
	"explanation":       "explanation",
	"reason":            "explanation",
	"why":               "explanation",
	"position":          "position",
	"pos":               "position",
	"index":             "position",
}

// parsePunctuation accumulates key:value lines into issue records.
// A record needs an issue or a current sentence to count as data.
func parsePunctuation(lines []string) []analysis.PunctuationIssue {
	var out []analysis.PunctuationIssue
	rec := map[string]string{}

	flush := func() {
		defer func() { rec = map[string]string{} }()
		if rec["issue"] == "" && rec["current"] == "" {
			return
		}
		issue := analysis.PunctuationIssue{
			Issue:             rec["issue"],
			CurrentSentence:   rec["current"],
			CorrectedSentence: rec["corrected"],
			Explanation:       rec["explanation"],
			Position:          decodePosition(rec["position"]),
		}
		if issue.CorrectedSentence == "" {
			// Identity correction: no usable fix, still displayable.
			issue.CorrectedSentence = issue.CurrentSentence
		}
		out = append(out, issue)
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" || isSeparator(line) {
			flush()
			continue
		}
		if skipLine(line) {
			continue
		}
		key, value, ok := keyValue(line)
		if !ok {
			continue
		}
		canon, known := punctuationKeys[key]
		if !known {
			continue
		}
		if _, dup := rec[canon]; dup {
			// Key restart means the model began a new record without
			// a separator.
			flush()
		}
		rec[canon] = decodeString(value)
	}
	flush()
	return out
}

var mixingKeys = map[string]string{
	"detected":         "detected",
	"mixing":           "detected",
	"recommendedstyle": "recommended",
	"recommended":      "recommended",
	"style":            "recommended",
	"reason":           "reason",
	"explanation":      "reason",
}

// correctionsMarker begins the Strategy A tail of a combined MIXING
// section. The at-sign and trailing-colon spellings all count.
func isCorrectionsMarker(line string) bool {
	t := strings.TrimSpace(line)
	t = strings.TrimPrefix(t, "@")
	t = strings.TrimSuffix(t, ":")
	return strings.EqualFold(t, "corrections")
}

// parseMixing handles the hybrid section: Strategy B metadata until
// the CORRECTIONS marker, pipe-delimited correction lines after it.
func parseMixing(lines []string) analysis.StyleMixingReport {
	var report analysis.StyleMixingReport
	inCorrections := false
	var correctionLines []string

	for _, line := range lines {
		if isCorrectionsMarker(line) {
			inCorrections = true
			continue
		}
		if inCorrections {
			correctionLines = append(correctionLines, line)
			continue
		}
		if skipLine(line) {
			continue
		}
		key, value, ok := keyValue(line)
		if !ok {
			continue
		}
		switch mixingKeys[key] {
		case "detected":
			report.Detected = decodeBool(value)
		case "recommended":
			report.RecommendedStyle = decodeString(value)
		case "reason":
			report.Reason = decodeString(value)
		}
	}

	report.Corrections = parseStyle(correctionLines)
	return report
}

var contentKeys = map[string]string{
	"contenttype":     "type",
	"type":            "type",
	"description":     "description",
	"desc":            "description",
	"missingelements": "missing",
	"missing":         "missing",
	"suggestions":     "suggestions",
	"suggest":         "suggestions",
}

const contentListLimit = 5

// parseContent reads the document-level feedback record. Returns nil
// when the model reported nothing identifiable.
func parseContent(lines []string) *analysis.ContentAnalysis {
	var c analysis.ContentAnalysis
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		key, value, ok := keyValue(line)
		if !ok {
			continue
		}
		switch contentKeys[key] {
		case "type":
			c.ContentType = decodeString(value)
		case "description":
			c.Description = decodeString(value)
		case "missing":
			c.MissingElements = capList(decodeList(value), contentListLimit)
		case "suggestions":
			c.Suggestions = capList(decodeList(value), contentListLimit)
		}
	}
	if c.ContentType == "" && c.Description == "" {
		return nil
	}
	return &c
}

func capList(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
