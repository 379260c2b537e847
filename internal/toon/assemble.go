package toon

import (
	"sort"
	"unicode"

	"github.com/youngsunson/spellv3/internal/analysis"
)

// maxSpellingErrors bounds pathological over-generation. A model
// claiming more misspellings than half the words in the source is a
// model failure, not ground truth.
const maxSpellingErrors = 50

// Assemble parses a structured response into one aggregate Result and
// runs the cross-cutting passes: spelling filters and cap, per-
// collection dedup, stable position sort. wordCount tightens the
// spelling cap when known; pass 0 when it is not.
func Assemble(raw string, wordCount int) *analysis.Result {
	res := &analysis.Result{}

	for _, sec := range Tokenize(raw) {
		switch sec.Name {
		case "SPELLING":
			res.SpellingErrors = append(res.SpellingErrors, parseSpelling(sec.Lines)...)
		case "PUNCTUATION":
			res.PunctuationIssues = append(res.PunctuationIssues, parsePunctuation(sec.Lines)...)
		case "TONE":
			res.ToneSuggestions = append(res.ToneSuggestions, parseTone(sec.Lines)...)
		case "STYLE_CONVERSION", "STYLE":
			res.StyleSuggestions = append(res.StyleSuggestions, parseStyle(sec.Lines)...)
		case "EUPHONY":
			res.EuphonyImprovements = append(res.EuphonyImprovements, parseEuphony(sec.Lines)...)
		case "MIXING":
			mergeMixing(&res.Mixing, parseMixing(sec.Lines))
		case "MIXING_META":
			mergeMixing(&res.Mixing, parseMixing(sec.Lines))
		case "MIXING_ITEMS":
			res.Mixing.Corrections = append(res.Mixing.Corrections, parseStyle(sec.Lines)...)
		case "CONTENT":
			if c := parseContent(sec.Lines); c != nil {
				res.Content = c
			}
		default:
			// Unknown sections are forward compatibility: kept by the
			// tokenizer, producing no records.
		}
	}

	finalize(res, wordCount)
	return res
}

// mergeMixing folds a partial report (from MIXING or MIXING_META)
// into the aggregate one, so split and combined section layouts land
// in the same place.
func mergeMixing(dst *analysis.StyleMixingReport, src analysis.StyleMixingReport) {
	if src.Detected {
		dst.Detected = true
	}
	if src.RecommendedStyle != "" {
		dst.RecommendedStyle = src.RecommendedStyle
	}
	if src.Reason != "" {
		dst.Reason = src.Reason
	}
	dst.Corrections = append(dst.Corrections, src.Corrections...)
}

// finalize runs the post-parse passes shared by the TOON path and the
// legacy JSON path, so both converge on identical guarantees.
func finalize(res *analysis.Result, wordCount int) {
	res.SpellingErrors = filterSpellingContent(res.SpellingErrors)
	res.SpellingErrors = dedupeSpelling(res.SpellingErrors)
	res.SpellingErrors = capSpelling(res.SpellingErrors, wordCount)
	res.PunctuationIssues = dedupePunctuation(res.PunctuationIssues)
	res.ToneSuggestions = dedupeTone(res.ToneSuggestions)
	res.StyleSuggestions = dedupeStyle(res.StyleSuggestions)
	res.EuphonyImprovements = dedupeEuphony(res.EuphonyImprovements)
	res.Mixing.Corrections = dedupeStyle(res.Mixing.Corrections)
	if len(res.Mixing.Corrections) == 0 {
		res.Mixing.Corrections = nil
	}
	if res.Content != nil {
		res.Content.MissingElements = capList(res.Content.MissingElements, contentListLimit)
		res.Content.Suggestions = capList(res.Content.Suggestions, contentListLimit)
	}
	sortByPosition(res)
}

// filterSpellingContent drops entries that cannot be real Bangla
// misspellings: too short, purely numeric, or purely Latin script —
// all symptoms of the model analyzing the wrong thing.
func filterSpellingContent(in []analysis.SpellingError) []analysis.SpellingError {
	out := in[:0]
	for _, e := range in {
		if graphemeCount(e.Wrong) < 2 {
			continue
		}
		if isPurelyNumeric(e.Wrong) || isPurelyLatin(e.Wrong) {
			continue
		}
		if len(e.Suggestions) == 0 {
			continue
		}
		out = append(out, e)
	}
	return out
}

func isPurelyNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func isPurelyLatin(s string) bool {
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return s != ""
}

// capSpelling enforces min(50, ceil(wordCount/2)) when the word count
// is known, the flat cap otherwise.
func capSpelling(in []analysis.SpellingError, wordCount int) []analysis.SpellingError {
	limit := maxSpellingErrors
	if wordCount > 0 {
		if byWords := (wordCount + 1) / 2; byWords < limit {
			limit = byWords
		}
	}
	if len(in) > limit {
		return in[:limit]
	}
	return in
}

// Dedup is first-occurrence-wins on the normalized primary text,
// order otherwise preserved.

func dedupeSpelling(in []analysis.SpellingError) []analysis.SpellingError {
	seen := map[string]bool{}
	out := in[:0]
	for _, e := range in {
		key := analysis.Normalize(e.Wrong)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

func dedupePunctuation(in []analysis.PunctuationIssue) []analysis.PunctuationIssue {
	seen := map[string]bool{}
	out := in[:0]
	for _, e := range in {
		key := analysis.Normalize(e.CurrentSentence)
		if key == "" {
			key = analysis.Normalize(e.Issue)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

func dedupeTone(in []analysis.ToneSuggestion) []analysis.ToneSuggestion {
	seen := map[string]bool{}
	out := in[:0]
	for _, e := range in {
		key := analysis.Normalize(e.Current)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

func dedupeStyle(in []analysis.StyleSuggestion) []analysis.StyleSuggestion {
	seen := map[string]bool{}
	out := in[:0]
	for _, e := range in {
		key := analysis.Normalize(e.Current)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

func dedupeEuphony(in []analysis.EuphonyImprovement) []analysis.EuphonyImprovement {
	seen := map[string]bool{}
	out := in[:0]
	for _, e := range in {
		key := analysis.Normalize(e.Current)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

// sortByPosition orders every position-bearing collection ascending,
// stable so emission order breaks ties. Missing positions decoded to
// the 0 sentinel sort to the front.
func sortByPosition(res *analysis.Result) {
	sort.SliceStable(res.SpellingErrors, func(i, j int) bool {
		return res.SpellingErrors[i].Position < res.SpellingErrors[j].Position
	})
	sort.SliceStable(res.PunctuationIssues, func(i, j int) bool {
		return res.PunctuationIssues[i].Position < res.PunctuationIssues[j].Position
	})
	sort.SliceStable(res.ToneSuggestions, func(i, j int) bool {
		return res.ToneSuggestions[i].Position < res.ToneSuggestions[j].Position
	})
	sort.SliceStable(res.StyleSuggestions, func(i, j int) bool {
		return res.StyleSuggestions[i].Position < res.StyleSuggestions[j].Position
	})
	sort.SliceStable(res.EuphonyImprovements, func(i, j int) bool {
		return res.EuphonyImprovements[i].Position < res.EuphonyImprovements[j].Position
	})
	sort.SliceStable(res.Mixing.Corrections, func(i, j int) bool {
		return res.Mixing.Corrections[i].Position < res.Mixing.Corrections[j].Position
	})
}
