package analysis

// Category identifies one suggestion collection within a Result.
type Category string

const (
	CategorySpelling    Category = "spelling"
	CategoryPunctuation Category = "punctuation"
	CategoryTone        Category = "tone"
	CategoryStyle       Category = "style"
	CategoryMixing      Category = "mixing"
	CategoryEuphony     Category = "euphony"
)

// SpellingError is one misspelled word with replacement candidates.
// Wrong is never purely numeric or purely Latin script: the documents
// spellv3 checks are Bangla, so such entries indicate model confusion
// and are filtered before a Result is handed out.
type SpellingError struct {
	Wrong       string   `json:"wrong" yaml:"wrong"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
	Position    int      `json:"position" yaml:"position"`
}

// PunctuationIssue describes one punctuation problem in a sentence.
// CorrectedSentence falls back to CurrentSentence when the model gives
// no usable fix, which is still displayable as an identity correction.
type PunctuationIssue struct {
	Issue             string `json:"issue" yaml:"issue"`
	CurrentSentence   string `json:"currentSentence" yaml:"currentSentence"`
	CorrectedSentence string `json:"correctedSentence" yaml:"correctedSentence"`
	Explanation       string `json:"explanation" yaml:"explanation"`
	Position          int    `json:"position" yaml:"position"`
}

// ToneSuggestion proposes a rewording toward the requested tone.
type ToneSuggestion struct {
	Current    string `json:"current" yaml:"current"`
	Suggestion string `json:"suggestion" yaml:"suggestion"`
	Reason     string `json:"reason" yaml:"reason"`
	Position   int    `json:"position" yaml:"position"`
}

// StyleSuggestion proposes a register conversion for one span.
// Type is a category label such as "Verb" or "Pronoun".
type StyleSuggestion struct {
	Current    string `json:"current" yaml:"current"`
	Suggestion string `json:"suggestion" yaml:"suggestion"`
	Type       string `json:"type" yaml:"type"`
	Position   int    `json:"position" yaml:"position"`
}

// StyleMixingReport flags inconsistent formal/informal register within
// one passage. Corrections is present only when non-empty; a report
// whose last correction is removed collapses back to the zero value.
type StyleMixingReport struct {
	Detected         bool              `json:"detected" yaml:"detected"`
	RecommendedStyle string            `json:"recommendedStyle,omitempty" yaml:"recommendedStyle,omitempty"`
	Reason           string            `json:"reason,omitempty" yaml:"reason,omitempty"`
	Corrections      []StyleSuggestion `json:"corrections,omitempty" yaml:"corrections,omitempty"`
}

// EuphonyImprovement suggests word choices that read more naturally
// aloud.
type EuphonyImprovement struct {
	Current     string   `json:"current" yaml:"current"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
	Reason      string   `json:"reason" yaml:"reason"`
	Position    int      `json:"position" yaml:"position"`
}

// ContentAnalysis is the model's feedback on the document as a whole.
// A nil *ContentAnalysis means the model reported nothing.
type ContentAnalysis struct {
	ContentType     string   `json:"contentType" yaml:"contentType"`
	Description     string   `json:"description,omitempty" yaml:"description,omitempty"`
	MissingElements []string `json:"missingElements,omitempty" yaml:"missingElements,omitempty"`
	Suggestions     []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Result is the aggregate of one analysis run. It is built atomically
// from one model response, read by the presentation layer, and only
// ever shrunk by the reconciler; a new analysis replaces it wholesale.
//
// The JSON tags double as the legacy wire shape: older prompt
// revisions had the model answer in JSON with exactly these keys.
type Result struct {
	SpellingErrors      []SpellingError      `json:"spellingErrors,omitempty" yaml:"spellingErrors,omitempty"`
	PunctuationIssues   []PunctuationIssue   `json:"punctuationIssues,omitempty" yaml:"punctuationIssues,omitempty"`
	ToneSuggestions     []ToneSuggestion     `json:"toneConversions,omitempty" yaml:"toneConversions,omitempty"`
	StyleSuggestions    []StyleSuggestion    `json:"styleConversions,omitempty" yaml:"styleConversions,omitempty"`
	Mixing              StyleMixingReport    `json:"languageStyleMixing,omitempty" yaml:"languageStyleMixing,omitempty"`
	EuphonyImprovements []EuphonyImprovement `json:"euphonyImprovements,omitempty" yaml:"euphonyImprovements,omitempty"`
	Content             *ContentAnalysis     `json:"contentAnalysis,omitempty" yaml:"contentAnalysis,omitempty"`
}

// Count returns the number of actionable suggestions across all
// collections. Content feedback is informational and not counted.
func (r *Result) Count() int {
	n := len(r.SpellingErrors) +
		len(r.PunctuationIssues) +
		len(r.ToneSuggestions) +
		len(r.StyleSuggestions) +
		len(r.EuphonyImprovements) +
		len(r.Mixing.Corrections)
	return n
}

// Empty reports whether the result carries no findings at all.
// An empty non-nil Result means "no issues found", which is a
// materially different claim from a failed parse.
func (r *Result) Empty() bool {
	return r.Count() == 0 && !r.Mixing.Detected && r.Content == nil
}

// Clone returns a deep copy. The reconciler works copy-on-write so
// concurrent accept/dismiss calls never race on shared slices.
func (r *Result) Clone() *Result {
	out := &Result{
		SpellingErrors:      make([]SpellingError, len(r.SpellingErrors)),
		PunctuationIssues:   append([]PunctuationIssue(nil), r.PunctuationIssues...),
		ToneSuggestions:     append([]ToneSuggestion(nil), r.ToneSuggestions...),
		StyleSuggestions:    append([]StyleSuggestion(nil), r.StyleSuggestions...),
		EuphonyImprovements: make([]EuphonyImprovement, len(r.EuphonyImprovements)),
		Mixing: StyleMixingReport{
			Detected:         r.Mixing.Detected,
			RecommendedStyle: r.Mixing.RecommendedStyle,
			Reason:           r.Mixing.Reason,
			Corrections:      append([]StyleSuggestion(nil), r.Mixing.Corrections...),
		},
	}
	for i, se := range r.SpellingErrors {
		se.Suggestions = append([]string(nil), se.Suggestions...)
		out.SpellingErrors[i] = se
	}
	for i, eu := range r.EuphonyImprovements {
		eu.Suggestions = append([]string(nil), eu.Suggestions...)
		out.EuphonyImprovements[i] = eu
	}
	if r.Content != nil {
		c := *r.Content
		c.MissingElements = append([]string(nil), r.Content.MissingElements...)
		c.Suggestions = append([]string(nil), r.Content.Suggestions...)
		out.Content = &c
	}
	return out
}
