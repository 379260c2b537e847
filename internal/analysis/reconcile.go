package analysis

import (
	"context"
	"errors"
)

// ErrNotApplied reports that the document adapter declined the text
// replacement (the span was not found), so no suggestion was removed.
var ErrNotApplied = errors.New("replacement was not applied to the document")

// Replacer is the slice of the host-document adapter the reconciler
// needs: apply one find-and-replace, report whether it took effect.
type Replacer interface {
	ApplyReplacement(ctx context.Context, oldText, newText string, position int) (bool, error)
}

// Reconciler removes suggestions from a Result as the user acts on
// them. It never adds entries; additions only happen via a fresh
// analysis. All methods are copy-on-write: the input Result is left
// untouched and the updated aggregate is returned.
type Reconciler struct {
	doc Replacer
}

func NewReconciler(doc Replacer) *Reconciler {
	return &Reconciler{doc: doc}
}

// Accept applies the correction to the document and, only once the
// adapter confirms success, removes every suggestion whose primary
// text matches oldText — across all categories, since one accepted
// word can clear a spelling entry and a tone entry on the same span.
// On failure the input Result is returned unchanged.
func (rc *Reconciler) Accept(ctx context.Context, res *Result, oldText, newText string, position int) (*Result, error) {
	ok, err := rc.doc.ApplyReplacement(ctx, oldText, newText, position)
	if err != nil {
		return res, err
	}
	if !ok {
		return res, ErrNotApplied
	}

	key := Normalize(oldText)
	out := res.Clone()
	out.SpellingErrors = filterSpelling(out.SpellingErrors, key)
	out.PunctuationIssues = filterPunctuation(out.PunctuationIssues, key)
	out.ToneSuggestions = filterTone(out.ToneSuggestions, key)
	out.StyleSuggestions = filterStyle(out.StyleSuggestions, key)
	out.EuphonyImprovements = filterEuphony(out.EuphonyImprovements, key)
	hadCorrections := len(out.Mixing.Corrections) > 0
	out.Mixing.Corrections = filterStyle(out.Mixing.Corrections, key)
	collapseMixing(&out.Mixing, hadCorrections)
	return out, nil
}

// Dismiss removes matches from exactly one category. Dismissing never
// cascades: hiding a tone suggestion must not hide a spelling error
// on the same word.
func (rc *Reconciler) Dismiss(res *Result, cat Category, text string) *Result {
	key := Normalize(text)
	out := res.Clone()
	switch cat {
	case CategorySpelling:
		out.SpellingErrors = filterSpelling(out.SpellingErrors, key)
	case CategoryPunctuation:
		out.PunctuationIssues = filterPunctuation(out.PunctuationIssues, key)
	case CategoryTone:
		out.ToneSuggestions = filterTone(out.ToneSuggestions, key)
	case CategoryStyle:
		out.StyleSuggestions = filterStyle(out.StyleSuggestions, key)
	case CategoryEuphony:
		out.EuphonyImprovements = filterEuphony(out.EuphonyImprovements, key)
	case CategoryMixing:
		hadCorrections := len(out.Mixing.Corrections) > 0
		out.Mixing.Corrections = filterStyle(out.Mixing.Corrections, key)
		collapseMixing(&out.Mixing, hadCorrections)
	}
	return out
}

// Removing the last correction leaves no meaningful display state, so
// the whole report collapses to undetected. A report that never had
// corrections — detection metadata only — is valid as-is and must
// survive unrelated removals untouched.
func collapseMixing(m *StyleMixingReport, hadCorrections bool) {
	if hadCorrections && len(m.Corrections) == 0 {
		*m = StyleMixingReport{}
	}
}

func filterSpelling(in []SpellingError, key string) []SpellingError {
	out := in[:0]
	for _, e := range in {
		if Normalize(e.Wrong) != key {
			out = append(out, e)
		}
	}
	return out
}

func filterPunctuation(in []PunctuationIssue, key string) []PunctuationIssue {
	out := in[:0]
	for _, e := range in {
		if Normalize(e.CurrentSentence) != key {
			out = append(out, e)
		}
	}
	return out
}

func filterTone(in []ToneSuggestion, key string) []ToneSuggestion {
	out := in[:0]
	for _, e := range in {
		if Normalize(e.Current) != key {
			out = append(out, e)
		}
	}
	return out
}

func filterStyle(in []StyleSuggestion, key string) []StyleSuggestion {
	out := in[:0]
	for _, e := range in {
		if Normalize(e.Current) != key {
			out = append(out, e)
		}
	}
	return out
}

func filterEuphony(in []EuphonyImprovement, key string) []EuphonyImprovement {
	out := in[:0]
	for _, e := range in {
		if Normalize(e.Current) != key {
			out = append(out, e)
		}
	}
	return out
}
