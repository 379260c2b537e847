package review

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youngsunson/spellv3/internal/analysis"
	"github.com/youngsunson/spellv3/internal/document"
	"github.com/youngsunson/spellv3/internal/llm"
	"github.com/youngsunson/spellv3/internal/prompts"
	"github.com/youngsunson/spellv3/internal/toon"
)

type fakeProvider struct {
	content string
	err     error
	lastReq *llm.CompletionRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.content}, nil
}

func (f *fakeProvider) Stream(context.Context, *llm.CompletionRequest) (<-chan llm.StreamEvent, error) {
	ch := make(chan llm.StreamEvent)
	close(ch)
	return ch, nil
}

func (f *fakeProvider) Ping(context.Context) error { return nil }

const sectionReply = `[[SPELLING]]
ভুল|ঠিক|2

[[PUNCTUATION]]
issue: দাঁড়ি অনুপস্থিত
current: আমি ভাত খাই
corrected: আমি ভাত খাই।
position: 1
`

func TestAnalyzeSectionReply(t *testing.T) {
	fp := &fakeProvider{content: sectionReply}
	buf := document.NewBuffer("আমি ভুল ভাত খাই")
	svc := NewService(fp, "test-model", buf, nil)

	res, err := svc.Analyze(context.Background(), buf.Content(), prompts.Options{Tone: "formal"})
	require.NoError(t, err)
	require.Len(t, res.SpellingErrors, 1)
	assert.Equal(t, "ভুল", res.SpellingErrors[0].Wrong)
	require.Len(t, res.PunctuationIssues, 1)

	// The prompt carries the tone instruction.
	require.NotNil(t, fp.lastReq)
	assert.Contains(t, fp.lastReq.Messages[0].Content, "formal")
}

func TestAnalyzeJSONReply(t *testing.T) {
	fp := &fakeProvider{content: "```json\n{\"spellingErrors\":[{\"wrong\":\"ভুল\",\"suggestions\":[\"ঠিক\"],\"position\":2}]}\n```"}
	buf := document.NewBuffer("আমি ভুল লিখেছি")
	svc := NewService(fp, "test-model", buf, nil)

	res, err := svc.Analyze(context.Background(), buf.Content(), prompts.Options{})
	require.NoError(t, err)
	require.Len(t, res.SpellingErrors, 1)
}

func TestAnalyzeUnrecognizedReply(t *testing.T) {
	fp := &fakeProvider{content: "দুঃখিত, আমি এই লেখাটি বিশ্লেষণ করতে পারছি না।"}
	buf := document.NewBuffer("কিছু লেখা")
	svc := NewService(fp, "test-model", buf, nil)

	_, err := svc.Analyze(context.Background(), buf.Content(), prompts.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, toon.ErrUnrecognized)
}

func TestAnalyzeProviderError(t *testing.T) {
	want := &llm.APIError{Provider: "fake", Category: llm.ErrQuota, Status: 429, Message: "slow down"}
	fp := &fakeProvider{err: want}
	svc := NewService(fp, "test-model", document.NewBuffer("লেখা"), nil)

	_, err := svc.Analyze(context.Background(), "লেখা", prompts.Options{})
	require.Error(t, err)
	assert.Equal(t, llm.ErrQuota, llm.Category(err))
}

func TestAnalyzeSelectionEmpty(t *testing.T) {
	svc := NewService(&fakeProvider{}, "m", document.NewBuffer(""), nil)

	_, err := svc.AnalyzeSelection(context.Background(), prompts.Options{})
	require.Error(t, err)
}

func TestAcceptSuggestionUpdatesDocument(t *testing.T) {
	buf := document.NewBuffer("আমি ভুল লিখেছি")
	svc := NewService(&fakeProvider{content: sectionReply}, "m", buf, nil)

	res := &analysis.Result{
		SpellingErrors: []analysis.SpellingError{{Wrong: "ভুল", Suggestions: []string{"ঠিক"}, Position: 2}},
	}

	updated, err := svc.AcceptSuggestion(context.Background(), res, "ভুল", "ঠিক", 2)
	require.NoError(t, err)
	assert.Empty(t, updated.SpellingErrors)
	assert.Equal(t, "আমি ঠিক লিখেছি", buf.Content())
}

func TestAcceptSuggestionMissingText(t *testing.T) {
	buf := document.NewBuffer("আমি লিখেছি")
	svc := NewService(&fakeProvider{}, "m", buf, nil)

	res := &analysis.Result{
		SpellingErrors: []analysis.SpellingError{{Wrong: "ভুল", Suggestions: []string{"ঠিক"}, Position: 2}},
	}

	same, err := svc.AcceptSuggestion(context.Background(), res, "ভুল", "ঠিক", 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, analysis.ErrNotApplied))
	assert.Same(t, res, same)
}

func TestDismissSuggestion(t *testing.T) {
	svc := NewService(&fakeProvider{}, "m", document.NewBuffer("x"), nil)

	res := &analysis.Result{
		SpellingErrors:  []analysis.SpellingError{{Wrong: "ভুল", Suggestions: []string{"ঠিক"}, Position: 2}},
		ToneSuggestions: []analysis.ToneSuggestion{{Current: "ভুল", Suggestion: "ঠিক", Position: 2}},
	}

	updated := svc.DismissSuggestion(res, analysis.CategorySpelling, "ভুল")
	assert.Empty(t, updated.SpellingErrors)
	assert.Len(t, updated.ToneSuggestions, 1, "dismiss must not cascade")
}

func TestHighlightResult(t *testing.T) {
	buf := document.NewBuffer("আমি ভুল লিখেছি")
	svc := NewService(&fakeProvider{}, "m", buf, nil)

	res := &analysis.Result{
		SpellingErrors: []analysis.SpellingError{{Wrong: "ভুল", Suggestions: []string{"ঠিক"}, Position: 2}},
	}

	require.NoError(t, svc.HighlightResult(context.Background(), res))
	hl := buf.Highlights()
	assert.Equal(t, document.HighlightSpelling, hl["ভুল"])
}
