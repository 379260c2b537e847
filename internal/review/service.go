// Package review orchestrates a proofreading run: prompt the model,
// decode whatever shape it answered in, and reconcile the user's
// accept/dismiss decisions back into the document.
package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/youngsunson/spellv3/internal/analysis"
	"github.com/youngsunson/spellv3/internal/document"
	"github.com/youngsunson/spellv3/internal/llm"
	"github.com/youngsunson/spellv3/internal/prompts"
	"github.com/youngsunson/spellv3/internal/toon"
)

type Service struct {
	provider   llm.Provider
	model      string
	doc        document.Adapter
	reconciler *analysis.Reconciler
	logger     *zap.Logger
}

func NewService(provider llm.Provider, model string, doc document.Adapter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider:   provider,
		model:      model,
		doc:        doc,
		reconciler: analysis.NewReconciler(doc),
		logger:     logger,
	}
}

// Analyze sends text to the model and decodes the reply into a Result.
// A reply in neither the section format nor JSON is an error; the
// caller decides whether to retry.
func (s *Service) Analyze(ctx context.Context, text string, opts prompts.Options) (*analysis.Result, error) {
	runID := uuid.NewString()
	wordCount := document.CountWords(text)

	s.logger.Info("analysis started",
		zap.String("run_id", runID),
		zap.String("provider", s.provider.Name()),
		zap.String("model", s.model),
		zap.Int("word_count", wordCount),
	)

	req := llm.NewRequest(s.model, prompts.BuildReviewPrompt(opts), text)
	resp, err := s.provider.Complete(ctx, req)
	if err != nil {
		s.logger.Error("completion failed",
			zap.String("run_id", runID),
			zap.String("category", string(llm.Category(err))),
			zap.Error(err),
		)
		return nil, err
	}

	res, err := toon.Detect(resp.Content, wordCount)
	if err != nil {
		if errors.Is(err, toon.ErrUnrecognized) {
			s.logger.Warn("unparseable model response",
				zap.String("run_id", runID),
				zap.Int("response_bytes", len(resp.Content)),
			)
		}
		return nil, fmt.Errorf("decoding model response: %w", err)
	}

	s.logger.Info("analysis finished",
		zap.String("run_id", runID),
		zap.Int("suggestions", res.Count()),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)
	return res, nil
}

// AnalyzeSelection runs Analyze on whatever the host currently has
// selected.
func (s *Service) AnalyzeSelection(ctx context.Context, opts prompts.Options) (*analysis.Result, error) {
	text, err := s.doc.SelectedText(ctx)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, errors.New("no text selected")
	}
	return s.Analyze(ctx, text, opts)
}

// AcceptSuggestion applies a replacement to the document and, on
// success, removes every suggestion that targeted the replaced text.
func (s *Service) AcceptSuggestion(ctx context.Context, res *analysis.Result, oldText, newText string, position int) (*analysis.Result, error) {
	return s.reconciler.Accept(ctx, res, oldText, newText, position)
}

// DismissSuggestion drops one suggestion from one category without
// touching the document.
func (s *Service) DismissSuggestion(res *analysis.Result, cat analysis.Category, text string) *analysis.Result {
	return s.reconciler.Dismiss(res, cat, text)
}

// HighlightResult marks every remaining suggestion in the document,
// replacing whatever highlights a previous pass left behind.
func (s *Service) HighlightResult(ctx context.Context, res *analysis.Result) error {
	if err := s.doc.ClearHighlights(ctx); err != nil {
		return err
	}
	for _, e := range res.SpellingErrors {
		if err := s.doc.ApplyHighlight(ctx, e.Wrong, document.HighlightSpelling, e.Position); err != nil {
			return err
		}
	}
	for _, p := range res.PunctuationIssues {
		if err := s.doc.ApplyHighlight(ctx, p.CurrentSentence, document.HighlightPunctuation, p.Position); err != nil {
			return err
		}
	}
	for _, t := range res.ToneSuggestions {
		if err := s.doc.ApplyHighlight(ctx, t.Current, document.HighlightTone, t.Position); err != nil {
			return err
		}
	}
	for _, st := range res.StyleSuggestions {
		if err := s.doc.ApplyHighlight(ctx, st.Current, document.HighlightStyle, st.Position); err != nil {
			return err
		}
	}
	for _, st := range res.Mixing.Corrections {
		if err := s.doc.ApplyHighlight(ctx, st.Current, document.HighlightStyle, st.Position); err != nil {
			return err
		}
	}
	for _, e := range res.EuphonyImprovements {
		if err := s.doc.ApplyHighlight(ctx, e.Current, document.HighlightEuphony, e.Position); err != nil {
			return err
		}
	}
	return nil
}
