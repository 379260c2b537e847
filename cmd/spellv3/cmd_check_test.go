package main

import (
	"context"
	"errors"
	"testing"

	"github.com/youngsunson/spellv3/internal/config"
	"github.com/youngsunson/spellv3/internal/document"
	"github.com/youngsunson/spellv3/internal/llm"
	"github.com/youngsunson/spellv3/internal/prompts"
	"github.com/youngsunson/spellv3/internal/toon"
)

type stubProvider struct {
	content string
	err     error
	calls   int
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(context.Context, *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{Content: s.content}, nil
}

func (s *stubProvider) Stream(context.Context, *llm.CompletionRequest) (<-chan llm.StreamEvent, error) {
	ch := make(chan llm.StreamEvent)
	close(ch)
	return ch, nil
}

func (s *stubProvider) Ping(context.Context) error { return nil }

func fallbackConfig() *config.Config {
	return &config.Config{
		Provider: "anthropic",
		Model:    "claude-3-5-sonnet-20241022",
		Local: &config.LocalConfig{
			Enabled:  true,
			Provider: "ollama",
			Host:     "http://127.0.0.1:1", // must never be contacted
			Model:    "qwen2.5:3b",
		},
	}
}

func TestRunAnalysisParseFailureDoesNotFallBack(t *testing.T) {
	provider := &stubProvider{content: "দুঃখিত, বিশ্লেষণ করা গেল না।"}
	buf := document.NewBuffer("আমি ভুল লিখেছি")

	_, err := runAnalysis(context.Background(), fallbackConfig(), provider, buf, prompts.Options{}, nil)
	if err == nil {
		t.Fatal("expected an error for an unreadable reply")
	}
	if !errors.Is(err, toon.ErrUnrecognized) {
		t.Errorf("got %v, want the unrecognized-format error surfaced as-is", err)
	}
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}
}

func TestRunAnalysisAuthFailureDoesNotFallBack(t *testing.T) {
	want := &llm.APIError{Provider: "stub", Category: llm.ErrAuth, Status: 401, Message: "bad key"}
	provider := &stubProvider{err: want}
	buf := document.NewBuffer("কিছু লেখা")

	_, err := runAnalysis(context.Background(), fallbackConfig(), provider, buf, prompts.Options{}, nil)
	var apiErr *llm.APIError
	if !errors.As(err, &apiErr) || apiErr.Category != llm.ErrAuth {
		t.Errorf("got %v, want the auth error surfaced as-is", err)
	}
}
