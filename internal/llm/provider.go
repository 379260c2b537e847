// Package llm abstracts the generative-model endpoints spellv3 can
// send analysis prompts to.
package llm

import (
	"context"
)

// Provider is the interface all LLM providers must implement.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Complete sends a completion request and returns the full
	// response text. Transport and HTTP failures surface as
	// *APIError with a user-facing category.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Stream sends a completion request and streams the response.
	Stream(ctx context.Context, req *CompletionRequest) (<-chan StreamEvent, error)

	// Ping checks if the provider is reachable.
	Ping(ctx context.Context) error
}

// CompletionRequest represents a request to the LLM.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Message represents a chat message.
type Message struct {
	Role    string
	Content string
}

// CompletionResponse represents the full response.
type CompletionResponse struct {
	Content      string
	Model        string
	FinishReason string
	Usage        Usage
}

// Usage tracks token usage.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// StreamEvent represents a streaming chunk or completion.
type StreamEvent struct {
	Chunk string
	Done  bool
	Error error
	Usage *Usage
}

// NewRequest builds an analysis request. Proofreading wants faithful,
// format-following output, so the temperature stays low and the token
// budget covers a long suggestion list.
func NewRequest(model, systemPrompt, userText string) *CompletionRequest {
	return &CompletionRequest{
		Model: model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userText},
		},
		MaxTokens:   4000,
		Temperature: 0.2,
	}
}
