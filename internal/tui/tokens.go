package tui

import "strings"

// estimateTokens returns approximate token count. Bangla script runs
// closer to one token per character than English's four.
func estimateTokens(text string) int {
	return (len([]rune(text)) + 1) / 2
}

// getContextLimit returns the context window size for a model
func getContextLimit(model string) int {
	model = strings.ToLower(model)

	if strings.Contains(model, "claude") {
		return 200000
	}

	if strings.Contains(model, "gpt-4o") || strings.Contains(model, "gpt-4-turbo") {
		return 128000
	}
	if strings.Contains(model, "gpt-4") {
		return 8000
	}

	if strings.Contains(model, "llama-3") || strings.Contains(model, "llama3") {
		return 128000
	}
	if strings.Contains(model, "llama") {
		return 8000
	}

	if strings.Contains(model, "qwen") || strings.Contains(model, "gemma") {
		return 32000
	}

	// Default fallback
	return 8000
}
