package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorCategory is the user-facing classification of a transport or
// HTTP failure. The parsing core never produces these; they belong to
// the network collaborator alone.
type ErrorCategory string

const (
	ErrAuth    ErrorCategory = "auth"    // rejected key
	ErrQuota   ErrorCategory = "quota"   // rate limit / quota exhausted
	ErrServer  ErrorCategory = "server"  // provider-side 5xx
	ErrTimeout ErrorCategory = "timeout" // deadline or cancellation
	ErrNetwork ErrorCategory = "network" // unreachable endpoint
)

// APIError carries the category alongside the provider's own message.
type APIError struct {
	Provider string
	Category ErrorCategory
	Status   int
	Message  string
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s error (%s, status %d): %s", e.Provider, e.Category, e.Status, e.Message)
	}
	return fmt.Sprintf("%s error (%s): %s", e.Provider, e.Category, e.Message)
}

// statusError maps an HTTP status to a categorized APIError.
func statusError(provider string, status int, body string) *APIError {
	cat := ErrServer
	switch {
	case status == 401 || status == 403:
		cat = ErrAuth
	case status == 429:
		cat = ErrQuota
	case status == 408 || status == 504:
		cat = ErrTimeout
	case status >= 400 && status < 500:
		cat = ErrNetwork
	}
	return &APIError{Provider: provider, Category: cat, Status: status, Message: body}
}

// transportError wraps a failed round trip, distinguishing timeouts
// from plain connectivity problems.
func transportError(provider string, err error) *APIError {
	cat := ErrNetwork
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		cat = ErrTimeout
	}
	return &APIError{Provider: provider, Category: cat, Message: err.Error()}
}

// Category extracts the category from any error chain, defaulting to
// network for errors that never reached the HTTP layer.
func Category(err error) ErrorCategory {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Category
	}
	return ErrNetwork
}
