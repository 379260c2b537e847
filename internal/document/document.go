// Package document is the seam between the analysis core and the
// host that owns the text. The core only ever sees the Adapter
// interface; the shipped implementation is a file-backed Buffer, and
// a real editor host can plug in behind the same four calls.
package document

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// HighlightColor is a presentation token, not a concrete color; the
// host maps it to whatever its rendering supports.
type HighlightColor string

const (
	HighlightSpelling    HighlightColor = "spelling"
	HighlightPunctuation HighlightColor = "punctuation"
	HighlightTone        HighlightColor = "tone"
	HighlightStyle       HighlightColor = "style"
	HighlightEuphony     HighlightColor = "euphony"
)

// Adapter is the host-document capability the review service and
// reconciler consume. Position arguments are advisory word-index
// hints, never exact offsets.
type Adapter interface {
	// SelectedText returns the text under review, empty when nothing
	// is selected.
	SelectedText(ctx context.Context) (string, error)

	// ApplyReplacement substitutes newText for one occurrence of
	// oldText, preferring the occurrence nearest the position hint.
	// Returns false when oldText is not present.
	ApplyReplacement(ctx context.Context, oldText, newText string, position int) (bool, error)

	// ApplyHighlight marks every occurrence of text with the color
	// token.
	ApplyHighlight(ctx context.Context, text string, color HighlightColor, position int) error

	// ClearHighlights removes every highlight previously applied.
	ClearHighlights(ctx context.Context) error
}

// Metadata describes a loaded document.
type Metadata struct {
	Title         string    `json:"title" yaml:"title"`
	SourcePath    string    `json:"source_path" yaml:"source_path"`
	FileSizeBytes int64     `json:"file_size_bytes" yaml:"file_size_bytes"`
	WordCount     int       `json:"word_count" yaml:"word_count"`
	LoadedAt      time.Time `json:"loaded_at" yaml:"loaded_at"`
}

// FileSizeHuman returns human-readable file size.
func (m Metadata) FileSizeHuman() string {
	bytes := m.FileSizeBytes
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
}

// CountWords counts whitespace-separated tokens. Good enough for the
// spelling cap, which only needs the right order of magnitude.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
