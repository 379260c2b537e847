package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Buffer is the file-backed Adapter implementation: the whole file is
// the selection, replacements edit the in-memory content, and Save
// writes it back. Highlights are tracked but rendering them is the
// presentation layer's problem.
type Buffer struct {
	content    string
	meta       Metadata
	highlights map[string]HighlightColor
	dirty      bool
}

// Load reads a plain-text document into a Buffer.
func Load(path string) (*Buffer, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, err
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	content := string(data)
	return &Buffer{
		content:    content,
		highlights: map[string]HighlightColor{},
		meta: Metadata{
			Title:         filepath.Base(absPath),
			SourcePath:    absPath,
			FileSizeBytes: info.Size(),
			WordCount:     CountWords(content),
			LoadedAt:      time.Now(),
		},
	}, nil
}

// NewBuffer wraps raw text that has no backing file (pasted input,
// tests).
func NewBuffer(content string) *Buffer {
	return &Buffer{
		content:    content,
		highlights: map[string]HighlightColor{},
		meta: Metadata{
			Title:     "untitled",
			WordCount: CountWords(content),
			LoadedAt:  time.Now(),
		},
	}
}

func (b *Buffer) Metadata() Metadata { return b.meta }
func (b *Buffer) Content() string    { return b.content }
func (b *Buffer) Dirty() bool        { return b.dirty }

// Highlights returns the active text -> color map.
func (b *Buffer) Highlights() map[string]HighlightColor {
	out := make(map[string]HighlightColor, len(b.highlights))
	for k, v := range b.highlights {
		out[k] = v
	}
	return out
}

func (b *Buffer) SelectedText(ctx context.Context) (string, error) {
	return b.content, nil
}

// ApplyReplacement edits the occurrence of oldText whose word index
// is nearest the position hint. The hint is advisory: with no usable
// hint the first occurrence is taken.
func (b *Buffer) ApplyReplacement(ctx context.Context, oldText, newText string, position int) (bool, error) {
	oldText = strings.TrimSpace(oldText)
	if oldText == "" {
		return false, nil
	}
	idx := b.occurrenceNear(oldText, position)
	if idx < 0 {
		return false, nil
	}
	b.content = b.content[:idx] + newText + b.content[idx+len(oldText):]
	b.meta.WordCount = CountWords(b.content)
	b.dirty = true
	return true, nil
}

func (b *Buffer) ApplyHighlight(ctx context.Context, text string, color HighlightColor, position int) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	b.highlights[text] = color
	return nil
}

func (b *Buffer) ClearHighlights(ctx context.Context) error {
	b.highlights = map[string]HighlightColor{}
	return nil
}

// Save writes the buffer back to its source file.
func (b *Buffer) Save() error {
	if b.meta.SourcePath == "" {
		return fmt.Errorf("buffer has no backing file")
	}
	if err := os.WriteFile(b.meta.SourcePath, []byte(b.content), 0644); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	b.dirty = false
	return nil
}

// occurrenceNear returns the byte offset of the occurrence of needle
// whose preceding word count is closest to the hint, or -1 when the
// needle is absent.
func (b *Buffer) occurrenceNear(needle string, hint int) int {
	var offsets []int
	for from := 0; ; {
		i := strings.Index(b.content[from:], needle)
		if i < 0 {
			break
		}
		offsets = append(offsets, from+i)
		from += i + len(needle)
	}
	if len(offsets) == 0 {
		return -1
	}
	if hint <= 0 || len(offsets) == 1 {
		return offsets[0]
	}

	best, bestDist := offsets[0], -1
	for _, off := range offsets {
		wordIdx := CountWords(b.content[:off])
		dist := wordIdx - hint
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = off, dist
		}
	}
	return best
}
