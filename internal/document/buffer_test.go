package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewBufferWordCount(t *testing.T) {
	b := NewBuffer("আমি ভাত খাই")
	if got := b.Metadata().WordCount; got != 3 {
		t.Errorf("WordCount = %d, want 3", got)
	}
}

func TestApplyReplacement(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces present text", func(t *testing.T) {
		b := NewBuffer("আমি করতেছি এখন")
		ok, err := b.ApplyReplacement(ctx, "করতেছি", "করছি", 1)
		if err != nil || !ok {
			t.Fatalf("ApplyReplacement = %v, %v; want true, nil", ok, err)
		}
		if b.Content() != "আমি করছি এখন" {
			t.Errorf("Content = %q", b.Content())
		}
		if !b.Dirty() {
			t.Error("buffer should be dirty after replacement")
		}
	})

	t.Run("absent text reports false", func(t *testing.T) {
		b := NewBuffer("আমি ভাত খাই")
		ok, err := b.ApplyReplacement(ctx, "নেই", "আছে", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("ApplyReplacement = true for absent text, want false")
		}
		if b.Dirty() {
			t.Error("failed replacement must not dirty the buffer")
		}
	})

	t.Run("position hint picks nearest occurrence", func(t *testing.T) {
		b := NewBuffer("ভুল শব্দ আর পরে আবার ভুল শব্দ")
		ok, err := b.ApplyReplacement(ctx, "ভুল", "ঠিক", 5)
		if err != nil || !ok {
			t.Fatalf("ApplyReplacement = %v, %v", ok, err)
		}
		if b.Content() != "ভুল শব্দ আর পরে আবার ঠিক শব্দ" {
			t.Errorf("Content = %q, want second occurrence replaced", b.Content())
		}
	})

	t.Run("empty old text reports false", func(t *testing.T) {
		b := NewBuffer("কিছু লেখা")
		ok, _ := b.ApplyReplacement(ctx, "  ", "x", 0)
		if ok {
			t.Error("ApplyReplacement = true for empty old text")
		}
	})
}

func TestHighlights(t *testing.T) {
	ctx := context.Background()
	b := NewBuffer("আমি ভাত খাই")

	if err := b.ApplyHighlight(ctx, "ভাত", HighlightSpelling, 1); err != nil {
		t.Fatalf("ApplyHighlight: %v", err)
	}
	if got := b.Highlights(); got["ভাত"] != HighlightSpelling {
		t.Errorf("Highlights = %v", got)
	}

	if err := b.ClearHighlights(ctx); err != nil {
		t.Fatalf("ClearHighlights: %v", err)
	}
	if len(b.Highlights()) != 0 {
		t.Error("highlights should be empty after clear")
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("আমি করতেছি"), 0644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Metadata().WordCount != 2 {
		t.Errorf("WordCount = %d, want 2", b.Metadata().WordCount)
	}

	ok, err := b.ApplyReplacement(context.Background(), "করতেছি", "করছি", 0)
	if err != nil || !ok {
		t.Fatalf("ApplyReplacement = %v, %v", ok, err)
	}
	if err := b.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "আমি করছি" {
		t.Errorf("saved content = %q", string(data))
	}
	if b.Dirty() {
		t.Error("buffer should be clean after save")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/no/such/file.txt"); err == nil {
		t.Error("Load should fail for missing file")
	}
}
