package pdf

import (
	"errors"
	"strings"
	"testing"
)

type stubSource struct {
	pages    []PageContent
	pagesErr error
	text     string
	textErr  error
}

func (s *stubSource) Pages() ([]PageContent, error) { return s.pages, s.pagesErr }
func (s *stubSource) RawText() (string, error)      { return s.text, s.textErr }

func TestTextFallback(t *testing.T) {
	src := &stubSource{text: strings.Repeat("x", 1500)}
	meta, chunks, err := TextFallback(src)
	if err != nil {
		t.Fatalf("TextFallback() error = %v", err)
	}

	// windows cover [0,1000) and [800,1500)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if v, _ := meta.Get("source"); v != "text_fallback" {
		t.Errorf("source = %q, want text_fallback", v)
	}
	for i, chunk := range chunks {
		if !strings.Contains(chunk, "source: text_fallback") {
			t.Errorf("chunk %d missing metadata line", i)
		}
		if !strings.Contains(chunk, "Content") {
			t.Errorf("chunk %d missing header line", i)
		}
	}
	if !strings.Contains(chunks[0], strings.Repeat("x", 1000)) {
		t.Errorf("first window should hold 1000 characters")
	}
}

func TestTextFallback_ShortText(t *testing.T) {
	src := &stubSource{text: "short statement text"}
	_, chunks, err := TextFallback(src)
	if err != nil {
		t.Fatalf("TextFallback() error = %v", err)
	}
	if len(chunks) != 1 {
		t.Errorf("got %d chunks, want 1", len(chunks))
	}
}

func TestTextFallback_EmptyText(t *testing.T) {
	src := &stubSource{text: "   \n  "}
	if _, _, err := TextFallback(src); !errors.Is(err, ErrNoText) {
		t.Errorf("error = %v, want ErrNoText", err)
	}
}

func TestTextFallback_SourceError(t *testing.T) {
	src := &stubSource{textErr: errors.New("boom")}
	if _, _, err := TextFallback(src); err == nil {
		t.Error("expected error from source")
	}
}
