package pdf

import (
	"errors"
	"strings"

	"github.com/tsawler/bankchunk/model"
	"github.com/tsawler/bankchunk/rag"
)

// Raw-text windows are sized in runes so multi-byte characters never split.
const (
	fallbackWindowSize    = 1000
	fallbackWindowOverlap = 200
)

// ErrNoText is returned by TextFallback when the document yields no text.
var ErrNoText = errors.New("no text extracted from document")

// TextFallback chunks the document's raw text when table assembly fails.
// Each chunk covers a window of up to 1000 characters with 200 characters
// repeated between neighbours.
func TextFallback(src Source) (*model.Metadata, []string, error) {
	text, err := src.RawText()
	if err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil, ErrNoText
	}

	meta := model.NewMetadata()
	meta.Set("source", "text_fallback")

	runes := []rune(text)
	var chunks []string
	for start := 0; start < len(runes); {
		end := start + fallbackWindowSize
		if end > len(runes) {
			end = len(runes)
		}
		window := string(runes[start:end])
		chunks = append(chunks, rag.FallbackChunk(meta, []string{"Content"}, [][]string{{window}}))

		if end < len(runes) {
			start = end - fallbackWindowOverlap
		} else {
			start = end
		}
	}
	return meta, chunks, nil
}
