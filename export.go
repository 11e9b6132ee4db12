package bankchunk

import (
	"fmt"
	"io"
)

// WriteMarkdown writes the chunks of a result as a Markdown document, one
// section per chunk.
func WriteMarkdown(w io.Writer, result *ProcessingResult) error {
	if _, err := fmt.Fprintf(w, "# Bank Statement\n\nTotal chunks: %d\n\n---\n\n", len(result.Chunks)); err != nil {
		return err
	}
	for i, chunk := range result.Chunks {
		if _, err := fmt.Fprintf(w, "## Chunk %d\n\n%s\n\n---\n\n", i+1, chunk); err != nil {
			return err
		}
	}
	return nil
}
