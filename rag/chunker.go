package rag

import (
	"fmt"
	"strings"

	"github.com/tsawler/bankchunk/model"
	"github.com/tsawler/bankchunk/rows"
)

// nullValue marks a cell with no content in structured chunk output.
const nullValue = "null"

// ChunkerConfig holds configuration options for the chunker
type ChunkerConfig struct {
	// ChunkSize is the number of transaction rows per chunk
	// Default: 5
	ChunkSize int

	// Overlap is the number of rows repeated between consecutive chunks
	// Must be smaller than ChunkSize
	// Default: 0
	Overlap int
}

// DefaultChunkerConfig returns sensible default configuration
func DefaultChunkerConfig() ChunkerConfig {
	return ChunkerConfig{
		ChunkSize: 5,
		Overlap:   0,
	}
}

// Validate checks that the configuration is internally consistent
func (c ChunkerConfig) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.Overlap < 0 {
		return fmt.Errorf("overlap must not be negative, got %d", c.Overlap)
	}
	if c.Overlap >= c.ChunkSize {
		return fmt.Errorf("overlap (%d) must be smaller than chunk size (%d)", c.Overlap, c.ChunkSize)
	}
	return nil
}

// Chunker splits statement tables into retrieval chunks
type Chunker struct {
	config ChunkerConfig
}

// NewChunker creates a chunker with default configuration
func NewChunker() *Chunker {
	return &Chunker{
		config: DefaultChunkerConfig(),
	}
}

// NewChunkerWithConfig creates a chunker with custom configuration
func NewChunkerWithConfig(config ChunkerConfig) *Chunker {
	return &Chunker{
		config: config,
	}
}

// Chunks produces the chunk sequence for a normalized table. The first chunk
// contains only the statement metadata; each following chunk covers a window
// of ChunkSize rows, with Overlap rows shared between neighbours.
func (c *Chunker) Chunks(meta *model.Metadata, headers []string, rowData [][]string) []string {
	chunks := []string{strings.Join(meta.Lines(), "\n")}

	start := 0
	for start < len(rowData) {
		end := start + c.config.ChunkSize
		if end > len(rowData) {
			end = len(rowData)
		}
		chunks = append(chunks, c.structuredChunk(meta, headers, rowData[start:end], start, end-1))

		if c.config.Overlap > 0 {
			if end >= len(rowData) {
				break
			}
			next := end - c.config.Overlap
			if next <= start {
				break
			}
			start = next
		} else {
			start = end
		}
	}
	return chunks
}

// FallbackChunks produces plain-text chunks for a table that could not be
// normalized. Overlap is ignored; windows never share rows.
func (c *Chunker) FallbackChunks(meta *model.Metadata, headers []string, rowData [][]string) []string {
	var chunks []string
	for start := 0; start < len(rowData); {
		end := start + c.config.ChunkSize
		if end > len(rowData) {
			end = len(rowData)
		}
		chunks = append(chunks, FallbackChunk(meta, headers, rowData[start:end]))
		start = end
	}
	return chunks
}

// structuredChunk renders one window of rows in the indented layout. firstRow
// and lastRow are inclusive indices into the full table.
func (c *Chunker) structuredChunk(meta *model.Metadata, headers []string, window [][]string, firstRow, lastRow int) string {
	parts := []string{"    metadata:"}
	for _, key := range meta.Keys() {
		value, _ := meta.Get(key)
		parts = append(parts, fmt.Sprintf("      %q: \"%s,,,,,,\"", key, value))
	}
	parts = append(parts, fmt.Sprintf("    headers[%d]: %s", len(headers), strings.Join(headers, ",")))
	parts = append(parts, fmt.Sprintf("    rows[%d]:", len(window)))
	for _, row := range window {
		cells := make([]string, len(headers))
		for i := range headers {
			cells[i] = fmt.Sprintf("%q", cellValue(row, i))
		}
		parts = append(parts, fmt.Sprintf("      - [%d,]: %s", len(headers), strings.Join(cells, ",")))
	}
	parts = append(parts, fmt.Sprintf("    row_indices[2]: %d,%d", firstRow, lastRow))
	parts = append(parts, fmt.Sprintf("    num_transactions: %d", len(window)))
	return strings.Join(parts, "\n")
}

// FallbackChunk renders metadata and a window of rows as plain text. It is
// also used for raw-text windows, with a single "Content" header column.
// Cells are cleaned before joining: whitespace-only values render empty.
func FallbackChunk(meta *model.Metadata, headers []string, window [][]string) string {
	var parts []string
	if meta.Len() > 0 {
		parts = append(parts, strings.Join(meta.Lines(), "\n"))
	}
	if len(headers) > 0 && len(window) > 0 {
		parts = append(parts, "Statement of account")
		lines := []string{strings.Join(headers, " ")}
		for _, row := range window {
			cells := make([]string, len(row))
			for i, cell := range row {
				cells[i], _ = rows.CleanValue(cell)
			}
			lines = append(lines, strings.Join(cells, " "))
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return strings.Join(parts, "\n")
}

func cellValue(row []string, i int) string {
	if i >= len(row) {
		return nullValue
	}
	if cleaned, ok := rows.CleanValue(row[i]); ok {
		return cleaned
	}
	return nullValue
}
