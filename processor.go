package bankchunk

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/bankchunk/columns"
	"github.com/tsawler/bankchunk/model"
	"github.com/tsawler/bankchunk/pdf"
	"github.com/tsawler/bankchunk/rag"
	"github.com/tsawler/bankchunk/rows"
	"github.com/tsawler/bankchunk/tabular"
)

var (
	// ErrUnsupportedFormat is returned when the file extension is not a
	// recognized statement format.
	ErrUnsupportedFormat = errors.New("unsupported statement format")

	// ErrMissingFile is returned when the statement file does not exist.
	ErrMissingFile = errors.New("statement file not found")
)

// Warning describes a non-fatal problem encountered while processing.
type Warning struct {
	// Stage identifies the processing phase that produced the warning.
	Stage string

	// Message is a human-readable description.
	Message string
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Stage, w.Message)
}

// FormatWarnings joins warnings into a single string, one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// ProcessingResult is the outcome of processing one statement file.
type ProcessingResult struct {
	// Metadata is the statement-level information found outside the
	// transaction table.
	Metadata *model.Metadata `json:"metadata"`

	// Chunks are the retrieval chunks, in order. In structured mode the
	// first chunk holds only metadata.
	Chunks []string `json:"chunks"`

	// FallbackUsed reports whether the structured pipeline failed and a
	// plain-text fallback produced the chunks.
	FallbackUsed bool `json:"fallback_used"`
}

// Processor processes a single statement file. Instances are immutable:
// each configuration method returns a new Processor.
type Processor struct {
	filename string
	options  ProcessOptions
	err      error
}

// clone creates a copy of the Processor with copied options.
func (p *Processor) clone() *Processor {
	return &Processor{
		filename: p.filename,
		options:  p.options.clone(),
		err:      p.err,
	}
}

// ChunkSize sets the number of transaction rows per chunk.
//
// Example:
//
//	result, _, err := bankchunk.Open("statement.csv").ChunkSize(10).Process()
func (p *Processor) ChunkSize(n int) *Processor {
	np := p.clone()
	if n <= 0 {
		np.err = fmt.Errorf("chunk size must be positive, got %d", n)
		return np
	}
	np.options.chunkSize = n
	return np
}

// Overlap sets the number of rows repeated between consecutive chunks. It
// must stay below the chunk size.
func (p *Processor) Overlap(n int) *Processor {
	np := p.clone()
	if n < 0 {
		np.err = fmt.Errorf("overlap must not be negative, got %d", n)
		return np
	}
	np.options.overlap = n
	return np
}

// Process runs the pipeline and returns the chunked statement. Warnings
// report recoverable problems such as a fallback being taken; the error is
// non-nil only when no output could be produced at all.
func (p *Processor) Process() (*ProcessingResult, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}

	if _, err := os.Stat(p.filename); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingFile, p.filename)
		}
		return nil, nil, fmt.Errorf("checking statement file: %w", err)
	}

	cfg := rag.ChunkerConfig{ChunkSize: p.options.chunkSize, Overlap: p.options.overlap}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(p.filename)); ext {
	case ".pdf":
		return p.processPDF(pdf.NewTabulaSource(p.filename), cfg)
	case ".csv", ".xlsx", ".xls":
		return p.processTabular(cfg)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// processPDF assembles the statement table from extracted pages, dropping to
// the raw-text fallback when extraction or assembly fails.
func (p *Processor) processPDF(src pdf.Source, cfg rag.ChunkerConfig) (*ProcessingResult, []Warning, error) {
	var warnings []Warning

	pages, err := src.Pages()
	if err != nil {
		warnings = append(warnings, Warning{Stage: "pdf", Message: fmt.Sprintf("page extraction failed: %v", err)})
		return p.pdfTextFallback(src, warnings)
	}

	meta := pdf.PageMetadata(pages)

	table, err := pdf.NewAssembler().Assemble(pages)
	if err != nil {
		warnings = append(warnings, Warning{Stage: "assemble", Message: fmt.Sprintf("table assembly failed: %v", err)})
		return p.pdfTextFallback(src, warnings)
	}

	chunker := rag.NewChunkerWithConfig(cfg)
	return &ProcessingResult{
		Metadata: meta,
		Chunks:   chunker.Chunks(meta, table.Headers, table.Rows),
	}, warnings, nil
}

// pdfTextFallback chunks the document's raw text. A statement that yields no
// text at all still produces an empty result rather than an error.
func (p *Processor) pdfTextFallback(src pdf.Source, warnings []Warning) (*ProcessingResult, []Warning, error) {
	meta, chunks, err := pdf.TextFallback(src)
	if err != nil {
		warnings = append(warnings, Warning{Stage: "fallback", Message: fmt.Sprintf("text fallback failed: %v", err)})
		return &ProcessingResult{
			Metadata:     model.NewMetadata(),
			Chunks:       []string{},
			FallbackUsed: true,
		}, warnings, nil
	}
	return &ProcessingResult{
		Metadata:     meta,
		Chunks:       chunks,
		FallbackUsed: true,
	}, warnings, nil
}

// processTabular handles CSV and Excel statements. The mixed line-oriented
// parser runs first; when it finds nothing the file is re-read through a
// plain table reader and chunked as text.
func (p *Processor) processTabular(cfg rag.ChunkerConfig) (*ProcessingResult, []Warning, error) {
	var warnings []Warning
	chunker := rag.NewChunkerWithConfig(cfg)

	mixed, err := tabular.ParseMixedFile(p.filename)
	if err == nil && len(mixed.Rows) > 0 {
		meta := tabular.ExtractMetadata(mixed.MetadataLines)
		headers, cm := columns.Normalize(mixed.Headers, columns.VariantCSV)

		var kept [][]string
		for _, row := range mixed.Rows {
			if rows.IsFooterRow(row) {
				continue
			}
			if rows.IsTransactionRow(row, cm) || rows.IsContinuationRow(row, cm) {
				kept = append(kept, row)
			}
		}

		if len(kept) > 0 {
			kept = rows.MergeContinuationRows(kept, cm)
			rows.ReconcileDebitCredit(kept, cm)
			return &ProcessingResult{
				Metadata: meta,
				Chunks:   chunker.Chunks(meta, headers, kept),
			}, warnings, nil
		}

		warnings = append(warnings, Warning{Stage: "tabular", Message: "no transaction rows recognized, chunking all rows as text"})
		return &ProcessingResult{
			Metadata:     meta,
			Chunks:       chunker.FallbackChunks(meta, headers, mixed.Rows),
			FallbackUsed: true,
		}, warnings, nil
	}
	if err != nil {
		warnings = append(warnings, Warning{Stage: "tabular", Message: fmt.Sprintf("mixed parse failed: %v", err)})
	} else {
		warnings = append(warnings, Warning{Stage: "tabular", Message: "no header line found, using plain table reader"})
	}

	meta, rawHeaders, data, err := tabular.ReadFallback(p.filename)
	if err != nil {
		warnings = append(warnings, Warning{Stage: "tabular", Message: fmt.Sprintf("table read failed: %v", err)})
		return &ProcessingResult{
			Metadata:     model.NewMetadata(),
			Chunks:       []string{},
			FallbackUsed: true,
		}, warnings, nil
	}
	if len(data) == 0 {
		return &ProcessingResult{
			Metadata:     meta,
			Chunks:       []string{},
			FallbackUsed: true,
		}, warnings, nil
	}

	headers, _ := columns.Normalize(rawHeaders, columns.VariantCSV)
	return &ProcessingResult{
		Metadata:     meta,
		Chunks:       chunker.FallbackChunks(meta, headers, data),
		FallbackUsed: true,
	}, warnings, nil
}
