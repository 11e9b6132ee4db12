// Package bankchunk turns bank statement files into retrieval-ready text
// chunks.
//
// A statement arrives as a PDF, CSV or Excel file. The library extracts the
// transaction table, normalizes its columns to a standard set, repairs rows
// split or merged by the export, and emits fixed-size chunks of transactions
// plus a leading chunk of statement metadata. When the table cannot be
// recovered, a plain-text fallback keeps the content retrievable.
//
// Basic usage:
//
//	result, warnings, err := bankchunk.Open("statement.pdf").Process()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", bankchunk.FormatWarnings(warnings))
//	}
//	for _, chunk := range result.Chunks {
//	    // embed or index chunk
//	}
//
// With options:
//
//	result, _, err := bankchunk.Open("statement.csv").
//	    ChunkSize(10).
//	    Overlap(2).
//	    Process()
package bankchunk

// Open prepares a statement file for processing and returns a Processor for
// fluent configuration.
//
// Example:
//
//	result, warnings, err := bankchunk.Open("statement.pdf").Process()
func Open(filename string) *Processor {
	return &Processor{
		filename: filename,
		options:  defaultOptions(),
	}
}
