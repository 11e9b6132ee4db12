package tabular

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/bankchunk/columns"
	"github.com/tsawler/bankchunk/model"
)

// MixedResult is the outcome of parsing a mixed-layout statement file.
type MixedResult struct {
	// MetadataLines are the raw lines found before the header row.
	MetadataLines []string

	// Headers are the trimmed fields of the header line. Nil when no
	// header line was recognized.
	Headers []string

	// Rows are the transaction lines split into fields and aligned to
	// Headers.
	Rows [][]string
}

// ParseMixedFile parses a statement file whose lines mix free-form metadata,
// a header line and comma-separated transactions.
func ParseMixedFile(path string) (*MixedResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()
	return parseMixed(f)
}

// parseMixed reads line by line rather than through a CSV reader: narration
// fields carry unquoted commas, so the input is not well-formed CSV.
func parseMixed(r io.Reader) (*MixedResult, error) {
	var (
		metadataLines []string
		txLines       []string
		headerLine    string
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if columns.IsHeaderLine(line) {
			headerLine = line
			continue
		}

		if headerLine != "" {
			txLines = append(txLines, line)
		} else if strings.Contains(line, ":") || !strings.Contains(line, ",") {
			metadataLines = append(metadataLines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}

	result := &MixedResult{MetadataLines: metadataLines}
	if headerLine == "" || len(txLines) == 0 {
		return result, nil
	}

	headers := strings.Split(headerLine, ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	result.Headers = headers

	for _, line := range txLines {
		if row, ok := alignFields(strings.Split(line, ","), len(headers)); ok {
			result.Rows = append(result.Rows, row)
		}
	}
	return result, nil
}

// alignFields fits a split transaction line to the header width. Extra
// fields are unquoted commas inside the narration: everything between the
// first field and the trailing fixed columns folds back into one narration
// field. Lines with too few fields are dropped.
func alignFields(parts []string, width int) ([]string, bool) {
	if len(parts) == width {
		return parts, true
	}
	if len(parts) < width || width < 2 {
		return nil, false
	}

	trailing := width - 2
	narration := strings.Join(parts[1:len(parts)-trailing], ",")
	row := make([]string, 0, width)
	row = append(row, parts[0], narration)
	row = append(row, parts[len(parts)-trailing:]...)
	return row, true
}

// ExtractMetadata parses "key: value" lines into statement metadata. Lines
// without a colon are ignored.
func ExtractMetadata(lines []string) *model.Metadata {
	meta := model.NewMetadata()
	for _, line := range lines {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		meta.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return meta
}
