package columns

import (
	"fmt"
	"strings"

	"github.com/tsawler/bankchunk/model"
)

// headerIndicators are the substrings whose presence marks a delimited text
// line as a statement header.
var headerIndicators = []string{"date", "narration", "withdrawal", "deposit", "balance"}

// headerScanRows is how many leading grid rows are scanned for a header.
const headerScanRows = 10

// headerFallbackRows is how many leading rows compete in the most-cells
// fallback when no row qualifies as a header.
const headerFallbackRows = 5

// IsHeaderLine reports whether a raw delimited text line looks like a
// statement header: at least three of the fixed indicator substrings occur
// in it.
func IsHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	matches := 0
	for _, ind := range headerIndicators {
		if strings.Contains(lower, ind) {
			matches++
		}
	}
	return matches >= 3
}

// IsHeaderCells reports whether a cell row looks like a header row: the
// number of cells that classify to a known role is at least 40% of the
// non-empty cells.
func IsHeaderCells(row []string) bool {
	if len(row) == 0 {
		return false
	}
	matches := 0
	nonEmpty := 0
	for _, cell := range row {
		if Classify(cell) != model.RoleUnknown {
			matches++
		}
		if cell != "" {
			nonEmpty++
		}
	}
	if nonEmpty == 0 {
		return false
	}
	return float64(matches) >= float64(nonEmpty)*0.4
}

// FindHeaderRow locates the header row within the leading rows of a raw grid
// and returns its index along with cleaned header cells. Rows with fewer
// than three non-empty cells are skipped; the first qualifying row wins.
// When no row qualifies, the row with the most non-empty cells among the
// first few is used (row 0 on ties or an empty grid). Blank header cells are
// replaced with Column_<index>.
func FindHeaderRow(grid [][]string) (int, []string) {
	if len(grid) == 0 {
		return 0, nil
	}

	limit := headerScanRows
	if len(grid) < limit {
		limit = len(grid)
	}
	for idx := 0; idx < limit; idx++ {
		row := grid[idx]
		if len(row) == 0 {
			continue
		}
		if countNonEmpty(row) < 3 {
			continue
		}
		if IsHeaderCells(row) {
			return idx, CleanHeaders(row)
		}
	}

	limit = headerFallbackRows
	if len(grid) < limit {
		limit = len(grid)
	}
	maxCells := 0
	best := 0
	for idx := 0; idx < limit; idx++ {
		if n := countNonEmpty(grid[idx]); n > maxCells {
			maxCells = n
			best = idx
		}
	}
	return best, CleanHeaders(grid[best])
}

// CleanHeaders trims header cells, substituting Column_<index> for blank
// ones.
func CleanHeaders(row []string) []string {
	out := make([]string, len(row))
	for i, h := range row {
		t := strings.TrimSpace(h)
		if t == "" {
			t = fmt.Sprintf("Column_%d", i)
		}
		out[i] = t
	}
	return out
}

func countNonEmpty(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}
