package pdf

import (
	"errors"

	"github.com/tsawler/bankchunk/columns"
	"github.com/tsawler/bankchunk/model"
	"github.com/tsawler/bankchunk/rows"
)

// ErrNoTables is returned by Assemble when no transaction table could be
// recovered from the extracted pages.
var ErrNoTables = errors.New("no transaction tables found")

// Assembler combines table grids from every page into one normalized table.
//
// The header row of the first detected table establishes the statement's
// columns. Tables on later pages reuse those columns, and pages that carry
// transactions as loose text instead of a detected table are reconstructed
// from word positions. Detected tables whose native width disagrees with the
// majority are discarded before the survivors are cleaned and concatenated;
// word-reconstructed grids have no native width to vote with and are kept
// unconditionally.
type Assembler struct{}

// NewAssembler creates an assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// candidate is one table's worth of filtered rows awaiting the width vote.
// Pseudo candidates come from word reconstruction: their column count is a
// word count, not a table width, so they do not participate in the vote.
type candidate struct {
	rows   [][]string
	cols   int
	page   int
	pseudo bool
}

// Assemble builds the combined transaction table from extracted pages.
func (a *Assembler) Assemble(pages []PageContent) (*model.Table, error) {
	var (
		headers    []string
		cm         model.ColumnMap
		candidates []candidate
	)

	for _, page := range pages {
		grids := page.Grids
		fromWords := false
		if len(grids) == 0 && headers != nil {
			// Some statements render later pages without table structure.
			// Rebuild rows from word positions so those transactions are
			// not lost.
			if pseudo := pseudoGrid(page.Words); len(pseudo) > 0 {
				grids = [][][]string{pseudo}
				fromWords = true
			}
		}

		for _, grid := range grids {
			if len(grid) == 0 {
				continue
			}

			var data [][]string
			if headers == nil {
				headerIdx, headerRow := columns.FindHeaderRow(grid)
				data = grid[headerIdx+1:]
				if len(data) == 0 {
					continue
				}
				headers, cm = columns.Normalize(headerRow, columns.VariantPDF)
			} else {
				data = grid
				if columns.IsHeaderCells(grid[0]) {
					data = grid[1:]
				}
			}

			cols := 0
			for _, row := range data {
				if len(row) > cols {
					cols = len(row)
				}
			}

			var kept [][]string
			for _, row := range data {
				fitted := fitRow(row, len(headers))
				if rows.IsFooterRow(fitted) {
					continue
				}
				if rows.IsTransactionRow(fitted, cm) || rows.IsContinuationRow(fitted, cm) {
					kept = append(kept, fitted)
				}
			}
			if len(kept) > 0 {
				candidates = append(candidates, candidate{rows: kept, cols: cols, page: page.Number, pseudo: fromWords})
			}
		}
	}

	if headers == nil || len(candidates) == 0 {
		return nil, ErrNoTables
	}

	target, voted := majorityWidth(candidates)

	combined := model.NewTable(headers, cm)
	for _, c := range candidates {
		if !c.pseudo && voted && c.cols != target {
			continue
		}
		cleaned := rows.SplitMultilineCells(c.rows)
		cleaned = rows.MergeContinuationRows(cleaned, cm)
		rows.ReconcileDebitCredit(cleaned, cm)
		for _, row := range cleaned {
			combined.AppendRow(row)
		}
	}

	if combined.RowCount() == 0 {
		return nil, ErrNoTables
	}
	return combined, nil
}

// pseudoGrid reconstructs table rows from loose words, dropping footer lines.
func pseudoGrid(words []Word) [][]string {
	var grid [][]string
	for _, row := range groupWordRows(words) {
		if rows.IsFooterRow(row) {
			continue
		}
		grid = append(grid, row)
	}
	return grid
}

// majorityWidth returns the most common native column count among detected
// tables. Ties go to the width seen first, keeping page order authoritative.
// The second return is false when no detected table contributed a width.
func majorityWidth(candidates []candidate) (int, bool) {
	counts := make(map[int]int)
	var order []int
	for _, c := range candidates {
		if c.pseudo {
			continue
		}
		if counts[c.cols] == 0 {
			order = append(order, c.cols)
		}
		counts[c.cols]++
	}
	if len(order) == 0 {
		return 0, false
	}

	best := order[0]
	for _, cols := range order[1:] {
		if counts[cols] > counts[best] {
			best = cols
		}
	}
	return best, true
}

// fitRow pads or truncates a row to width cells.
func fitRow(row []string, width int) []string {
	fitted := make([]string, width)
	copy(fitted, row)
	return fitted
}
