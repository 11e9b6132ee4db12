package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/tsawler/bankchunk/columns"
	"github.com/tsawler/bankchunk/model"
)

// metadataScanRows bounds how deep ReadFallback looks for metadata lines.
const metadataScanRows = 10

// preferredSheets are sheet names tried, in order, before falling back to
// the workbook's first sheet.
var preferredSheets = []string{"transactions", "statement", "data", "sheet1"}

// headerHints mark a row as the start of tabular content during the
// metadata scan.
var headerHints = []string{"date", "narration", "debit", "credit"}

// LoadTable reads the raw cell grid of a statement file. Modern workbooks
// are read through excelize, legacy BIFF workbooks through a dedicated .xls
// reader; anything else is treated as CSV.
func LoadTable(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadExcel(path)
	case ".xls":
		return loadLegacyExcel(path)
	default:
		return loadCSV(path)
	}
}

func loadExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := findStatementSheet(f)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	grid, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	return grid, nil
}

func findStatementSheet(f *excelize.File) string {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ""
	}
	for _, preferred := range preferredSheets {
		for _, sheet := range sheets {
			if strings.EqualFold(sheet, preferred) {
				return sheet
			}
		}
	}
	return sheets[0]
}

// loadLegacyExcel reads a BIFF (pre-2007) workbook. excelize only speaks
// the OOXML container, so .xls goes through a dedicated reader. Like the
// CSV path it reads the first sheet only.
func loadLegacyExcel(path string) ([][]string, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	grid := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol()+1)
		for j := 0; j <= row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func loadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	grid, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return grid, nil
}

// ReadFallback loads a statement file without assuming the mixed line
// layout. The first non-blank row becomes the header; metadata lines mixed
// into the top of the data are peeled off into statement metadata.
func ReadFallback(path string) (*model.Metadata, []string, [][]string, error) {
	grid, err := LoadTable(path)
	if err != nil {
		return nil, nil, nil, err
	}

	var rows [][]string
	for _, row := range grid {
		if countNonBlank(row) > 0 {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, nil, nil, fmt.Errorf("statement file is empty")
	}

	headers := columns.CleanHeaders(rows[0])
	data := rows[1:]

	var metaLines []string
	startIdx := 0
	for i := 0; i < len(data) && i < metadataScanRows; i++ {
		rowStr := joinNonBlank(data[i])
		if strings.Contains(rowStr, ":") && !strings.Contains(rowStr, ",") {
			metaLines = append(metaLines, rowStr)
			startIdx = i + 1
		} else if containsAny(strings.ToLower(rowStr), headerHints) {
			break
		}
	}

	meta := model.NewMetadata()
	if len(metaLines) > 0 {
		meta = ExtractMetadata(metaLines)
		data = data[startIdx:]
	}
	return meta, headers, data, nil
}

func countNonBlank(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}

func joinNonBlank(row []string) string {
	var parts []string
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			parts = append(parts, cell)
		}
	}
	return strings.Join(parts, " ")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
