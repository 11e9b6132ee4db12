package pdf

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tsawler/tabula"
	tabmodel "github.com/tsawler/tabula/model"

	"github.com/tsawler/bankchunk/model"
)

// regionMargin widens table bounding boxes when deciding which words belong
// to a table, absorbing slight positioning jitter at region edges.
const regionMargin = 5.0

// Word is a positioned piece of text on a page. Coordinates follow the PDF
// convention: Y grows upward from the bottom of the page.
type Word struct {
	Text   string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// PageContent is everything extracted from one page of a statement.
type PageContent struct {
	// Number is the 1-indexed page number.
	Number int

	// Grids holds the cell text of each detected table, in reading order.
	Grids [][][]string

	// Words are the text fragments that fall outside every table region.
	Words []Word

	// NonTableLines are Words grouped into visual lines, top to bottom.
	NonTableLines []string
}

// Source provides statement content for assembly. The production
// implementation is [TabulaSource]; tests supply literal pages.
type Source interface {
	// Pages returns the extracted content of every page.
	Pages() ([]PageContent, error)

	// RawText returns the plain text of the whole document, used as a
	// last-resort fallback when no table can be assembled.
	RawText() (string, error)
}

// TabulaSource reads a PDF file using the tabula extraction library.
type TabulaSource struct {
	path string
}

// NewTabulaSource creates a source for the PDF at path.
func NewTabulaSource(path string) *TabulaSource {
	return &TabulaSource{path: path}
}

// Pages extracts tables and non-table text from every page of the PDF.
func (s *TabulaSource) Pages() ([]PageContent, error) {
	doc, _, err := tabula.Open(s.path).Document()
	if err != nil {
		return nil, fmt.Errorf("extracting document: %w", err)
	}

	pages := make([]PageContent, 0, len(doc.Pages))
	for _, page := range doc.Pages {
		content := PageContent{Number: page.Number}

		tables := page.ExtractTables()
		for _, table := range tables {
			grid := make([][]string, 0, len(table.Rows))
			for _, row := range table.Rows {
				cells := make([]string, len(row))
				for i, cell := range row {
					cells[i] = cell.Text
				}
				grid = append(grid, cells)
			}
			content.Grids = append(content.Grids, grid)
		}

		for _, frag := range page.RawText {
			if strings.TrimSpace(frag.Text) == "" {
				continue
			}
			if insideAnyTable(frag, tables) {
				continue
			}
			content.Words = append(content.Words, Word{
				Text:   frag.Text,
				X:      frag.BBox.X,
				Y:      frag.BBox.Y,
				Width:  frag.BBox.Width,
				Height: frag.BBox.Height,
			})
		}
		content.NonTableLines = GroupWords(content.Words)

		pages = append(pages, content)
	}
	return pages, nil
}

// RawText extracts the full plain text of the PDF.
func (s *TabulaSource) RawText() (string, error) {
	text, _, err := tabula.Open(s.path).Text()
	if err != nil {
		return "", fmt.Errorf("extracting text: %w", err)
	}
	return text, nil
}

func insideAnyTable(frag tabmodel.TextFragment, tables []*tabmodel.Table) bool {
	for _, t := range tables {
		b := t.BBox
		if frag.BBox.X >= b.X-regionMargin &&
			frag.BBox.X+frag.BBox.Width <= b.X+b.Width+regionMargin &&
			frag.BBox.Y >= b.Y-regionMargin &&
			frag.BBox.Y+frag.BBox.Height <= b.Y+b.Height+regionMargin {
			return true
		}
	}
	return false
}

// GroupWords arranges words into visual lines. Words whose top edges round
// to the same tenth of a point share a line; lines run top to bottom and
// words within a line left to right.
func GroupWords(words []Word) []string {
	rows := groupWordRows(words)
	if len(rows) == 0 {
		return nil
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, " ")
	}
	return lines
}

// groupWordRows groups words into rows of cells, one cell per word.
func groupWordRows(words []Word) [][]string {
	if len(words) == 0 {
		return nil
	}

	byTop := make(map[float64][]Word)
	for _, w := range words {
		top := math.Round((w.Y+w.Height)*10) / 10
		byTop[top] = append(byTop[top], w)
	}

	tops := make([]float64, 0, len(byTop))
	for top := range byTop {
		tops = append(tops, top)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(tops)))

	rows := make([][]string, 0, len(tops))
	for _, top := range tops {
		group := byTop[top]
		sort.Slice(group, func(i, j int) bool { return group[i].X < group[j].X })
		cells := make([]string, len(group))
		for i, w := range group {
			cells[i] = w.Text
		}
		rows = append(rows, cells)
	}
	return rows
}

// PageMetadata collects the non-table lines of each page into statement
// metadata, keyed page_1, page_2 and so on in page order.
func PageMetadata(pages []PageContent) *model.Metadata {
	meta := model.NewMetadata()
	for _, page := range pages {
		if len(page.NonTableLines) == 0 {
			continue
		}
		key := fmt.Sprintf("page_%d", page.Number)
		meta.Set(key, strings.Join(page.NonTableLines, "; "))
	}
	return meta
}
