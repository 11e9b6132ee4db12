package model

// Table is a normalized transaction table: ordered rows of cells aligned to
// a canonical header list, with a column map for role-based access.
type Table struct {
	Headers []string
	Map     ColumnMap
	Rows    [][]string
}

// NewTable creates an empty table with the given headers and column map.
func NewTable(headers []string, m ColumnMap) *Table {
	return &Table{Headers: headers, Map: m}
}

// AppendRow adds a row, padding or truncating it to the header length so
// every stored row stays aligned to the schema.
func (t *Table) AppendRow(row []string) {
	fitted := make([]string, len(t.Headers))
	copy(fitted, row)
	t.Rows = append(t.Rows, fitted)
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Cell returns the value of the role's column in the given row. The second
// return is false when the role is unmapped or the indices are out of range.
func (t *Table) Cell(row int, role Role) (string, bool) {
	idx, ok := t.Map.Index(role)
	if !ok || row < 0 || row >= len(t.Rows) || idx >= len(t.Rows[row]) {
		return "", false
	}
	return t.Rows[row][idx], true
}

// SetCell stores a value in the role's column of the given row. It reports
// whether the write happened.
func (t *Table) SetCell(row int, role Role, val string) bool {
	idx, ok := t.Map.Index(role)
	if !ok || row < 0 || row >= len(t.Rows) || idx >= len(t.Rows[row]) {
		return false
	}
	t.Rows[row][idx] = val
	return true
}
