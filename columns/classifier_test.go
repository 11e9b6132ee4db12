package columns

import (
	"testing"

	"github.com/tsawler/bankchunk/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		header string
		want   model.Role
	}{
		{"Date", model.RoleDate},
		{"  Txn Date  ", model.RoleDate},
		{"Transaction Date", model.RoleDate},
		{"Narration", model.RoleNarration},
		{"PARTICULARS", model.RoleNarration},
		{"Transaction Details", model.RoleNarration},
		{"Chq./Ref.No.", model.RoleReference},
		{"Cheque Number", model.RoleReference},
		{"Withdrawal Amt.", model.RoleDebit},
		{"Amount Debited", model.RoleDebit},
		{"Deposit Amt.", model.RoleCredit},
		{"Closing Balance", model.RoleBalance},
		{"Available Balance", model.RoleBalance},
		{"Init/Br", model.RoleInit},
		{"Serial No", model.RoleUnknown},
		{"", model.RoleUnknown},
		{"   ", model.RoleUnknown},
	}
	for _, tt := range tests {
		if got := Classify(tt.header); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

// Declaration order wins over best match: "value dt" appears in both the
// date and value_date keyword lists, and date is declared first.
func TestClassify_DeclarationOrderPriority(t *testing.T) {
	if got := Classify("Value Dt"); got != model.RoleDate {
		t.Errorf("Classify(Value Dt) = %v, want RoleDate (earlier declaration wins)", got)
	}
	// "dr" is a debit keyword and a substring of many headers; reference's
	// "ref" is declared before debit's "dr".
	if got := Classify("Ref / Dr No"); got != model.RoleReference {
		t.Errorf("Classify(Ref / Dr No) = %v, want RoleReference", got)
	}
}

func TestIsHeaderLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Date,Narration,Withdrawal,Deposit,Balance", true},
		{"DATE | NARRATION | BALANCE", true},
		{"Date,Amount", false},
		{"Opening balance as on date", false}, // only two indicators
		{"", false},
	}
	for _, tt := range tests {
		if got := IsHeaderLine(tt.line); got != tt.want {
			t.Errorf("IsHeaderLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIsHeaderCells(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"all known roles", []string{"Date", "Narration", "Debit", "Credit", "Balance"}, true},
		{"exactly 40 percent", []string{"Date", "Narration", "x", "y", "z"}, true},
		{"below threshold", []string{"Date", "a", "b", "c", "d", "e"}, false},
		{"empty row", nil, false},
		{"all empty cells", []string{"", "", ""}, false},
	}
	for _, tt := range tests {
		if got := IsHeaderCells(tt.row); got != tt.want {
			t.Errorf("%s: IsHeaderCells(%v) = %v, want %v", tt.name, tt.row, got, tt.want)
		}
	}
}

func TestFindHeaderRow(t *testing.T) {
	grid := [][]string{
		{"HDFC Bank Statement", "", ""},
		{"Account:", "12345", ""},
		{"Date", "Narration", "Chq/Ref", "Debit", "Credit", "Balance"},
		{"01/01/2024", "ATM WDL", "", "500.00", "", "10000.00"},
	}

	idx, headers := FindHeaderRow(grid)
	if idx != 2 {
		t.Errorf("FindHeaderRow() index = %d, want 2", idx)
	}
	if len(headers) != 6 || headers[0] != "Date" || headers[5] != "Balance" {
		t.Errorf("FindHeaderRow() headers = %v", headers)
	}
}

func TestFindHeaderRow_SkipsSparseRows(t *testing.T) {
	// The first row has header-like cells but fewer than three non-empty
	// entries, so it cannot qualify.
	grid := [][]string{
		{"Date", "Balance"},
		{"Date", "Narration", "Debit", "Credit"},
	}
	idx, _ := FindHeaderRow(grid)
	if idx != 1 {
		t.Errorf("FindHeaderRow() index = %d, want 1 (sparse row skipped)", idx)
	}
}

func TestFindHeaderRow_FallbackMostCells(t *testing.T) {
	grid := [][]string{
		{"Statement", "", ""},
		{"one", "two", "three", "four"},
		{"a", "b", ""},
	}
	idx, headers := FindHeaderRow(grid)
	if idx != 1 {
		t.Errorf("FindHeaderRow() fallback index = %d, want 1 (most non-empty cells)", idx)
	}
	if len(headers) != 4 {
		t.Errorf("FindHeaderRow() fallback headers = %v", headers)
	}
}

func TestFindHeaderRow_BlankCellsNamed(t *testing.T) {
	grid := [][]string{
		{"Date", "", "Narration", "Debit", "Credit"},
	}
	_, headers := FindHeaderRow(grid)
	if headers[1] != "Column_1" {
		t.Errorf("blank header cell = %q, want Column_1", headers[1])
	}
}

func TestFindHeaderRow_EmptyGrid(t *testing.T) {
	idx, headers := FindHeaderRow(nil)
	if idx != 0 || headers != nil {
		t.Errorf("FindHeaderRow(nil) = %d, %v; want 0, nil", idx, headers)
	}
}
