package rows

import (
	"reflect"
	"testing"

	"github.com/tsawler/bankchunk/model"
)

func TestSplitMultilineCells(t *testing.T) {
	table := [][]string{
		{"01/01\n02/01", "A\nB", "", "10\n20", ""},
	}
	got := SplitMultilineCells(table)
	want := [][]string{
		{"01/01", "A", "", "10", ""},
		{"02/01", "B", "", "20", ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitMultilineCells() = %v, want %v", got, want)
	}
}

func TestSplitMultilineCells_PadsShorterCells(t *testing.T) {
	table := [][]string{
		{"01/01", "line one\nline two\nline three", "100"},
	}
	got := SplitMultilineCells(table)
	want := [][]string{
		{"01/01", "line one", "100"},
		{"", "line two", ""},
		{"", "line three", ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitMultilineCells() = %v, want %v", got, want)
	}
}

func TestSplitMultilineCells_PassThrough(t *testing.T) {
	table := [][]string{
		{"01/01", "no breaks here", "100"},
		{"02/01", "also plain", "200"},
	}
	got := SplitMultilineCells(table)
	if !reflect.DeepEqual(got, table) {
		t.Errorf("SplitMultilineCells() modified break-free rows: %v", got)
	}
}

func TestSplitMultilineCells_DropsEmptyReconstructions(t *testing.T) {
	// The second sub-row reconstructs to all-empty cells and is dropped.
	table := [][]string{
		{"01/01\n", "A\n ", "10"},
	}
	got := SplitMultilineCells(table)
	if len(got) != 1 {
		t.Fatalf("SplitMultilineCells() returned %d rows, want 1", len(got))
	}
	if got[0][0] != "01/01" || got[0][1] != "A" {
		t.Errorf("SplitMultilineCells()[0] = %v", got[0])
	}
}

func TestMergeContinuationRows(t *testing.T) {
	cm := model.ColumnMap{
		model.RoleDate:      0,
		model.RoleNarration: 1,
		model.RoleDebit:     2,
		model.RoleCredit:    3,
		model.RoleBalance:   4,
	}
	table := [][]string{
		{"01/01", "Payment to X", "", "", "100"},
		{"", "for invoice 123", "", "", ""},
	}
	got := MergeContinuationRows(table, cm)
	if len(got) != 1 {
		t.Fatalf("MergeContinuationRows() returned %d rows, want 1", len(got))
	}
	if got[0][1] != "Payment to X for invoice 123" {
		t.Errorf("merged narration = %q, want %q", got[0][1], "Payment to X for invoice 123")
	}
}

// Chained continuations all accumulate onto the originating transaction row.
func TestMergeContinuationRows_Chained(t *testing.T) {
	cm := model.ColumnMap{
		model.RoleDate:      0,
		model.RoleNarration: 1,
		model.RoleDebit:     2,
	}
	table := [][]string{
		{"01/01", "NEFT to", "500"},
		{"", "ACME CORP", ""},
		{"", "ref 998877", ""},
		{"02/01", "ATM WDL", "200"},
	}
	got := MergeContinuationRows(table, cm)
	if len(got) != 2 {
		t.Fatalf("MergeContinuationRows() returned %d rows, want 2", len(got))
	}
	if got[0][1] != "NEFT to ACME CORP ref 998877" {
		t.Errorf("merged narration = %q", got[0][1])
	}
	if got[1][1] != "ATM WDL" {
		t.Errorf("second transaction narration = %q, want unchanged", got[1][1])
	}
}

func TestMergeContinuationRows_LeadingContinuationKept(t *testing.T) {
	cm := model.ColumnMap{model.RoleDate: 0, model.RoleNarration: 1}
	table := [][]string{
		{"", "orphan overflow", ""},
		{"01/01", "real txn", ""},
	}
	got := MergeContinuationRows(table, cm)
	if len(got) != 2 {
		t.Fatalf("MergeContinuationRows() returned %d rows, want 2 (leading continuation kept)", len(got))
	}
}

func TestMergeContinuationRows_DoesNotMutateInput(t *testing.T) {
	cm := model.ColumnMap{model.RoleDate: 0, model.RoleNarration: 1}
	table := [][]string{
		{"01/01", "original", ""},
		{"", "extra", ""},
	}
	MergeContinuationRows(table, cm)
	if table[0][1] != "original" {
		t.Errorf("input row mutated: narration = %q", table[0][1])
	}
}

func TestReconcileDebitCredit(t *testing.T) {
	cm := model.ColumnMap{model.RoleDebit: 0, model.RoleCredit: 1}
	table := [][]string{
		{"500.00", "450.00"}, // debit larger: credit cleared
		{"100.00", "250.00"}, // credit larger: debit cleared
		{"300.00", ""},       // no collision
		{"", "75.00"},
	}
	ReconcileDebitCredit(table, cm)

	if table[0][0] != "500.00" || table[0][1] != "" {
		t.Errorf("row 0 = %v, want debit kept and credit cleared", table[0])
	}
	if table[1][0] != "" || table[1][1] != "250.00" {
		t.Errorf("row 1 = %v, want credit kept and debit cleared", table[1])
	}
	if table[2][0] != "300.00" || table[3][1] != "75.00" {
		t.Error("collision-free rows modified")
	}
}

func TestReconcileDebitCredit_NoOpWhenRoleMissing(t *testing.T) {
	cm := model.ColumnMap{model.RoleDebit: 0}
	table := [][]string{{"500.00", "450.00"}}
	ReconcileDebitCredit(table, cm)
	if table[0][1] != "450.00" {
		t.Errorf("table modified without a credit mapping: %v", table[0])
	}
}

func TestReconcileDebitCredit_IgnoresZeroAndNonNumeric(t *testing.T) {
	cm := model.ColumnMap{model.RoleDebit: 0, model.RoleCredit: 1}
	table := [][]string{
		{"0.00", "450.00"},
		{"abc", "450.00"},
	}
	ReconcileDebitCredit(table, cm)
	if table[0][1] != "450.00" || table[1][1] != "450.00" {
		t.Errorf("rows without a true collision were modified: %v", table)
	}
}
