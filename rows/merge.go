package rows

import (
	"strings"

	"github.com/tsawler/bankchunk/model"
)

// SplitMultilineCells expands every row containing an embedded line break
// into one row per line: each cell is split on line breaks, shorter cells
// are right-padded with empty strings to the row's maximum line count, and
// reconstructed rows that come out entirely empty are dropped. Rows without
// line breaks pass through unchanged.
func SplitMultilineCells(table [][]string) [][]string {
	var out [][]string
	for _, row := range table {
		if !hasLineBreak(row) {
			out = append(out, row)
			continue
		}

		split := make([][]string, len(row))
		maxLines := 0
		for j, cell := range row {
			if strings.TrimSpace(cell) == "" {
				split[j] = []string{""}
				continue
			}
			var parts []string
			for _, p := range strings.Split(cell, "\n") {
				if t := strings.TrimSpace(p); t != "" {
					parts = append(parts, t)
				}
			}
			if len(parts) == 0 {
				parts = []string{""}
			}
			split[j] = parts
			if len(parts) > maxLines {
				maxLines = len(parts)
			}
		}

		for i := 0; i < maxLines; i++ {
			sub := make([]string, len(row))
			empty := true
			for j := range split {
				if i < len(split[j]) {
					sub[j] = split[j][i]
				}
				if strings.TrimSpace(sub[j]) != "" {
					empty = false
				}
			}
			if !empty {
				out = append(out, sub)
			}
		}
	}
	return out
}

// MergeContinuationRows folds each continuation row's narration text into
// the narration of the previous retained row and drops the continuation.
// Chained continuations accumulate onto the same transaction row. A
// continuation appearing before any retained row is kept as-is.
func MergeContinuationRows(table [][]string, cm model.ColumnMap) [][]string {
	narrIdx := cm.IndexOrDefault(model.RoleNarration, 1)
	var out [][]string
	for _, row := range table {
		if len(out) > 0 && IsContinuationRow(row, cm) && narrIdx < len(row) {
			prev := out[len(out)-1]
			if narrIdx < len(prev) {
				cont := strings.TrimSpace(row[narrIdx])
				if strings.TrimSpace(prev[narrIdx]) == "" {
					prev[narrIdx] = cont
				} else {
					prev[narrIdx] = prev[narrIdx] + " " + cont
				}
				continue
			}
		}
		copied := make([]string, len(row))
		copy(copied, row)
		out = append(out, copied)
	}
	return out
}

// ReconcileDebitCredit resolves rows where both the debit and credit cells
// hold non-zero amounts by keeping the larger value and clearing the other.
// It is a no-op when either role is unmapped or the table is empty.
func ReconcileDebitCredit(table [][]string, cm model.ColumnMap) {
	debitIdx, okD := cm.Index(model.RoleDebit)
	creditIdx, okC := cm.Index(model.RoleCredit)
	if !okD || !okC || len(table) == 0 {
		return
	}
	for _, row := range table {
		if debitIdx >= len(row) || creditIdx >= len(row) {
			continue
		}
		debit, ok := ParseAmount(row[debitIdx])
		if !ok || debit.IsZero() {
			continue
		}
		credit, ok := ParseAmount(row[creditIdx])
		if !ok || credit.IsZero() {
			continue
		}
		if credit.GreaterThan(debit) {
			row[debitIdx] = ""
		} else {
			row[creditIdx] = ""
		}
	}
}

func hasLineBreak(row []string) bool {
	for _, cell := range row {
		if strings.Contains(cell, "\n") {
			return true
		}
	}
	return false
}
