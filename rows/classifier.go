package rows

import (
	"strings"

	"github.com/tsawler/bankchunk/model"
)

// amountRoles are the roles whose presence qualifies a row as a transaction.
var amountRoles = []model.Role{model.RoleDebit, model.RoleCredit, model.RoleBalance}

// footerKeywords mark summary, boilerplate and pagination rows that must be
// excluded from the transaction set.
var footerKeywords = []string{
	"total",
	"closing balance",
	"opening balance",
	"registered office",
	"page no",
	"generated on",
	"statement of",
	"legends",
	"branch address",
	"charge breakup",
	"contents of this statement",
	"unless the constituent",
	"deposit insurance",
	"transaction total",
	"end of statement",
}

// IsTransactionRow reports whether a row is a transaction: its date cell is
// non-empty and at least one of the debit, credit or balance cells is
// populated. Debit and credit only count when they parse to a non-zero
// amount; a populated balance counts regardless of its value.
func IsTransactionRow(row []string, cm model.ColumnMap) bool {
	if len(row) == 0 {
		return false
	}
	dateIdx := cm.IndexOrDefault(model.RoleDate, 0)
	if dateIdx >= len(row) || strings.TrimSpace(row[dateIdx]) == "" {
		return false
	}
	for _, role := range amountRoles {
		idx, ok := cm.Index(role)
		if !ok || idx >= len(row) {
			continue
		}
		val := strings.TrimSpace(row[idx])
		if val == "" {
			continue
		}
		if role == model.RoleBalance {
			return true
		}
		if d, ok := ParseAmount(val); ok && !d.IsZero() {
			return true
		}
	}
	return false
}

// IsContinuationRow reports whether a row is overflow text belonging to the
// previous transaction: its date cell is empty, its narration cell is
// non-empty, and none of the debit, credit or balance cells is populated.
func IsContinuationRow(row []string, cm model.ColumnMap) bool {
	if len(row) == 0 {
		return false
	}
	dateIdx := cm.IndexOrDefault(model.RoleDate, 0)
	if dateIdx < len(row) && strings.TrimSpace(row[dateIdx]) != "" {
		return false
	}
	narrIdx := cm.IndexOrDefault(model.RoleNarration, 1)
	if narrIdx >= len(row) || strings.TrimSpace(row[narrIdx]) == "" {
		return false
	}
	for _, role := range amountRoles {
		if idx, ok := cm.Index(role); ok && idx < len(row) && strings.TrimSpace(row[idx]) != "" {
			return false
		}
	}
	return true
}

// IsFooterRow reports whether a row is summary or footer boilerplate: the
// lowercase concatenation of its non-empty cells contains any footer
// keyword.
func IsFooterRow(row []string) bool {
	var parts []string
	for _, cell := range row {
		if cell != "" {
			parts = append(parts, strings.ToLower(cell))
		}
	}
	text := strings.Join(parts, " ")
	for _, kw := range footerKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
