package model

// Role identifies the semantic meaning of a statement column.
type Role int

const (
	// RoleUnknown is returned for headers that match no known column type.
	RoleUnknown Role = iota
	// RoleDate is the transaction date column.
	RoleDate
	// RoleNarration is the free-text description column.
	RoleNarration
	// RoleReference is the cheque/reference number column.
	RoleReference
	// RoleDebit is the withdrawal amount column.
	RoleDebit
	// RoleCredit is the deposit amount column.
	RoleCredit
	// RoleBalance is the running balance column.
	RoleBalance
	// RoleInit is the initiating branch column.
	RoleInit
	// RoleValueDate is the value date column.
	RoleValueDate
)

// String returns a human-readable representation of the role.
func (r Role) String() string {
	switch r {
	case RoleDate:
		return "date"
	case RoleNarration:
		return "narration"
	case RoleReference:
		return "reference"
	case RoleDebit:
		return "debit"
	case RoleCredit:
		return "credit"
	case RoleBalance:
		return "balance"
	case RoleInit:
		return "init"
	case RoleValueDate:
		return "value_date"
	default:
		return "unknown"
	}
}

// ColumnMap records which column index carries each role. At most one index
// is held per role; the first recording wins.
type ColumnMap map[Role]int

// Record stores idx for role unless the role is already mapped.
func (m ColumnMap) Record(role Role, idx int) {
	if _, ok := m[role]; !ok {
		m[role] = idx
	}
}

// Index returns the column index mapped to role, if any.
func (m ColumnMap) Index(role Role) (int, bool) {
	idx, ok := m[role]
	return idx, ok
}

// IndexOrDefault returns the column index mapped to role, or def when the
// role is unmapped.
func (m ColumnMap) IndexOrDefault(role Role, def int) int {
	if idx, ok := m[role]; ok {
		return idx
	}
	return def
}
