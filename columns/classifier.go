package columns

import (
	"strings"

	"github.com/tsawler/bankchunk/model"
)

// rolePattern pairs a column role with the header keywords that select it.
type rolePattern struct {
	role     model.Role
	keywords []string
}

// rolePatterns is the classification table. Order matters: Classify returns
// the first role whose keyword list matches, so "value dt" resolves to
// RoleDate even though RoleValueDate lists it too.
var rolePatterns = []rolePattern{
	{model.RoleDate, []string{"date", "tran date", "value dt", "txn date", "transaction date", "value date"}},
	{model.RoleNarration, []string{"narration", "particulars", "description", "details", "transaction details"}},
	{model.RoleReference, []string{"chq", "cheque", "ref", "chq no", "chq/ref", "reference", "chq./ref.no."}},
	{model.RoleDebit, []string{"debit", "withdrawal", "dr", "withdrawal amt", "amount debited", "withdrawal amt."}},
	{model.RoleCredit, []string{"credit", "deposit", "cr", "deposit amt", "amount credited", "deposit amt."}},
	{model.RoleBalance, []string{"balance", "closing", "closing balance", "available balance"}},
	{model.RoleInit, []string{"init", "br", "branch"}},
	{model.RoleValueDate, []string{"value dt", "value date", "valuedt"}},
}

// Classify maps a raw header cell to a canonical column role. The header is
// lowercased and trimmed, then tested against each role's keyword list in
// declaration order; a keyword matches when it occurs anywhere in the
// normalized text. Returns RoleUnknown when nothing matches.
func Classify(header string) model.Role {
	norm := strings.ToLower(strings.TrimSpace(header))
	if norm == "" {
		return model.RoleUnknown
	}
	for _, p := range rolePatterns {
		for _, kw := range p.keywords {
			if strings.Contains(norm, kw) {
				return p.role
			}
		}
	}
	return model.RoleUnknown
}
