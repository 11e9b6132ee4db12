package columns

import (
	"fmt"
	"strings"

	"github.com/tsawler/bankchunk/model"
)

// Variant selects the canonical label table applied to known roles. The two
// tables differ only in the debit/credit label text.
type Variant int

const (
	// VariantPDF labels debit/credit columns "Debit" and "Credit".
	VariantPDF Variant = iota
	// VariantCSV labels debit/credit columns "Withdrawal" and "Deposit".
	VariantCSV
)

var pdfLabels = map[model.Role]string{
	model.RoleDate:      "Date",
	model.RoleNarration: "Narration",
	model.RoleReference: "Chq/Ref",
	model.RoleDebit:     "Debit",
	model.RoleCredit:    "Credit",
	model.RoleBalance:   "Balance",
	model.RoleInit:      "Init/Br",
	model.RoleValueDate: "ValueDt",
}

var csvLabels = map[model.Role]string{
	model.RoleDate:      "Date",
	model.RoleNarration: "Narration",
	model.RoleReference: "Chq/Ref",
	model.RoleDebit:     "Withdrawal",
	model.RoleCredit:    "Deposit",
	model.RoleBalance:   "Balance",
	model.RoleInit:      "Init/Br",
	model.RoleValueDate: "ValueDt",
}

// Normalize classifies each header, rewrites known roles to their canonical
// label and records the first column index seen per role. Headers that
// classify to an already-mapped role keep their canonical label but are not
// mapped. Unknown headers keep their trimmed text. The returned header list
// is de-duplicated with numeric suffixes in appearance order.
func Normalize(headers []string, variant Variant) ([]string, model.ColumnMap) {
	labels := pdfLabels
	if variant == VariantCSV {
		labels = csvLabels
	}

	out := make([]string, 0, len(headers))
	cm := model.ColumnMap{}
	for i, h := range headers {
		role := Classify(h)
		if role != model.RoleUnknown {
			cm.Record(role, i)
			out = append(out, labels[role])
		} else {
			out = append(out, strings.TrimSpace(h))
		}
	}
	return uniqueHeaders(out), cm
}

// uniqueHeaders appends _1, _2, ... to repeated header text so every entry
// is pairwise distinct.
func uniqueHeaders(headers []string) []string {
	seen := make(map[string]int, len(headers))
	out := make([]string, 0, len(headers))
	for _, h := range headers {
		n, ok := seen[h]
		if !ok {
			seen[h] = 0
			out = append(out, h)
			continue
		}
		n++
		cand := fmt.Sprintf("%s_%d", h, n)
		for {
			if _, clash := seen[cand]; !clash {
				break
			}
			n++
			cand = fmt.Sprintf("%s_%d", h, n)
		}
		seen[h] = n
		seen[cand] = 0
		out = append(out, cand)
	}
	return out
}
