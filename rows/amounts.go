package rows

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a numeric cell after stripping thousands separators and
// embedded whitespace. The second return is false for empty or non-numeric
// values.
func ParseAmount(val string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(val)
	if s == "" {
		return decimal.Decimal{}, false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// IsNumericAmount reports whether the cell parses as a numeric amount.
func IsNumericAmount(val string) bool {
	_, ok := ParseAmount(val)
	return ok
}

// CleanValue trims a cell value. The second return is false when the value
// is empty or whitespace-only and should render as the null marker.
func CleanValue(val string) (string, bool) {
	t := strings.TrimSpace(val)
	if t == "" {
		return "", false
	}
	return t, true
}
