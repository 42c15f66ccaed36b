package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a decimal in guaraní display style: dot thousands
// separators and a comma decimal separator, with no decimals for whole
// amounts ("1250000.5" -> "1.250.000,50").
func FormatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var sb strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(digit)
	}

	out := sb.String()
	if fracPart != "00" {
		out += "," + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
