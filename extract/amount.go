package extract

import (
	"strings"

	"github.com/shopspring/decimal"
)

// amountCleaner strips currency markers and spacing from amount strings
// before numeric conversion.
var amountCleaner = strings.NewReplacer(
	"₲", "",
	"Gs.", "",
	"GS.", "",
	"Gs", "",
	"gs", "",
	"$", "",
	" ", "",
	" ", "",
	"\t", "",
)

// Amount converts a locale-formatted amount string ("1.250.000,50") into a
// non-negative decimal. Thousands dots are dropped and a single decimal
// comma becomes a decimal point. The boolean reports whether the string
// converted; a failed conversion resolves to zero, never an error. Negative
// values clamp to zero.
func Amount(raw string) (decimal.Decimal, bool) {
	s := amountCleaner.Replace(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ".", "")
	if strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if d.IsNegative() {
		return decimal.Zero, true
	}
	return d, true
}
