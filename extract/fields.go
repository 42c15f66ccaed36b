package extract

import (
	"regexp"
	"strings"
)

// Field names produced by Fields. Callers supply defaults for fields that
// did not match; absence from the result map is the only "no match" signal.
const (
	FieldOrderNumber   = "order_number"
	FieldHauler        = "hauler"
	FieldInvoiceNumber = "invoice_number"
	FieldClientName    = "client_name"
	FieldLegalName     = "legal_name"
	FieldDistrict      = "district"
	FieldSalesperson   = "salesperson"
	FieldTerm          = "term"
	FieldPaymentMethod = "payment_method"
	FieldSaleType      = "sale_type"
	FieldAmountDue     = "amount_due"
	FieldTaxID         = "tax_id"
	FieldClientCode    = "client_code"
)

type fieldPattern struct {
	name string
	re   *regexp.Regexp
}

// fieldPatterns is the label protocol. Patterns are case-insensitive,
// tolerate an optional trailing colon or "Nº" marker after the label, and
// capture up to the end of the line. Compiled once; read-only afterwards.
// orderLabelRe locates the order label. The invoice pattern below matches
// any standalone "Nº <digits>", so the order label's own "Nº" marker and
// value must be masked out of the span before invoice-number extraction.
var orderLabelRe = regexp.MustCompile(`(?i)orden\s+de\s+transporte\s*(?:n[º°o]\.?)?\s*:?\s*([^\n]+)`)

var fieldPatterns = []fieldPattern{
	{FieldOrderNumber, orderLabelRe},
	{FieldHauler, regexp.MustCompile(`(?i)fletero\s*:?\s*([^\n]+)`)},
	{FieldInvoiceNumber, regexp.MustCompile(`(?i)\bn[º°]\s*:?\s*([0-9][0-9-]*)`)},
	{FieldClientName, regexp.MustCompile(`(?i)se[ñn]or(?:es|\s*\(\s*es\s*\))?\s*\.?\s*:?\s*([^\n]+)`)},
	{FieldLegalName, regexp.MustCompile(`(?i)raz[óo]n\s+social\s*:?\s*([^\n]+)`)},
	{FieldDistrict, regexp.MustCompile(`(?i)distrito\s*:?\s*([^\n]+)`)},
	{FieldSalesperson, regexp.MustCompile(`(?i)vendedor\s*:?\s*([^\n]+)`)},
	{FieldTerm, regexp.MustCompile(`(?i)plazo\s*:?\s*([^\n]+)`)},
	{FieldPaymentMethod, regexp.MustCompile(`(?i)forma\s+de\s+pago\s*:?\s*([^\n]+)`)},
	{FieldSaleType, regexp.MustCompile(`(?i)tipo\s+de\s+venta\s*:?\s*([^\n]+)`)},
	{FieldAmountDue, regexp.MustCompile(`(?i)total\s+a\s+pagar\s*:?\s*([^\n]+)`)},
	{FieldTaxID, regexp.MustCompile(`(?i)\b(?:ruc|c\.?i\.?)\s*(?:n[º°o]\.?)?\s*:?\s*([0-9][0-9.\-]*)`)},
	{FieldClientCode, regexp.MustCompile(`(?i)\bc[óo]d(?:igo)?\.?\s*(?:de\s+)?cliente\s*:?\s*([^\n]+)`)},
}

// Fields applies the label protocol to one text span and returns the fields
// that matched. Only the first match per field is taken; captured values are
// cut at the first newline and trimmed of surrounding whitespace. A value
// that trims to nothing counts as no match.
func Fields(span string) map[string]string {
	fields := make(map[string]string)
	invoiceSpan := maskOrderLabel(span)
	for _, fp := range fieldPatterns {
		target := span
		if fp.name == FieldInvoiceNumber {
			target = invoiceSpan
		}
		m := fp.re.FindStringSubmatch(target)
		if m == nil {
			continue
		}
		value := m[1]
		if i := strings.IndexByte(value, '\n'); i >= 0 {
			value = value[:i]
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		fields[fp.name] = value
	}
	return fields
}

// maskOrderLabel blanks the order-label line so its "Nº" marker cannot be
// read back as an invoice number. Newlines are preserved to keep line
// structure intact for the remaining patterns.
func maskOrderLabel(span string) string {
	loc := orderLabelRe.FindStringIndex(span)
	if loc == nil {
		return span
	}
	b := []byte(span)
	for i := loc[0]; i < loc[1]; i++ {
		if b[i] != '\n' {
			b[i] = ' '
		}
	}
	return string(b)
}
