package model

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewInvoiceRecordDefaults(t *testing.T) {
	rec := NewInvoiceRecord("001-001-0000123")

	if rec.InvoiceNumber != "001-001-0000123" {
		t.Errorf("InvoiceNumber = %q", rec.InvoiceNumber)
	}
	for name, got := range map[string]string{
		"ClientName":    rec.ClientName,
		"LegalName":     rec.LegalName,
		"District":      rec.District,
		"Salesperson":   rec.Salesperson,
		"Term":          rec.Term,
		"PaymentMethod": rec.PaymentMethod,
		"ClientCode":    rec.ClientCode,
		"TaxID":         rec.TaxID,
	} {
		if got != Unknown {
			t.Errorf("%s = %q, want %q", name, got, Unknown)
		}
	}
	if !rec.AmountDue.IsZero() {
		t.Errorf("AmountDue = %s, want zero", rec.AmountDue)
	}
}

func TestClientGroupTotal(t *testing.T) {
	g := &ClientGroup{
		Key: "C1",
		Invoices: []*InvoiceRecord{
			{InvoiceNumber: "1", AmountDue: decimal.NewFromInt(100)},
			{InvoiceNumber: "2", AmountDue: decimal.NewFromInt(250)},
		},
	}
	if got := g.Total(); !got.Equal(decimal.NewFromInt(350)) {
		t.Errorf("Total = %s, want 350", got)
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Code: WarnAmountParse, Page: 2, Message: "monto no convertible"}
	if got := w.String(); got != "página 3: monto no convertible" {
		t.Errorf("String = %q", got)
	}

	global := Warning{Code: WarnNoOrders, Page: -1, Message: "sin órdenes"}
	if got := global.String(); got != "sin órdenes" {
		t.Errorf("String = %q", got)
	}
}

func TestFormatWarnings(t *testing.T) {
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q, want empty", got)
	}

	out := FormatWarnings([]Warning{
		{Page: -1, Message: "primera"},
		{Page: 0, Message: "segunda"},
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "primera" || lines[1] != "página 1: segunda" {
		t.Errorf("unexpected output: %q", out)
	}
}
