package model

import "github.com/shopspring/decimal"

// Unknown is the explicit placeholder for optional invoice fields that were
// not found in the source text. Output records never carry empty fields.
const Unknown = "Desconocido"

// UnspecifiedHauler is the placeholder used when an order page carries no
// "Fletero" label.
const UnspecifiedHauler = "No especificado"

// Sale condition values derived from the payment-term text.
const (
	SaleConditionCash   = "Contado"
	SaleConditionCredit = "Crédito"
)

// Sale type values. Replacement is the explicit value most commonly captured
// from a "Tipo de Venta" label; any other explicitly captured value is kept
// as-is.
const (
	SaleTypeRegular     = "Regular"
	SaleTypeNoCharge    = "Sin Cargo"
	SaleTypeReplacement = "Reposición"
)

// InvoiceRecord is one billable record within a transport order, keyed by
// invoice number. All fields besides InvoiceNumber default to Unknown.
type InvoiceRecord struct {
	InvoiceNumber string // required, unique within its order

	ClientName    string // "Señor(es)" display name
	LegalName     string // "Razón Social"
	District      string
	Salesperson   string
	Term          string // "Plazo"
	PaymentMethod string // "Forma de Pago"

	// Derived classifications, fixed at record creation.
	SaleCondition string // Contado / Crédito
	SaleType      string // Regular / Sin Cargo / explicit captured value

	AmountDue  decimal.Decimal // non-negative
	ClientCode string
	TaxID      string // RUC or C.I.
}

// NewInvoiceRecord creates a record with every optional field set to the
// explicit Unknown marker.
func NewInvoiceRecord(invoiceNumber string) *InvoiceRecord {
	return &InvoiceRecord{
		InvoiceNumber: invoiceNumber,
		ClientName:    Unknown,
		LegalName:     Unknown,
		District:      Unknown,
		Salesperson:   Unknown,
		Term:          Unknown,
		PaymentMethod: Unknown,
		SaleCondition: SaleConditionCredit,
		SaleType:      SaleTypeRegular,
		ClientCode:    Unknown,
		TaxID:         Unknown,
	}
}
