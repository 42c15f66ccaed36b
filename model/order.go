package model

// SourcePage is an opaque handle to one source page: its position in the
// input sequence and its extracted text. Pages are forwarded unchanged to
// the report assembler.
type SourcePage struct {
	Index int // 0-indexed position in the input sequence
	Text  string
}

// Order is one transport order: the top-level grouping unit, identified by
// an order number and a hauler, carrying its invoice records and the source
// pages it spans.
type Order struct {
	OrderNumber string // "Orden de Transporte"
	Hauler      string // "Fletero", UnspecifiedHauler when absent

	Invoices []*InvoiceRecord // in detection order
	Pages    []SourcePage     // in document order
}

// InvoiceCount returns the number of invoice records in the order.
func (o *Order) InvoiceCount() int {
	return len(o.Invoices)
}

// PageCount returns the number of source pages associated with the order.
func (o *Order) PageCount() int {
	return len(o.Pages)
}
