// Package segment splits a flat sequence of page texts into discrete
// transport orders and invoice records. Boundary detection is stateful and
// order-sensitive: pages must be walked in document order.
package segment

import (
	"fmt"

	"github.com/aquinode91-creator/procesador-pdf/extract"
	"github.com/aquinode91-creator/procesador-pdf/model"
)

// Result holds the orders emitted by one segmentation run together with the
// non-fatal warnings accumulated along the way. A document with no
// detectable order boundaries yields an empty, non-nil Result.
type Result struct {
	Orders   []*model.Order
	Warnings []model.Warning
}

// Empty reports whether no orders were detected anywhere in the input.
func (r *Result) Empty() bool {
	return len(r.Orders) == 0
}

// Segmenter walks page texts in document order, detects order and invoice
// boundaries via the extract field protocol, and emits orders with their
// invoice records and source pages. The zero value is ready to use; each
// call to Segment runs with private state.
type Segmenter struct{}

// New returns a Segmenter.
func New() *Segmenter {
	return &Segmenter{}
}

// Segment processes the ordered page texts and returns the detected orders.
// It never fails: malformed pages contribute no fields, and an input with no
// order labels at all produces an empty Result carrying a WarnNoOrders
// warning.
func (s *Segmenter) Segment(pages []string) *Result {
	run := &segmentRun{}
	for i, text := range pages {
		run.page(i, text)
	}
	run.flush()

	result := &Result{Orders: run.orders, Warnings: run.warnings}
	if result.Empty() {
		result.Warnings = append(result.Warnings, model.Warning{
			Code:    model.WarnNoOrders,
			Page:    -1,
			Message: "no se detectaron órdenes de transporte en el documento",
		})
	}
	return result
}

// segmentRun is the boundary state machine for one document: the currently
// open order, the invoice numbers already recorded for it, and the orders
// flushed so far.
type segmentRun struct {
	current  *model.Order
	seen     map[string]struct{}
	orders   []*model.Order
	warnings []model.Warning
}

func (r *segmentRun) page(index int, text string) {
	fields := extract.Fields(text)

	// An order label whose value differs from the open order's identifier
	// closes the open order and starts a new one. An identical value is a
	// continuation, never a new order.
	if id, ok := fields[extract.FieldOrderNumber]; ok {
		if r.current == nil || id != r.current.OrderNumber {
			r.flush()
			hauler := fields[extract.FieldHauler]
			if hauler == "" {
				hauler = model.UnspecifiedHauler
			}
			r.current = &model.Order{OrderNumber: id, Hauler: hauler}
			r.seen = make(map[string]struct{})
		}
	}

	// Pages seen before the first order boundary are discarded.
	if r.current == nil {
		return
	}
	r.current.Pages = append(r.current.Pages, model.SourcePage{Index: index, Text: text})

	number, ok := fields[extract.FieldInvoiceNumber]
	if !ok {
		return
	}
	if _, dup := r.seen[number]; dup {
		return
	}
	r.seen[number] = struct{}{}
	r.current.Invoices = append(r.current.Invoices, r.buildRecord(index, number, fields))
}

// buildRecord creates an invoice record from the current page's field map,
// filling defaults and fixing the derived classifications.
func (r *segmentRun) buildRecord(pageIndex int, number string, fields map[string]string) *model.InvoiceRecord {
	rec := model.NewInvoiceRecord(number)

	assign := func(dst *string, field string) {
		if v, ok := fields[field]; ok {
			*dst = v
		}
	}
	assign(&rec.ClientName, extract.FieldClientName)
	assign(&rec.LegalName, extract.FieldLegalName)
	assign(&rec.District, extract.FieldDistrict)
	assign(&rec.Salesperson, extract.FieldSalesperson)
	assign(&rec.Term, extract.FieldTerm)
	assign(&rec.PaymentMethod, extract.FieldPaymentMethod)
	assign(&rec.ClientCode, extract.FieldClientCode)
	assign(&rec.TaxID, extract.FieldTaxID)

	if raw, ok := fields[extract.FieldAmountDue]; ok {
		amount, parsed := extract.Amount(raw)
		rec.AmountDue = amount
		if !parsed {
			r.warnings = append(r.warnings, model.Warning{
				Code:    model.WarnAmountParse,
				Page:    pageIndex,
				Message: fmt.Sprintf("factura %s: monto %q no convertible, se registró cero", number, raw),
			})
		}
	}

	rec.SaleCondition = saleCondition(rec.Term)
	rec.SaleType = saleType(fields[extract.FieldSaleType], rec)
	return rec
}

// saleCondition classifies the payment term: any mention of "contado" means
// a cash sale, everything else is credit.
func saleCondition(term string) string {
	if extract.ContainsToken(term, "contado") {
		return model.SaleConditionCash
	}
	return model.SaleConditionCredit
}

// saleType resolves the sale classification. An explicitly captured
// "Tipo de Venta" value (such as "Reposición") always wins; otherwise a zero
// amount or a "Sin Cargo" payment method marks a no-charge sale.
func saleType(explicit string, rec *model.InvoiceRecord) string {
	if explicit != "" {
		return explicit
	}
	if rec.AmountDue.IsZero() || extract.EqualsToken(rec.PaymentMethod, model.SaleTypeNoCharge) {
		return model.SaleTypeNoCharge
	}
	return model.SaleTypeRegular
}

// flush emits the open order. Orders with neither invoices nor pages are
// discarded as spurious boundary matches.
func (r *segmentRun) flush() {
	if r.current == nil {
		return
	}
	if len(r.current.Invoices) > 0 || len(r.current.Pages) > 0 {
		r.orders = append(r.orders, r.current)
	}
	r.current = nil
	r.seen = nil
}
