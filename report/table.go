package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aquinode91-creator/procesador-pdf/layout"
	"github.com/aquinode91-creator/procesador-pdf/model"
)

// Column names of the order report table.
const (
	colSeq         = "seq"
	colInvoice     = "invoice"
	colClient      = "client"
	colDistrict    = "district"
	colSalesperson = "salesperson"
	colTerm        = "term"
	colPayment     = "payment"
	colSaleType    = "sale_type"
	colAmount      = "amount"
)

// Columns returns the report's column definitions. The amount column is
// last and right-aligned.
func Columns() []layout.Column {
	return []layout.Column{
		{Name: colSeq, Title: "Nº"},
		{Name: colInvoice, Title: "Factura"},
		{Name: colClient, Title: "Señor(es)"},
		{Name: colDistrict, Title: "Distrito"},
		{Name: colSalesperson, Title: "Vendedor"},
		{Name: colTerm, Title: "Plazo"},
		{Name: colPayment, Title: "Forma de Pago"},
		{Name: colSaleType, Title: "Tipo Venta"},
		{Name: colAmount, Title: "Total a Pagar", AlignRight: true},
	}
}

// BuildTable turns one order's grouped and aggregated data into the layout
// input. The first invoice of each client group carries the group's
// sequence number; the rest carry a blank marker.
func BuildTable(order *model.Order, groups []*model.ClientGroup, totals *model.OrderTotals) layout.Table {
	var rows []layout.Row
	for _, g := range groups {
		for i, inv := range g.Invoices {
			seq := ""
			if i == 0 {
				seq = strconv.Itoa(g.Seq)
			}
			rows = append(rows, layout.Row{
				Cells: map[string]string{
					colSeq:         seq,
					colInvoice:     inv.InvoiceNumber,
					colClient:      inv.ClientName,
					colDistrict:    inv.District,
					colSalesperson: inv.Salesperson,
					colTerm:        inv.Term,
					colPayment:     inv.PaymentMethod,
					colSaleType:    inv.SaleType,
					colAmount:      FormatAmount(inv.AmountDue),
				},
				Bold: emphasized(inv),
			})
		}
	}

	return layout.Table{
		Title:   fmt.Sprintf("Orden de Transporte %s - Fletero: %s", order.OrderNumber, order.Hauler),
		Columns: Columns(),
		Rows:    rows,
		Summary: buildSummary(totals),
	}
}

// emphasized reports whether a row renders bold: replacement and no-charge
// sale types, or a no-charge payment method.
func emphasized(inv *model.InvoiceRecord) bool {
	return inv.SaleType == model.SaleTypeReplacement ||
		inv.SaleType == model.SaleTypeNoCharge ||
		strings.EqualFold(inv.PaymentMethod, model.SaleTypeNoCharge)
}

func buildSummary(totals *model.OrderTotals) *layout.Summary {
	s := &layout.Summary{
		Title:      "Resumen de Totales",
		GrandTotal: FormatAmount(totals.GrandTotal),
	}
	for _, c := range totals.ByCondition {
		s.Conditions = append(s.Conditions, layout.ConditionLine{
			SaleCondition: c.SaleCondition,
			Subtotal:      FormatAmount(c.Subtotal),
		})
	}
	for _, b := range totals.Buckets {
		s.Lines = append(s.Lines, layout.SummaryLine{
			SaleCondition: b.Key.SaleCondition,
			Term:          b.Key.Term,
			PaymentMethod: b.Key.PaymentMethod,
			SaleType:      b.Key.SaleType,
			Subtotal:      FormatAmount(b.Subtotal),
		})
	}
	return s
}
