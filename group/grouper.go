// Package group buckets the invoice records of one order by resolved client
// identity and computes the order's subtotal aggregates. It only reads and
// reorganizes records; it never mutates them.
package group

import (
	"github.com/aquinode91-creator/procesador-pdf/model"
)

// Key resolves the grouping identity for one invoice record: the first
// usable value among client code, tax ID, display name and legal name, with
// the invoice number as last resort. The Unknown placeholder does not count
// as a usable value. Resolution is total: the result is never empty because
// an invoice number is always present.
func Key(rec *model.InvoiceRecord) string {
	for _, v := range []string{rec.ClientCode, rec.TaxID, rec.ClientName, rec.LegalName} {
		if v != "" && v != model.Unknown {
			return v
		}
	}
	return rec.InvoiceNumber
}

// ByClient buckets an order's invoices by grouping key, preserving
// first-seen key order across the order and first-seen invoice order within
// each group. Sequence numbers are assigned in group-encounter order,
// starting at 1.
func ByClient(order *model.Order) []*model.ClientGroup {
	index := make(map[string]*model.ClientGroup)
	var groups []*model.ClientGroup
	for _, inv := range order.Invoices {
		k := Key(inv)
		g, ok := index[k]
		if !ok {
			g = &model.ClientGroup{Key: k, Seq: len(groups) + 1}
			index[k] = g
			groups = append(groups, g)
		}
		g.Invoices = append(g.Invoices, inv)
	}
	return groups
}
