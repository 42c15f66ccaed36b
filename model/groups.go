package model

import "github.com/shopspring/decimal"

// ClientGroup holds the invoices of one order that resolve to the same
// client identity, in first-seen order. Seq is the client's running sequence
// number, assigned in the order groups are first encountered, starting at 1.
type ClientGroup struct {
	Key      string
	Seq      int
	Invoices []*InvoiceRecord
}

// Total returns the summed amount due over the group's invoices.
func (g *ClientGroup) Total() decimal.Decimal {
	var sum decimal.Decimal
	for _, inv := range g.Invoices {
		sum = sum.Add(inv.AmountDue)
	}
	return sum
}

// BucketKey identifies one subtotal bucket within an order.
type BucketKey struct {
	SaleCondition string
	Term          string
	PaymentMethod string
	SaleType      string
}

// SubtotalBucket accumulates the amount due over all invoices of one order
// sharing the same (condition, term, payment method, sale type) tuple.
type SubtotalBucket struct {
	Key      BucketKey
	Subtotal decimal.Decimal
}

// ConditionSubtotal is the sum over all buckets sharing one sale condition.
type ConditionSubtotal struct {
	SaleCondition string
	Subtotal      decimal.Decimal
}

// OrderTotals is the aggregate view of one order: subtotal buckets and
// per-condition subtotals in first-seen order, plus the grand total over
// every invoice of the order.
type OrderTotals struct {
	Buckets     []SubtotalBucket
	ByCondition []ConditionSubtotal
	GrandTotal  decimal.Decimal
}
