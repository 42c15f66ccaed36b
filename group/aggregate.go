package group

import (
	"github.com/aquinode91-creator/procesador-pdf/model"
)

// Aggregate walks all invoices of one order and builds its subtotal
// buckets, per-condition subtotals and grand total. Buckets and condition
// subtotals appear in first-seen order, so identical input ordering always
// produces identical output.
func Aggregate(order *model.Order) *model.OrderTotals {
	totals := &model.OrderTotals{}
	bucketIdx := make(map[model.BucketKey]int)
	condIdx := make(map[string]int)

	for _, inv := range order.Invoices {
		key := model.BucketKey{
			SaleCondition: inv.SaleCondition,
			Term:          inv.Term,
			PaymentMethod: inv.PaymentMethod,
			SaleType:      inv.SaleType,
		}
		bi, ok := bucketIdx[key]
		if !ok {
			bi = len(totals.Buckets)
			bucketIdx[key] = bi
			totals.Buckets = append(totals.Buckets, model.SubtotalBucket{Key: key})
		}
		totals.Buckets[bi].Subtotal = totals.Buckets[bi].Subtotal.Add(inv.AmountDue)

		ci, ok := condIdx[inv.SaleCondition]
		if !ok {
			ci = len(totals.ByCondition)
			condIdx[inv.SaleCondition] = ci
			totals.ByCondition = append(totals.ByCondition, model.ConditionSubtotal{SaleCondition: inv.SaleCondition})
		}
		totals.ByCondition[ci].Subtotal = totals.ByCondition[ci].Subtotal.Add(inv.AmountDue)

		totals.GrandTotal = totals.GrandTotal.Add(inv.AmountDue)
	}
	return totals
}
