// Package model defines the data model shared by the processing pipeline:
// transport orders, invoice records, client groups, subtotal aggregates,
// and the warning type surfaced alongside results.
//
// The segmenter is the only writer of Order and InvoiceRecord values; the
// grouping and layout stages read and reorganize but never mutate them.
package model
