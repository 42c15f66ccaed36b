// Package report assembles the final per-order artifact: it turns grouped
// and aggregated invoice data into layout tables, runs the layout engine,
// and realizes the resulting drawing primitives through a PDF backend. The
// order's source pages are forwarded unchanged as opaque handles.
package report
