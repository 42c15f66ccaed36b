package layout

import "strings"

// summaryHeader is the column header of the totals block, repeated with a
// continuation marker whenever the block crosses a page break.
const summaryHeader = "Cond. Venta / Plazo / Forma de Pago / Tipo Venta / Subtotal"

// continuationMark is appended to the summary header on continuation pages.
const continuationMark = " (cont.)"

// drawSummary renders the multi-level totals block: one line per sale
// condition, indented tuple lines beneath it, then the grand total. The
// block is pagination-aware and repeats its own header after breaks.
func (r *layoutRun) drawSummary(s *Summary) {
	cfg := r.cfg()
	if r.y-cfg.SummaryReserve < cfg.BottomMargin {
		r.breakPage()
	}
	if s.Title != "" {
		r.summaryText(s.Title, cfg.LeftMargin, true)
	}
	r.summaryText(summaryHeader, cfg.LeftMargin, true)

	for _, cond := range s.Conditions {
		r.summaryPair(cond.SaleCondition, cond.Subtotal, cfg.LeftMargin, true)
		for _, line := range s.Lines {
			if line.SaleCondition != cond.SaleCondition {
				continue
			}
			label := strings.Join([]string{line.Term, line.PaymentMethod, line.SaleType}, " / ")
			r.summaryPair(label, line.Subtotal, cfg.LeftMargin+cfg.SummaryIndent, false)
		}
	}
	r.summaryPair("TOTAL GENERAL", s.GrandTotal, cfg.LeftMargin, true)
}

// summaryBreak opens a continuation page for the totals block. The column
// header line repeats, carrying the continuation marker; the block title
// does not repeat.
func (r *layoutRun) summaryBreak() {
	cfg := r.cfg()
	r.pages = append(r.pages, Page{})
	r.y = cfg.ContinuationY
	r.placeSummaryLine(summaryHeader+continuationMark, "", cfg.LeftMargin, true)
}

// summaryText paginates then places a single full-width summary line.
func (r *layoutRun) summaryText(text string, x float64, bold bool) {
	if r.y-r.cfg().LineHeight < r.cfg().BottomMargin {
		r.summaryBreak()
	}
	r.placeSummaryLine(text, "", x, bold)
}

// summaryPair paginates then places a label with a right-aligned subtotal.
func (r *layoutRun) summaryPair(label, subtotal string, x float64, bold bool) {
	if r.y-r.cfg().LineHeight < r.cfg().BottomMargin {
		r.summaryBreak()
	}
	r.placeSummaryLine(label, subtotal, x, bold)
}

// placeSummaryLine emits one summary line at the current cursor and
// advances it. The subtotal, when present, is right-aligned to the page
// edge.
func (r *layoutRun) placeSummaryLine(label, subtotal string, x float64, bold bool) {
	cfg := r.cfg()
	y := r.y - cfg.LineHeight
	r.emit(Op{Text: label, X: x, Y: y, Width: cfg.PageWidth - (x - cfg.LeftMargin), Bold: bold})
	if subtotal != "" {
		r.emit(Op{
			Text:       subtotal,
			X:          cfg.LeftMargin,
			Y:          y,
			Width:      cfg.PageWidth,
			Bold:       bold,
			AlignRight: true,
		})
	}
	r.y -= cfg.LineHeight
}
