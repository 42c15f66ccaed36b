package layout

// Op is one text drawing primitive. X and Y position the text baseline
// origin; Width is the cell width available for alignment. A backend draws
// right-aligned text flush to X+Width and everything else at X.
type Op struct {
	Text       string
	X, Y       float64
	Width      float64
	Bold       bool
	AlignRight bool
}

// Page is one batch of drawing primitives. The boundary between consecutive
// pages is the page-break marker: a backend starts a fresh page per batch.
type Page struct {
	Ops []Op
}

// Column defines one table column: the row-map key it reads, the header
// label it displays, and its alignment. By convention the last column is
// the amount column and is right-aligned.
type Column struct {
	Name       string
	Title      string
	AlignRight bool
}

// Row is one table row: display text per column name, plus the emphasis
// flag computed upstream. The engine never re-derives emphasis.
type Row struct {
	Cells map[string]string
	Bold  bool
}

// Table is the complete layout input for one order's report.
type Table struct {
	Title   string
	Columns []Column
	Rows    []Row
	Summary *Summary
}

// ConditionLine is one sale-condition subtotal line of the summary block.
type ConditionLine struct {
	SaleCondition string
	Subtotal      string
}

// SummaryLine is one (term, payment method, sale type) subtotal line,
// rendered indented beneath its sale-condition line.
type SummaryLine struct {
	SaleCondition string
	Term          string
	PaymentMethod string
	SaleType      string
	Subtotal      string
}

// Summary is the multi-level totals block rendered after the table rows.
type Summary struct {
	Title      string
	Conditions []ConditionLine
	Lines      []SummaryLine
	GrandTotal string
}
