package layout

// MeasureFunc returns the rendered width of text in layout units for the
// regular or emphasized font. Backends supply their own measurement (a PDF
// backend wraps its string-width call); tests supply a deterministic fake.
type MeasureFunc func(text string, bold bool) float64

// Config holds the page geometry for table layout. All values are in the
// same units the MeasureFunc reports (points for the PDF backend).
type Config struct {
	// PageWidth is the usable table width; column widths are scaled so
	// their sum equals it.
	PageWidth float64

	// LeftMargin is the x position of the first column.
	LeftMargin float64

	// TitleY is the baseline of the page-1-only title block.
	TitleY float64

	// HeaderY is the y position of the column header row on page 1.
	HeaderY float64

	// ContinuationY is the fixed top offset where the header row is redrawn
	// after a page break. Continuation pages carry no title block.
	ContinuationY float64

	// BottomMargin is the y position rows must not cross.
	BottomMargin float64

	// LineHeight is the height of one wrapped text line.
	LineHeight float64

	// CellPadding is added to measured column widths and to row heights.
	CellPadding float64

	// MinColWidth is the floor a scaled column width is clamped to,
	// avoiding degenerate zero-width columns.
	MinColWidth float64

	// SummaryReserve is the vertical room required before starting the
	// summary block on the current page; with less room remaining the block
	// opens on a fresh page. Distinct from the per-row break threshold so
	// the summary title never strands alone at a page bottom.
	SummaryReserve float64

	// SummaryIndent is the x offset of the per-tuple detail lines beneath
	// each sale-condition line in the summary block.
	SummaryIndent float64
}

// DefaultConfig returns the geometry for an A4 portrait page in points.
func DefaultConfig() Config {
	return Config{
		PageWidth:      515,
		LeftMargin:     40,
		TitleY:         800,
		HeaderY:        770,
		ContinuationY:  800,
		BottomMargin:   40,
		LineHeight:     12,
		CellPadding:    6,
		MinColWidth:    20,
		SummaryReserve: 70,
		SummaryIndent:  14,
	}
}
