package layout

// Engine lays out tables against a fixed page geometry. It holds only
// configuration and the measurement function; every Layout call runs with
// private state, so one Engine may serve many tables.
type Engine struct {
	cfg     Config
	measure MeasureFunc
}

// NewEngine creates an engine with the default A4 geometry.
func NewEngine(measure MeasureFunc) *Engine {
	return NewEngineWithConfig(measure, DefaultConfig())
}

// NewEngineWithConfig creates an engine with custom geometry.
func NewEngineWithConfig(measure MeasureFunc, cfg Config) *Engine {
	return &Engine{cfg: cfg, measure: measure}
}

// Layout lays the table out across as many pages as needed and returns the
// drawing primitives per page. Whole rows are never split across pages; the
// column header row is redrawn after every page break.
func (e *Engine) Layout(t Table) []Page {
	run := &layoutRun{
		engine: e,
		table:  t,
		widths: scaleWidths(
			measureWidths(t.Columns, t.Rows, e.measure, e.cfg.CellPadding),
			t.Columns, e.cfg.PageWidth, e.cfg.MinColWidth,
		),
	}
	run.firstPage()
	for _, row := range t.Rows {
		run.drawRow(row)
	}
	if t.Summary != nil {
		run.drawSummary(t.Summary)
	}
	return run.pages
}

// layoutRun is the mutable cursor state of one Layout call.
type layoutRun struct {
	engine *Engine
	table  Table
	widths map[string]float64

	pages []Page
	y     float64
}

func (r *layoutRun) cfg() Config { return r.engine.cfg }

func (r *layoutRun) emit(op Op) {
	last := len(r.pages) - 1
	r.pages[last].Ops = append(r.pages[last].Ops, op)
}

// firstPage opens page 1 with the title block and the column header row.
func (r *layoutRun) firstPage() {
	cfg := r.cfg()
	r.pages = append(r.pages, Page{})
	if r.table.Title != "" {
		r.emit(Op{Text: r.table.Title, X: cfg.LeftMargin, Y: cfg.TitleY, Width: cfg.PageWidth, Bold: true})
	}
	r.y = cfg.HeaderY
	r.drawHeader()
}

// breakPage starts a new page and redraws the column header row at the
// continuation offset, without the title block.
func (r *layoutRun) breakPage() {
	r.pages = append(r.pages, Page{})
	r.y = r.cfg().ContinuationY
	r.drawHeader()
}

func (r *layoutRun) drawHeader() {
	header := Row{Cells: make(map[string]string, len(r.table.Columns)), Bold: true}
	for _, c := range r.table.Columns {
		header.Cells[c.Name] = c.Title
	}
	r.placeRow(header)
}

// drawRow paginates then places one data row.
func (r *layoutRun) drawRow(row Row) {
	if r.y-r.rowHeight(row) < r.cfg().BottomMargin {
		r.breakPage()
	}
	r.placeRow(row)
}

// rowHeight is the wrapped line count across the row's cells times the line
// height, plus padding.
func (r *layoutRun) rowHeight(row Row) float64 {
	cfg := r.cfg()
	maxLines := 1
	for _, c := range r.table.Columns {
		n := len(wrapText(row.Cells[c.Name], r.widths[c.Name], row.Bold, r.engine.measure))
		if n > maxLines {
			maxLines = n
		}
	}
	return float64(maxLines)*cfg.LineHeight + cfg.CellPadding
}

// placeRow emits the row's wrapped cell lines at the current cursor and
// advances the cursor by the row height. It performs no pagination.
func (r *layoutRun) placeRow(row Row) {
	cfg := r.cfg()
	x := cfg.LeftMargin
	maxLines := 1
	for _, c := range r.table.Columns {
		lines := wrapText(row.Cells[c.Name], r.widths[c.Name], row.Bold, r.engine.measure)
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
		for i, line := range lines {
			r.emit(Op{
				Text:       line,
				X:          x,
				Y:          r.y - float64(i+1)*cfg.LineHeight,
				Width:      r.widths[c.Name],
				Bold:       row.Bold,
				AlignRight: c.AlignRight,
			})
		}
		x += r.widths[c.Name]
	}
	r.y -= float64(maxLines)*cfg.LineHeight + cfg.CellPadding
}
