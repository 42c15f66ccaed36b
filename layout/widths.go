package layout

// measureWidths computes the natural width demand per column: the widest of
// the header label and every cell value, plus cell padding. Header labels
// measure bold; cells measure with their row's emphasis.
func measureWidths(cols []Column, rows []Row, measure MeasureFunc, padding float64) map[string]float64 {
	widths := make(map[string]float64, len(cols))
	for _, c := range cols {
		w := measure(c.Title, true)
		for _, r := range rows {
			if cw := measure(r.Cells[c.Name], r.Bold); cw > w {
				w = cw
			}
		}
		widths[c.Name] = w + padding
	}
	return widths
}

// scaleWidths returns a new mapping with every width scaled proportionally
// so the total equals usable, each clamped to the floor. When the floors
// push the total past usable the overflow is accepted; layout is total over
// any input.
func scaleWidths(widths map[string]float64, cols []Column, usable, floor float64) map[string]float64 {
	var total float64
	for _, c := range cols {
		total += widths[c.Name]
	}
	scaled := make(map[string]float64, len(widths))
	if total <= 0 {
		for _, c := range cols {
			scaled[c.Name] = floor
		}
		return scaled
	}
	factor := usable / total
	for _, c := range cols {
		w := widths[c.Name] * factor
		if w < floor {
			w = floor
		}
		scaled[c.Name] = w
	}
	return scaled
}
