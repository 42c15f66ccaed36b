package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/aquinode91-creator/procesador-pdf/layout"
)

// pageHeight of an A4 portrait page in points, used to convert the layout
// engine's bottom-up y coordinates to gofpdf's top-down system.
const pageHeight = 842

// Renderer realizes layout drawing primitives as PDF bytes using gofpdf.
// Core fonts cover the Latin-1 repertoire, which includes every character
// of the field protocol's Spanish labels.
type Renderer struct {
	fontFamily string
	fontSize   float64
}

// defaultFontSize in points.
const defaultFontSize = 9

// NewRenderer creates a renderer with Helvetica at the default size.
func NewRenderer() *Renderer {
	return NewRendererWithSize(defaultFontSize)
}

// NewRendererWithSize creates a Helvetica renderer at the given point size.
// A size that is not positive falls back to the default.
func NewRendererWithSize(size float64) *Renderer {
	if size <= 0 {
		size = defaultFontSize
	}
	return &Renderer{fontFamily: "Helvetica", fontSize: size}
}

// Measure returns the measurement function backing this renderer's font
// metrics, for use by the layout engine. Widths are in points.
func (r *Renderer) Measure() layout.MeasureFunc {
	pdf := gofpdf.New("P", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	return func(text string, bold bool) float64 {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont(r.fontFamily, style, r.fontSize)
		return pdf.GetStringWidth(tr(text))
	}
}

// Render realizes one order report as a PDF document, one PDF page per
// layout page batch.
func (r *Renderer) Render(rep *OrderReport) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range rep.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			style := ""
			if op.Bold {
				style = "B"
			}
			pdf.SetFont(r.fontFamily, style, r.fontSize)
			text := tr(op.Text)
			x := op.X
			if op.AlignRight {
				x = op.X + op.Width - pdf.GetStringWidth(text)
			}
			pdf.Text(x, pageHeight-op.Y, text)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing report PDF: %w", err)
	}
	return buf.Bytes(), nil
}
