package procesador

import (
	"github.com/aquinode91-creator/procesador-pdf/layout"
	"github.com/aquinode91-creator/procesador-pdf/model"
	"github.com/aquinode91-creator/procesador-pdf/report"
	"github.com/aquinode91-creator/procesador-pdf/segment"
)

// Processor provides a fluent interface over the processing pipeline. Each
// configuration method returns a new Processor instance, making it safe for
// concurrent use and allowing method chaining.
type Processor struct {
	pages   []string
	options ProcessOptions
}

// clone returns a copy with deep-copied options, keeping configured
// instances immutable.
func (p *Processor) clone() *Processor {
	return &Processor{
		pages:   p.pages,
		options: p.options.clone(),
	}
}

// WithMeasure sets the text measurement function used for table layout.
// When unset, the PDF renderer's font metrics are used.
//
// Example:
//
//	artifact, _, err := procesador.FromPages(pages).WithMeasure(m).Report()
func (p *Processor) WithMeasure(measure layout.MeasureFunc) *Processor {
	np := p.clone()
	np.options.measure = measure
	return np
}

// WithLayoutConfig overrides the page geometry used for table layout.
func (p *Processor) WithLayoutConfig(cfg layout.Config) *Processor {
	np := p.clone()
	np.options.layoutCfg = &cfg
	return np
}

// Orders runs segmentation and returns the detected orders in document
// order. An input with no detectable order boundaries yields an empty slice
// and a no-records warning, never an error.
func (p *Processor) Orders() ([]*model.Order, []Warning, error) {
	result := segment.New().Segment(p.pages)
	return result.Orders, result.Warnings, nil
}

// Report runs the full pipeline: segmentation, client grouping, totals
// aggregation and table layout, returning the renderable artifact. The
// artifact of an empty document carries zero reports; the warnings tell the
// caller why.
func (p *Processor) Report() (*report.Artifact, []Warning, error) {
	result := segment.New().Segment(p.pages)

	measure := p.options.measure
	if measure == nil {
		measure = report.NewRenderer().Measure()
	}
	var assembler *report.Assembler
	if p.options.layoutCfg != nil {
		assembler = report.NewAssemblerWithConfig(measure, *p.options.layoutCfg)
	} else {
		assembler = report.NewAssembler(measure)
	}
	return assembler.Assemble(result.Orders), result.Warnings, nil
}
