package procesador

import "github.com/aquinode91-creator/procesador-pdf/layout"

// ProcessOptions holds configuration for the processing pipeline.
type ProcessOptions struct {
	// measure is the text width measurement used for layout; nil selects
	// the PDF renderer's metrics.
	measure layout.MeasureFunc

	// layoutCfg overrides the default page geometry when non-nil.
	layoutCfg *layout.Config
}

// defaultOptions returns the default pipeline options.
func defaultOptions() ProcessOptions {
	return ProcessOptions{}
}

// clone creates a copy of ProcessOptions.
func (o ProcessOptions) clone() ProcessOptions {
	newOpts := ProcessOptions{
		measure: o.measure,
	}
	if o.layoutCfg != nil {
		cfg := *o.layoutCfg
		newOpts.layoutCfg = &cfg
	}
	return newOpts
}
