// Package procesador turns extracted transport-order text streams into
// structured invoice records grouped by client, with per-order totals and a
// paginated tabular report.
//
// Basic usage:
//
//	orders, warnings, err := procesador.FromPages(pageTexts).Orders()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Advertencias:", procesador.FormatWarnings(warnings))
//	}
//
// Producing the renderable report artifact:
//
//	artifact, _, err := procesador.FromPages(pageTexts).Report()
//
// The page texts come from any source that yields plain text per page with
// preserved newlines; the reader package provides the standard PDF-backed
// implementation.
package procesador

import (
	"github.com/aquinode91-creator/procesador-pdf/model"
)

// Warning is a non-fatal issue reported alongside results. Nothing in the
// processing core is fatal; warnings are how degraded input surfaces.
type Warning = model.Warning

// FormatWarnings renders warnings for logging, one per line.
func FormatWarnings(warnings []Warning) string {
	return model.FormatWarnings(warnings)
}

// FromPages creates a Processor over an ordered sequence of page texts.
//
// Example:
//
//	artifact, _, err := procesador.FromPages(pages).Report()
func FromPages(pages []string) *Processor {
	return &Processor{
		pages:   append([]string(nil), pages...),
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult wraps a terminal operation returning (T, []Warning, error),
// panicking on error and discarding warnings.
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
