package model

import (
	"fmt"
	"strings"
)

// WarningCode classifies non-fatal issues found while processing a document.
type WarningCode int

const (
	// WarnNoOrders indicates that no order boundary was detected anywhere
	// in the input. The result is empty rather than an error.
	WarnNoOrders WarningCode = iota

	// WarnAmountParse indicates that a "TOTAL A PAGAR" value was present
	// but did not convert to a number; the amount was recorded as zero.
	WarnAmountParse
)

// Warning describes a non-fatal issue encountered during processing.
// Warnings accompany results; nothing in the core pipeline is fatal.
type Warning struct {
	Code    WarningCode
	Page    int // 0-indexed source page, -1 when not page-specific
	Message string
}

func (w Warning) String() string {
	if w.Page < 0 {
		return w.Message
	}
	return fmt.Sprintf("página %d: %s", w.Page+1, w.Message)
}

// FormatWarnings renders a slice of warnings as a single string suitable
// for logging, one warning per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
