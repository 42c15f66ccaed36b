// Package layout lays out a variable-width table across multiple pages:
// column sizing against a fixed usable width, cell wrapping, row pagination
// with header repetition, and a pagination-aware multi-level summary block.
//
// The engine is side-effect free. It reads rows and column definitions,
// measures text through an injected MeasureFunc, and emits batches of
// drawing primitives (text, x, y, bold, alignment) that any rendering
// backend can realize without further layout decisions. Coordinates use the
// PDF convention: y grows upward, the cursor moves down the page by
// decreasing.
package layout
