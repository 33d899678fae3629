// Package text is the text flow engine of the canvas editor.
//
// It wraps raw strings into measured lines for a given pixel width, maps
// caret indices to lines and canvas positions, and maps pointer positions
// back to caret indices. It never renders anything; glyph widths come from a
// Measurer supplied by the host.
//
// # Indices
//
// All indices are rune offsets into the string. A wrapped text is a slice of
// LineInfo whose [Start, End) ranges partition the text: the rune at End, if
// any, is the space or newline consumed by the break, and the next line
// starts right after it.
//
// # Measurement backends
//
//   - FaceMeasurer: golang.org/x/image/font/opentype with the Go fonts
//   - ShapingMeasurer: HarfBuzz shaping via github.com/go-text/typesetting
//   - CellMeasurer: terminal cell widths via github.com/rivo/uniseg
//   - CachedMeasurer: a sharded LRU in front of any of the above
//
// Example:
//
//	flow := text.NewFlow(text.NewFaceMeasurer(), text.DefaultStyle())
//	lines := flow.Wrap("The quick brown fox", 120)
//	caret := flow.IndexAt(lines, clickX, clickY)
package text
