package text

// MinLines is the minimum number of lines a text box is sized for, so an
// empty box still offers room to type.
const MinLines = 2

// OptimalHeight returns the box height for lineCount lines: one line
// advance per line, never fewer than MinLines.
func OptimalHeight(lineCount int, style Style) float64 {
	return float64(max(lineCount, MinLines)) * style.LinePixels()
}

// LinesBounds returns the size of already wrapped lines. The width is the
// widest line clamped to maxWidth.
func LinesBounds(lines []LineInfo, maxWidth float64, style Style) (w, h float64) {
	for _, l := range lines {
		w = max(w, l.Width)
	}
	if w > maxWidth {
		w = max(maxWidth, 0)
	}
	return w, OptimalHeight(len(lines), style)
}

// Bounds wraps s at maxWidth and returns the size of the resulting box.
func Bounds(s string, maxWidth float64, style Style, m Measurer) (w, h float64) {
	return LinesBounds(Wrap(s, maxWidth, style, m), maxWidth, style)
}
