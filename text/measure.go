package text

import "math"

// Measurer returns the advance width of s in canvas pixels for a style.
//
// Implementations must be infallible: a missing glyph or an unknown family
// degrades to zero width or a fallback font, never a panic. Line breaks are
// never passed in.
type Measurer interface {
	Measure(s string, style Style) float64
}

// MeasureFunc adapts a plain function to the Measurer interface.
type MeasureFunc func(s string, style Style) float64

// Measure implements Measurer.
func (f MeasureFunc) Measure(s string, style Style) float64 {
	return f(s, style)
}

// width calls m and sanitises the result so that a misbehaving measurer
// cannot push NaN or negative widths into layout.
func width(m Measurer, s string, style Style) float64 {
	if s == "" || m == nil {
		return 0
	}
	w := m.Measure(s, style)
	if math.IsNaN(w) || w < 0 {
		return 0
	}
	if math.IsInf(w, 1) {
		return math.MaxFloat64
	}
	return w
}

// FixedMeasurer gives every rune the same advance: Size * Ratio.
// It is the measurer used by tests and by hosts without font data.
type FixedMeasurer struct {
	// Ratio is the advance of one rune relative to the font size.
	// Zero means 0.5.
	Ratio float64
}

// Measure implements Measurer.
func (f FixedMeasurer) Measure(s string, style Style) float64 {
	ratio := f.Ratio
	if ratio <= 0 {
		ratio = 0.5
	}
	n := 0
	for range s {
		n++
	}
	return float64(n) * style.Normalize().Size * ratio
}
