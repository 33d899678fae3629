package text

import "github.com/rivo/uniseg"

// CellMeasurer measures text in terminal cells: each grapheme cluster is one
// or two cells wide (East Asian wide characters and emoji take two). The
// style is ignored; every font is one cell tall and CellWidth wide.
type CellMeasurer struct {
	// CellWidth is the width of one cell in canvas units. Zero means 1.
	CellWidth float64
}

// Measure implements Measurer.
func (c CellMeasurer) Measure(s string, _ Style) float64 {
	cw := c.CellWidth
	if cw <= 0 {
		cw = 1
	}
	return float64(uniseg.StringWidth(s)) * cw
}
