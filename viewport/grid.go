package viewport

import (
	"math"

	"github.com/gogpu/ggedit"
)

const (
	// DefaultGridCell is the grid spacing at 100% zoom.
	DefaultGridCell = 20

	// MinGridCell is the smallest cell size the overlay uses.
	MinGridCell = 2
)

// GridOverlay describes the background grid. It is recomputed on every
// camera change so it never drifts from the content.
type GridOverlay struct {
	Visible bool
	// CellSize is the cell edge in canvas units: max(2, base/zoom).
	CellSize float64
	// Transform is the canvas to screen matrix the grid is drawn with.
	Transform ggedit.Matrix
}

func gridFor(cam Camera, base float64, m ggedit.Matrix) GridOverlay {
	z := cam.Zoom
	if !(z > 0) {
		z = 1
	}
	return GridOverlay{
		Visible:   cam.Grid,
		CellSize:  math.Max(MinGridCell, base/z),
		Transform: m,
	}
}

// Lines returns the screen positions of the vertical and horizontal grid
// lines inside a width by height viewport. Spacing below one pixel yields
// no lines.
func (g GridOverlay) Lines(width, height float64) (xs, ys []float64) {
	if !g.Visible || !(g.CellSize > 0) {
		return nil, nil
	}
	sx, sy := g.Transform.ScaleFactor()
	t := g.Transform.Translation()
	return gridLines(g.CellSize*sx, t.X, width), gridLines(g.CellSize*sy, t.Y, height)
}

func gridLines(step, offset, extent float64) []float64 {
	if !(step >= 1) || !(extent > 0) {
		return nil
	}
	start := math.Mod(offset, step)
	if start < 0 {
		start += step
	}
	lines := make([]float64, 0, int(extent/step)+1)
	for v := start; v <= extent; v += step {
		lines = append(lines, v)
	}
	return lines
}
