package viewport

import (
	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/zoom"
)

// DragSource is the input currently driving a pan gesture.
type DragSource uint8

const (
	DragNone DragSource = iota
	DragGrabTool
	DragSpacebar
	DragMiddleMouse
)

// String returns the source name.
func (d DragSource) String() string {
	switch d {
	case DragNone:
		return "none"
	case DragGrabTool:
		return "grab-tool"
	case DragSpacebar:
		return "spacebar"
	case DragMiddleMouse:
		return "middle-mouse"
	}
	return "unknown"
}

// Camera is the view state of a canvas.
type Camera struct {
	// Zoom is always a member of the zoom table.
	Zoom float64
	// Pan is the canvas-space offset, unbounded in both directions.
	Pan ggedit.Point
	// Drag is the active pan gesture, if any.
	Drag DragSource
	// Grid reports whether the grid overlay is shown.
	Grid bool
}

// DefaultCamera returns the camera at 100% with no pan.
func DefaultCamera(grid bool) Camera {
	return Camera{Zoom: zoom.Default, Grid: grid}
}

// Transform returns the canvas to screen matrix for a canvas element whose
// content starts at origin, rendered at pixelRatio device pixels per
// screen pixel. A non-positive ratio is treated as 1.
func (c Camera) Transform(origin ggedit.Point, pixelRatio float64) ggedit.Matrix {
	if !(pixelRatio > 0) {
		pixelRatio = 1
	}
	s := c.Zoom * pixelRatio
	return ggedit.Matrix{
		A: s,
		C: (c.Pan.X*c.Zoom + origin.X) * pixelRatio,
		E: s,
		F: (c.Pan.Y*c.Zoom + origin.Y) * pixelRatio,
	}
}

// ScreenToCanvas maps a screen point to canvas space.
func (c Camera) ScreenToCanvas(p, origin ggedit.Point, pixelRatio float64) ggedit.Point {
	return c.Transform(origin, pixelRatio).Invert().TransformPoint(p)
}

// CanvasToScreen maps a canvas point to screen space.
func (c Camera) CanvasToScreen(p, origin ggedit.Point, pixelRatio float64) ggedit.Point {
	return c.Transform(origin, pixelRatio).TransformPoint(p)
}
