package edit

import (
	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/text"
)

// Size defaults for areas made by dragging on empty canvas.
const (
	MinCreateSize       = 20
	DefaultCreateWidth  = 240
	DefaultCreateHeight = 56
)

// CreateGesture turns a press-drag-release on empty canvas into a new text
// area. The zero value is idle and uses the default sizes and style.
type CreateGesture struct {
	// Style of created areas. Zero fields take text defaults.
	Style text.Style
	// MinSize, Width, Height and Padding override MinCreateSize,
	// DefaultCreateWidth, DefaultCreateHeight and DefaultPadding when
	// positive.
	MinSize, Width, Height float64
	Padding                float64

	start, cur ggedit.Point
	active     bool
}

// Begin starts the gesture at the canvas point p.
func (g *CreateGesture) Begin(p ggedit.Point) {
	g.start, g.cur = p, p
	g.active = true
}

// Active reports whether a gesture is in progress.
func (g *CreateGesture) Active() bool { return g.active }

// Update moves the free corner to p and returns the preview rectangle.
func (g *CreateGesture) Update(p ggedit.Point) ggedit.Rect {
	if !g.active {
		return ggedit.Rect{}
	}
	g.cur = p
	return ggedit.RectFromPoints(g.start, g.cur)
}

// Preview returns the current rectangle and whether a gesture is active.
func (g *CreateGesture) Preview() (ggedit.Rect, bool) {
	if !g.active {
		return ggedit.Rect{}, false
	}
	return ggedit.RectFromPoints(g.start, g.cur), true
}

// End finishes the gesture at p and returns the new, empty area. A drag
// smaller than MinCreateSize in either direction is treated as a click and
// yields a default-size area at the press point.
func (g *CreateGesture) End(p ggedit.Point) (*TextArea, bool) {
	if !g.active {
		return nil, false
	}
	g.active = false
	r := ggedit.RectFromPoints(g.start, p)
	least := or(g.MinSize, MinCreateSize)
	if r.Width < least || r.Height < least {
		r = ggedit.Rect{
			X:      g.start.X,
			Y:      g.start.Y,
			Width:  or(g.Width, DefaultCreateWidth),
			Height: or(g.Height, DefaultCreateHeight),
		}
	}
	a := NewTextArea(r, "", g.Style)
	if g.Padding > 0 {
		a.SetPadding(g.Padding)
	}
	return a, true
}

func or(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// Cancel abandons the gesture.
func (g *CreateGesture) Cancel() { g.active = false }

// SetCreateMode turns drag-to-create on or off. While on, pressing on
// empty canvas starts a CreateGesture instead of just deactivating.
func (e *Editor) SetCreateMode(on bool) {
	e.creating = on
	if !on {
		e.gesture.Cancel()
	}
}

// CreateMode reports whether drag-to-create is on.
func (e *Editor) CreateMode() bool { return e.creating }

// SetCreateStyle sets the style of areas made by dragging.
func (e *Editor) SetCreateStyle(st text.Style) { e.gesture.Style = st }

// SetCreateGesture replaces the create gesture settings. A gesture in
// progress is cancelled.
func (e *Editor) SetCreateGesture(g CreateGesture) {
	g.active = false
	e.gesture = g
}

// CreatePreview returns the rectangle of a create gesture in progress.
func (e *Editor) CreatePreview() (ggedit.Rect, bool) { return e.gesture.Preview() }

// Create adds a and makes it the active area with the caret at its end.
func (e *Editor) Create(a *TextArea) {
	if a == nil {
		return
	}
	e.Add(a)
	a.state.SetCaret(a.Len(), a.Len())
	e.activate(a)
	e.commit(a, false)
	e.log.Debug("edit: area created", "id", a.ID, "bounds", a.bounds)
}
