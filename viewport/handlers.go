package viewport

import (
	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/input"
	"github.com/gogpu/ggedit/zoom"
)

// HandlePointer starts, continues and ends pan gestures. Handled events
// stop propagating. It reports whether the event was consumed.
func (c *Controller) HandlePointer(ev *input.PointerEvent) bool {
	if ev.IsFormControl() {
		return false
	}
	switch ev.Type {
	case input.PointerDown:
		if c.cam.Drag != DragNone {
			return false
		}
		src := c.dragSourceFor(ev.Button)
		if src == DragNone {
			return false
		}
		c.cam.Drag = src
		c.dragButton = ev.Button
		c.last = ev.Pos
		c.log.Debug("viewport: pan started", "source", src)
		c.changed()
	case input.PointerMove:
		if c.cam.Drag == DragNone {
			return false
		}
		delta := ev.Pos.Sub(c.last)
		c.last = ev.Pos
		c.cam.Pan = c.cam.Pan.Add(delta.Div(c.cam.Zoom * c.opts.pixelRatio))
		c.changed()
	case input.PointerUp:
		if c.cam.Drag == DragNone || ev.Button != c.dragButton {
			return false
		}
		c.endDrag()
	default:
		return false
	}
	ev.PreventDefault()
	ev.StopPropagation()
	return true
}

// dragSourceFor picks the pan source for a press, in priority order.
func (c *Controller) dragSourceFor(b input.Button) DragSource {
	switch {
	case b == input.ButtonMiddle:
		return DragMiddleMouse
	case b == input.ButtonLeft && c.space:
		return DragSpacebar
	case b == input.ButtonLeft && c.grab:
		return DragGrabTool
	}
	return DragNone
}

func (c *Controller) endDrag() {
	if c.cam.Drag == DragNone {
		return
	}
	c.log.Debug("viewport: pan ended", "source", c.cam.Drag, "pan", c.cam.Pan)
	c.cam.Drag = DragNone
	c.changed()
}

// HandleKey handles the zoom shortcuts and the spacebar hold. Nothing is
// handled while a native form control has focus.
func (c *Controller) HandleKey(ev *input.KeyEvent) bool {
	if ev.IsFormControl() {
		return false
	}
	if ev.Key == input.KeySpace && !ev.Mods.Shortcut() {
		return c.handleSpace(ev)
	}
	if ev.Type != input.KeyDown || !ev.Mods.Shortcut() {
		return false
	}
	switch ev.Key {
	case "+", "=":
		c.ZoomIn()
	case "-", "_":
		c.ZoomOut()
	case "0":
		c.ResetView()
	case "1":
		c.Fit()
	default:
		return false
	}
	ev.PreventDefault()
	ev.StopPropagation()
	return true
}

func (c *Controller) handleSpace(ev *input.KeyEvent) bool {
	if ev.Type == input.KeyUp {
		if !c.space {
			return false
		}
		c.space = false
		if c.cam.Drag == DragSpacebar {
			c.endDrag()
		}
		ev.PreventDefault()
		return true
	}
	if c.opts.editing != nil && c.opts.editing() {
		return false
	}
	if !c.space {
		c.space = true
		c.log.Debug("viewport: spacebar held")
	}
	ev.PreventDefault()
	ev.StopPropagation()
	return true
}

// HandleWheel zooms one level at the pointer with Ctrl/Cmd held and pans
// otherwise. Shift swaps the pan axes.
func (c *Controller) HandleWheel(ev *input.WheelEvent) bool {
	if ev.IsFormControl() {
		return false
	}
	if ev.Mods.Shortcut() {
		switch {
		case ev.DeltaY < 0:
			c.ZoomAt(zoom.Next(c.cam.Zoom), ev.Pos)
		case ev.DeltaY > 0:
			c.ZoomAt(zoom.Previous(c.cam.Zoom), ev.Pos)
		default:
			return false
		}
	} else {
		dx, dy := ev.DeltaX, ev.DeltaY
		if ev.Mods.Shift() {
			dx, dy = dy, dx
		}
		if dx == 0 && dy == 0 {
			return false
		}
		c.PanBy(ggedit.Pt(-dx, -dy).Div(c.cam.Zoom * c.opts.pixelRatio))
	}
	ev.PreventDefault()
	ev.StopPropagation()
	return true
}
