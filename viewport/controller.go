package viewport

import (
	"errors"
	"log/slog"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/device"
	"github.com/gogpu/ggedit/input"
	"github.com/gogpu/ggedit/zoom"
)

// ErrNilInput is returned by Attach when given no event source.
var ErrNilInput = errors.New("viewport: nil input source")

// Controller owns the camera of one canvas and turns input into zoom and
// pan changes. It is not safe for concurrent use.
type Controller struct {
	opts controllerOptions
	log  *slog.Logger

	cam  Camera
	grid GridOverlay

	grab       bool
	space      bool
	dragButton input.Button
	last       ggedit.Point

	subs input.Group
}

// New creates a Controller with the default camera.
func New(opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = ggedit.Logger()
	}
	c := &Controller{
		opts: o,
		log:  log,
		cam:  DefaultCamera(o.grid),
	}
	c.grid = gridFor(c.cam, o.gridCell, c.Transform())
	return c
}

// Camera returns the current camera.
func (c *Controller) Camera() Camera { return c.cam }

// Zoom returns the current zoom level.
func (c *Controller) Zoom() float64 { return c.cam.Zoom }

// Pan returns the current pan offset in canvas units.
func (c *Controller) Pan() ggedit.Point { return c.cam.Pan }

// Grid returns the grid overlay for the current camera.
func (c *Controller) Grid() GridOverlay { return c.grid }

// Transform returns the canvas to screen matrix.
func (c *Controller) Transform() ggedit.Matrix {
	return c.cam.Transform(c.opts.origin, c.opts.pixelRatio)
}

// ScreenToCanvas maps a pointer position to canvas space.
func (c *Controller) ScreenToCanvas(p ggedit.Point) ggedit.Point {
	return c.cam.ScreenToCanvas(p, c.opts.origin, c.opts.pixelRatio)
}

// CanvasToScreen maps a canvas point to a pointer position.
func (c *Controller) CanvasToScreen(p ggedit.Point) ggedit.Point {
	return c.cam.CanvasToScreen(p, c.opts.origin, c.opts.pixelRatio)
}

// ZoomIn steps to the next zoom level. At the maximum it stays put.
func (c *Controller) ZoomIn() { c.setZoom(zoom.Next(c.cam.Zoom)) }

// ZoomOut steps to the previous zoom level. At the minimum it stays put.
func (c *Controller) ZoomOut() { c.setZoom(zoom.Previous(c.cam.Zoom)) }

// SetZoom clamps v to the zoom range and snaps it to the nearest level.
func (c *Controller) SetZoom(v float64) { c.setZoom(zoom.Snap(v)) }

// ZoomAt snaps level and zooms so the canvas point under the screen point
// p stays under it.
func (c *Controller) ZoomAt(level float64, p ggedit.Point) {
	anchor := c.ScreenToCanvas(p)
	c.cam.Zoom = zoom.Snap(level)
	// Solve screen(anchor) == p for the pan.
	local := p.Div(c.opts.pixelRatio).Sub(c.opts.origin)
	c.cam.Pan = local.Div(c.cam.Zoom).Sub(anchor)
	c.log.Debug("viewport: zoom at point", "zoom", c.cam.Zoom, "x", p.X, "y", p.Y)
	c.changed()
}

func (c *Controller) setZoom(z float64) {
	if z == c.cam.Zoom {
		return
	}
	c.cam.Zoom = z
	c.log.Debug("viewport: zoom", "zoom", z)
	c.changed()
}

// FitToContainer zooms out until the whole content fits inside the
// container minus padding, never above 100%, snapping down to a table
// level, and centres the content. It returns the new zoom.
func (c *Controller) FitToContainer(padding float64) float64 {
	content, container := c.opts.content, c.opts.container
	if content.Empty() {
		c.log.Warn("viewport: fit with empty content size")
	}
	scale := device.FitScale(content, container, padding)
	z := zoom.SnapDown(scale)
	c.cam.Zoom = z
	if !content.Empty() {
		c.cam.Pan = ggedit.Pt(
			(container.Width/2-c.opts.origin.X)/z-content.Width/2,
			(container.Height/2-c.opts.origin.Y)/z-content.Height/2,
		)
	}
	c.log.Debug("viewport: fit", "scale", scale, "zoom", z)
	c.changed()
	return z
}

// Fit is FitToContainer with the configured padding.
func (c *Controller) Fit() float64 { return c.FitToContainer(c.opts.padding) }

// ResetView returns to 100% with no pan and the configured grid setting.
// A pan in progress ends; the grab tool selection is kept.
func (c *Controller) ResetView() {
	c.cam = DefaultCamera(c.opts.grid)
	c.log.Debug("viewport: view reset")
	c.changed()
}

// PanBy moves the view by d canvas units.
func (c *Controller) PanBy(d ggedit.Point) {
	c.cam.Pan = c.cam.Pan.Add(d)
	c.changed()
}

// SetGrabTool turns the grab tool on or off. Turning it off ends a grab
// in progress.
func (c *Controller) SetGrabTool(on bool) {
	c.grab = on
	if !on && c.cam.Drag == DragGrabTool {
		c.endDrag()
	}
}

// ToggleGrabTool flips the grab tool and returns the new state.
func (c *Controller) ToggleGrabTool() bool {
	c.SetGrabTool(!c.grab)
	return c.grab
}

// GrabTool reports whether the grab tool is on.
func (c *Controller) GrabTool() bool { return c.grab }

// SpaceHeld reports whether the spacebar is held for panning.
func (c *Controller) SpaceHeld() bool { return c.space }

// SetGrid shows or hides the grid overlay.
func (c *Controller) SetGrid(on bool) {
	if c.cam.Grid == on {
		return
	}
	c.cam.Grid = on
	c.changed()
}

// ToggleGrid flips the grid overlay and returns the new state.
func (c *Controller) ToggleGrid() bool {
	c.SetGrid(!c.cam.Grid)
	return c.cam.Grid
}

// SetContentSize sets the content size used by fitting.
func (c *Controller) SetContentSize(w, h float64) {
	c.opts.content = device.Size{Width: w, Height: h}
}

// SetContainerSize sets the element size used by fitting.
func (c *Controller) SetContainerSize(w, h float64) {
	c.opts.container = device.Size{Width: w, Height: h}
}

// ContainerSize returns the element size.
func (c *Controller) ContainerSize() device.Size { return c.opts.container }

// SetPixelRatio changes the device pixel ratio. Non-positive values are
// ignored.
func (c *Controller) SetPixelRatio(r float64) {
	if !(r > 0) || r == c.opts.pixelRatio {
		return
	}
	c.opts.pixelRatio = r
	c.changed()
}

// PixelRatio returns the device pixel ratio.
func (c *Controller) PixelRatio() float64 { return c.opts.pixelRatio }

// Attach subscribes the controller to src. Pointer and key handlers run
// in the capture phase so pan gestures and zoom shortcuts never reach
// handlers registered later, such as a text editor.
func (c *Controller) Attach(src input.Source) error {
	if src == nil {
		return ErrNilInput
	}
	c.subs.Add(
		src.OnPointer(input.PhaseCapture, func(ev *input.PointerEvent) { c.HandlePointer(ev) }),
		src.OnKey(input.PhaseCapture, func(ev *input.KeyEvent) { c.HandleKey(ev) }),
		src.OnWheel(input.PhaseCapture, func(ev *input.WheelEvent) { c.HandleWheel(ev) }),
	)
	c.log.Info("viewport: controller attached")
	return nil
}

// AttachResize makes the container size follow rc. With fit set, the
// content is re-fitted after every change. The subscription is released
// by Close.
func (c *Controller) AttachResize(rc *ResizeCoordinator, fit bool) {
	if rc == nil {
		return
	}
	c.subs.Add(rc.Subscribe(func(d Dimensions) {
		c.SetContainerSize(d.Width, d.Height)
		c.SetPixelRatio(d.PixelRatio)
		if fit {
			c.Fit()
		} else {
			c.changed()
		}
	}))
}

// Close releases every subscription and ends any pan in progress.
func (c *Controller) Close() {
	c.subs.Close()
	c.space = false
	c.cam.Drag = DragNone
	c.log.Info("viewport: controller closed")
}

// changed recomputes the grid and notifies the host.
func (c *Controller) changed() {
	m := c.Transform()
	c.grid = gridFor(c.cam, c.opts.gridCell, m)
	if c.opts.onTransform != nil {
		c.opts.onTransform(m)
	}
	if c.opts.onGrid != nil {
		c.opts.onGrid(c.grid)
	}
	if c.opts.render != nil {
		c.opts.render()
	}
}
