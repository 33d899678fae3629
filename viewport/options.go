package viewport

import (
	"log/slog"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/device"
)

// Option configures a Controller during creation.
type Option func(*controllerOptions)

type controllerOptions struct {
	content    device.Size
	container  device.Size
	pixelRatio float64
	origin     ggedit.Point
	gridCell   float64
	grid       bool
	padding    float64

	onTransform func(ggedit.Matrix)
	onGrid      func(GridOverlay)
	render      func()
	editing     func() bool
	logger      *slog.Logger
}

// DefaultFitPadding is the fit padding used when none is configured.
const DefaultFitPadding = 40

func defaultOptions() controllerOptions {
	return controllerOptions{
		pixelRatio: 1,
		gridCell:   DefaultGridCell,
		grid:       true,
		padding:    DefaultFitPadding,
	}
}

// WithContentSize sets the size of the canvas content in canvas units.
func WithContentSize(w, h float64) Option {
	return func(o *controllerOptions) {
		o.content = device.Size{Width: w, Height: h}
	}
}

// WithContainerSize sets the size of the canvas element in screen pixels.
func WithContainerSize(w, h float64) Option {
	return func(o *controllerOptions) {
		o.container = device.Size{Width: w, Height: h}
	}
}

// WithPixelRatio sets the device pixel ratio. Non-positive values are
// ignored.
func WithPixelRatio(r float64) Option {
	return func(o *controllerOptions) {
		if r > 0 {
			o.pixelRatio = r
		}
	}
}

// WithOrigin sets the screen offset of the canvas content inside the
// element.
func WithOrigin(p ggedit.Point) Option {
	return func(o *controllerOptions) {
		o.origin = p
	}
}

// WithGridCell sets the grid spacing at 100% zoom.
func WithGridCell(size float64) Option {
	return func(o *controllerOptions) {
		if size > 0 {
			o.gridCell = size
		}
	}
}

// WithGrid sets whether the grid starts visible. ResetView restores this
// value.
func WithGrid(on bool) Option {
	return func(o *controllerOptions) {
		o.grid = on
	}
}

// WithFitPadding sets the padding used by Fit and the Ctrl+1 shortcut.
func WithFitPadding(p float64) Option {
	return func(o *controllerOptions) {
		o.padding = max(p, 0)
	}
}

// WithTransformFunc sets the callback that receives the canvas to screen
// matrix after every camera change.
func WithTransformFunc(f func(ggedit.Matrix)) Option {
	return func(o *controllerOptions) {
		o.onTransform = f
	}
}

// WithGridFunc sets the callback that receives the recomputed grid
// overlay after every camera change.
func WithGridFunc(f func(GridOverlay)) Option {
	return func(o *controllerOptions) {
		o.onGrid = f
	}
}

// WithRenderFunc sets the callback that requests a redraw.
func WithRenderFunc(f func()) Option {
	return func(o *controllerOptions) {
		o.render = f
	}
}

// WithEditingFunc tells the controller whether a text area is being
// edited, in which case the spacebar types a space instead of panning.
func WithEditingFunc(f func() bool) Option {
	return func(o *controllerOptions) {
		o.editing = f
	}
}

// WithLogger sets the logger for this controller. By default the
// package-wide ggedit logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *controllerOptions) {
		o.logger = l
	}
}
