package viewport

import (
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/device"
	"github.com/gogpu/ggedit/input"
	"github.com/gogpu/ggedit/internal/clock"
	"github.com/gogpu/ggedit/internal/debounce"
)

// ErrNilSource is returned when a window or element coordinator is created
// without a size source.
var ErrNilSource = errors.New("viewport: nil size source")

// DefaultThrottle is the resize throttle interval, about one frame.
const DefaultThrottle = 16 * time.Millisecond

// ResizeMode selects what a ResizeCoordinator follows.
type ResizeMode uint8

const (
	// ResizeWindow follows the host window.
	ResizeWindow ResizeMode = iota
	// ResizeElement follows one element, e.g. through a resize observer.
	ResizeElement
	// ResizeManual only resizes on Notify or Resize calls.
	ResizeManual
)

// String returns the mode name.
func (m ResizeMode) String() string {
	switch m {
	case ResizeWindow:
		return "window"
	case ResizeElement:
		return "element"
	case ResizeManual:
		return "manual"
	}
	return "unknown"
}

// SizeSource reports a size in screen pixels and announces changes.
type SizeSource interface {
	Size() (w, h float64)
	Observe(onChange func()) input.Subscription
}

// Dimensions is the renderer size derived from a container size.
type Dimensions struct {
	Width, Height           float64
	PixelRatio              float64
	PixelWidth, PixelHeight int
}

// ResizeOption configures a ResizeCoordinator.
type ResizeOption func(*resizeOptions)

type resizeOptions struct {
	throttle   time.Duration
	clock      clock.Clock
	pixelRatio float64
	logger     *slog.Logger
}

// WithThrottle sets the throttle interval. Zero applies every event
// immediately.
func WithThrottle(d time.Duration) ResizeOption {
	return func(o *resizeOptions) {
		o.throttle = max(d, 0)
	}
}

// WithResizeClock sets the clock driving the throttle timer. Hosts with a
// single event loop pass a clock that runs callbacks on that loop.
func WithResizeClock(c clock.Clock) ResizeOption {
	return func(o *resizeOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithResizePixelRatio sets the initial device pixel ratio.
func WithResizePixelRatio(r float64) ResizeOption {
	return func(o *resizeOptions) {
		if r > 0 {
			o.pixelRatio = r
		}
	}
}

// WithResizeLogger sets the logger for the coordinator.
func WithResizeLogger(l *slog.Logger) ResizeOption {
	return func(o *resizeOptions) {
		o.logger = l
	}
}

// ResizeCoordinator throttles container resizes and notifies subscribers
// when the renderer dimensions actually change. Events closer together
// than the throttle interval collapse into one, fired after the last.
//
// Subscribers run on the clock's callback goroutine; the coordinator
// itself is safe for concurrent use.
type ResizeCoordinator struct {
	mode ResizeMode
	src  SizeSource
	log  *slog.Logger
	deb  *debounce.Debouncer

	mu         sync.Mutex
	pixelRatio float64
	manual     ggedit.Point
	hasManual  bool
	last       Dimensions
	hasLast    bool
	nextID     int
	subs       map[int]func(Dimensions)
	srcSub     input.Subscription
	closed     bool
}

// NewResizeCoordinator creates a coordinator in mode. Window and element
// modes require src; manual mode may use src for Notify or take sizes
// through Resize.
func NewResizeCoordinator(mode ResizeMode, src SizeSource, opts ...ResizeOption) (*ResizeCoordinator, error) {
	o := resizeOptions{throttle: DefaultThrottle, clock: clock.Real{}, pixelRatio: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if src == nil && mode != ResizeManual {
		return nil, ErrNilSource
	}
	log := o.logger
	if log == nil {
		log = ggedit.Logger()
	}
	rc := &ResizeCoordinator{
		mode:       mode,
		src:        src,
		log:        log,
		pixelRatio: o.pixelRatio,
		subs:       make(map[int]func(Dimensions)),
	}
	rc.deb = debounce.New(o.clock, o.throttle, rc.fire)
	if src != nil && mode != ResizeManual {
		rc.srcSub = src.Observe(rc.Notify)
	}
	log.Info("viewport: resize coordinator started", "mode", mode, "throttle", o.throttle)
	return rc, nil
}

// Mode returns the coordinator mode.
func (rc *ResizeCoordinator) Mode() ResizeMode { return rc.mode }

// Subscribe registers fn for dimension changes.
func (rc *ResizeCoordinator) Subscribe(fn func(Dimensions)) input.Subscription {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.closed || fn == nil {
		return input.SubscriptionFunc(nil)
	}
	id := rc.nextID
	rc.nextID++
	rc.subs[id] = fn
	return input.SubscriptionFunc(func() {
		rc.mu.Lock()
		defer rc.mu.Unlock()
		delete(rc.subs, id)
	})
}

// Notify schedules a re-measure, replacing any pending one.
func (rc *ResizeCoordinator) Notify() { rc.deb.Trigger() }

// Resize records a manual size and schedules a re-measure. The manual
// size takes precedence over the source.
func (rc *ResizeCoordinator) Resize(w, h float64) {
	rc.mu.Lock()
	rc.manual = ggedit.Pt(w, h)
	rc.hasManual = true
	rc.mu.Unlock()
	rc.Notify()
}

// SetPixelRatio changes the device pixel ratio and schedules a
// re-measure. Non-positive values are ignored.
func (rc *ResizeCoordinator) SetPixelRatio(r float64) {
	if !(r > 0) {
		return
	}
	rc.mu.Lock()
	rc.pixelRatio = r
	rc.mu.Unlock()
	rc.Notify()
}

// Flush runs a pending re-measure now.
func (rc *ResizeCoordinator) Flush() { rc.deb.Flush() }

// Pending reports whether a re-measure is scheduled.
func (rc *ResizeCoordinator) Pending() bool { return rc.deb.Pending() }

// Last returns the most recently notified dimensions.
func (rc *ResizeCoordinator) Last() (Dimensions, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.last, rc.hasLast
}

// Close detaches from the source, cancels a pending re-measure and drops
// every subscriber.
func (rc *ResizeCoordinator) Close() {
	rc.deb.Close()
	rc.mu.Lock()
	sub := rc.srcSub
	rc.srcSub = nil
	rc.subs = make(map[int]func(Dimensions))
	rc.closed = true
	rc.mu.Unlock()
	if sub != nil {
		sub.Unsubscribe()
	}
	rc.log.Info("viewport: resize coordinator closed")
}

func (rc *ResizeCoordinator) fire() {
	rc.mu.Lock()
	if rc.closed {
		rc.mu.Unlock()
		return
	}
	var w, h float64
	switch {
	case rc.hasManual:
		w, h = rc.manual.X, rc.manual.Y
	case rc.src != nil:
		rc.mu.Unlock()
		w, h = rc.src.Size()
		rc.mu.Lock()
	default:
		rc.mu.Unlock()
		return
	}
	d := dimensionsOf(w, h, rc.pixelRatio)
	if rc.hasLast && d == rc.last {
		rc.mu.Unlock()
		return
	}
	rc.last, rc.hasLast = d, true
	subs := make([]func(Dimensions), 0, len(rc.subs))
	for id := 0; id < rc.nextID; id++ {
		if fn, ok := rc.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	rc.mu.Unlock()

	rc.log.Debug("viewport: resized", "width", d.Width, "height", d.Height,
		"pixelWidth", d.PixelWidth, "pixelHeight", d.PixelHeight)
	for _, fn := range subs {
		fn(d)
	}
}

func dimensionsOf(w, h, ratio float64) Dimensions {
	if !(w > 0) || math.IsInf(w, 0) {
		w = 0
	}
	if !(h > 0) || math.IsInf(h, 0) {
		h = 0
	}
	info := device.Describe(w, h, ratio)
	pw, ph := info.DevicePixels()
	return Dimensions{
		Width:       w,
		Height:      h,
		PixelRatio:  info.PixelRatio,
		PixelWidth:  pw,
		PixelHeight: ph,
	}
}
