package termcanvas

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/edit"
	"github.com/gogpu/ggedit/input"
	"github.com/gogpu/ggedit/internal/clock"
	"github.com/gogpu/ggedit/viewport"
)

// ErrNilScreen is returned by New when given no screen.
var ErrNilScreen = errors.New("termcanvas: nil screen")

// AreaPadding is the padding of areas added through the host: one cell
// for the border.
const AreaPadding = 1

// Host runs a canvas on a tcell screen. Handle, Draw and the accessors
// must be called from the goroutine running Run, or before Run starts.
type Host struct {
	screen tcell.Screen
	opts   hostOptions
	log    *slog.Logger

	clock  *loopClock
	disp   *input.Dispatcher
	editor *edit.Editor
	view   *viewport.Controller
	resize *viewport.ResizeCoordinator
	mouse  mouseTracker

	observers map[int]func()
	nextObs   int
	blink     clock.Timer

	dirty bool
	quit  bool
	once  sync.Once
}

// quitSignal is posted to stop Run.
type quitSignal struct{ err error }

// New initialises screen and wires a dispatcher, viewport controller,
// editor and resize coordinator to it.
func New(screen tcell.Screen, opts ...Option) (*Host, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = ggedit.Logger()
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("termcanvas: init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.SetStyle(o.theme.Background)

	h := &Host{
		screen:    screen,
		opts:      o,
		log:       log,
		disp:      input.NewDispatcher(),
		observers: make(map[int]func()),
		dirty:     true,
	}
	h.clock = &loopClock{
		screen: screen,
		now:    o.now,
		onDrop: func(err error) { log.Warn("termcanvas: timer event dropped", "err", err) },
	}

	w, ht := screen.Size()
	vopts := []viewport.Option{
		viewport.WithContainerSize(float64(w), float64(ht)),
		viewport.WithRenderFunc(h.invalidate),
		viewport.WithLogger(log),
	}
	vopts = append(vopts, o.viewport...)
	// The editing probe is bound last so callers cannot unhook it.
	vopts = append(vopts, viewport.WithEditingFunc(func() bool { return h.editor.Editing() }))
	h.view = viewport.New(vopts...)

	clip := o.clipboard
	if clip == nil {
		clip = &edit.MemoryClipboard{}
	}
	eopts := []edit.Option{
		edit.WithClipboard(clip),
		edit.WithLogger(log),
	}
	eopts = append(eopts, o.editor...)
	eopts = append(eopts,
		edit.WithRenderFunc(h.invalidate),
		edit.WithConverter(edit.ConverterFunc(h.view.ScreenToCanvas)),
		edit.WithClock(h.clock.Now),
	)
	h.editor = edit.NewEditor(o.measurer, eopts...)
	h.editor.SetCreateGesture(edit.CreateGesture{
		Style:   o.style,
		MinSize: 2,
		Width:   24,
		Height:  3,
		Padding: AreaPadding,
	})

	// Viewport first: its capture handlers see pan gestures and zoom
	// keys before the editor does.
	if err := h.view.Attach(h.disp); err != nil {
		return nil, err
	}
	if err := h.editor.Attach(h.disp); err != nil {
		return nil, err
	}

	ropts := append([]viewport.ResizeOption{
		viewport.WithResizeClock(h.clock),
		viewport.WithResizeLogger(log),
	}, o.resize...)
	rc, err := viewport.NewResizeCoordinator(viewport.ResizeWindow, screenSource{h}, ropts...)
	if err != nil {
		return nil, err
	}
	h.resize = rc
	h.view.AttachResize(rc, false)

	log.Info("termcanvas: host started", "width", w, "height", ht)
	return h, nil
}

// Screen returns the underlying screen.
func (h *Host) Screen() tcell.Screen { return h.screen }

// Editor returns the text editor.
func (h *Host) Editor() *edit.Editor { return h.editor }

// Viewport returns the viewport controller.
func (h *Host) Viewport() *viewport.Controller { return h.view }

// Resize returns the resize coordinator.
func (h *Host) Resize() *viewport.ResizeCoordinator { return h.resize }

// Dispatcher returns the input dispatcher, for hosts that add their own
// handlers.
func (h *Host) Dispatcher() *input.Dispatcher { return h.disp }

// AddArea adds a text area with the host style and a one-cell padding.
func (h *Host) AddArea(bounds ggedit.Rect, content string) *edit.TextArea {
	a := edit.NewTextArea(bounds, content, h.opts.style)
	a.SetPadding(AreaPadding)
	h.editor.Add(a)
	h.updateContent()
	h.invalidate()
	return a
}

// Fit sizes the content to the areas and fits it into the screen.
func (h *Host) Fit() float64 {
	h.updateContent()
	return h.view.Fit()
}

func (h *Host) updateContent() {
	var w, ht float64
	for _, a := range h.editor.Areas() {
		m := a.Bounds().Max()
		w, ht = max(w, m.X), max(ht, m.Y)
	}
	h.view.SetContentSize(w, ht)
}

// Quit makes Run return nil. It is safe to call from any goroutine.
func (h *Host) Quit() {
	if err := h.screen.PostEvent(tcell.NewEventInterrupt(quitSignal{})); err != nil {
		h.log.Warn("termcanvas: quit event dropped", "err", err)
	}
}

// Run draws the canvas and processes events until Quit is called, the
// user quits, or ctx is done. It returns ctx.Err() in the last case.
func (h *Host) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = h.screen.PostEvent(tcell.NewEventInterrupt(quitSignal{err: ctx.Err()}))
	})
	defer stop()

	h.Draw()
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if q, ok := interruptData(ev).(quitSignal); ok {
			return q.err
		}
		h.Handle(ev)
		if h.quit {
			return nil
		}
		if h.dirty {
			h.Draw()
		}
	}
}

func interruptData(ev tcell.Event) any {
	if ie, ok := ev.(*tcell.EventInterrupt); ok {
		return ie.Data()
	}
	return nil
}

// Handle processes one event.
func (h *Host) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.log.Debug("termcanvas: resize", "width", w, "height", ht)
		h.screen.Sync()
		for _, fn := range h.observers {
			fn()
		}
		h.invalidate()
	case *tcell.EventInterrupt:
		switch d := ev.Data().(type) {
		case *loopTimer:
			d.fire()
		case quitSignal:
			h.quit = true
		}
	}
}

func (h *Host) handleKey(ev *tcell.EventKey) {
	down, ok := keyEvent(ev)
	if !ok {
		return
	}
	if down.Key == "q" && down.Mods.Ctrl() {
		h.quit = true
		return
	}
	h.log.Debug("termcanvas: key", "key", keyName(down))
	h.disp.DispatchKey(down)
	if !down.DefaultPrevented() {
		h.command(down)
	}
	h.disp.DispatchKey(release(down))
}

// command runs the host key bindings for keys nothing else consumed.
func (h *Host) command(ev *input.KeyEvent) {
	if h.editor.Editing() || ev.Mods.Shortcut() || ev.Mods.Alt() {
		return
	}
	step := 4 / h.view.Zoom()
	switch ev.Key {
	case "+", "=", "-", "_", "0", "1":
		h.disp.DispatchKey(&input.KeyEvent{Type: input.KeyDown, Key: ev.Key, Mods: input.ModCtrl})
	case "f":
		h.Fit()
	case "g":
		h.view.ToggleGrid()
	case "h":
		h.view.ToggleGrabTool()
	case "n":
		h.editor.SetCreateMode(!h.editor.CreateMode())
		h.invalidate()
	case "q":
		h.quit = true
	case input.KeyEscape:
		h.editor.SetCreateMode(false)
		h.view.SetGrabTool(false)
		h.invalidate()
	case input.KeyArrowLeft:
		h.view.PanBy(ggedit.Pt(step, 0))
	case input.KeyArrowRight:
		h.view.PanBy(ggedit.Pt(-step, 0))
	case input.KeyArrowUp:
		h.view.PanBy(ggedit.Pt(0, step))
	case input.KeyArrowDown:
		h.view.PanBy(ggedit.Pt(0, -step))
	}
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	ptrs, wheels := h.mouse.translate(ev, h.clock.Now())
	for _, w := range wheels {
		h.disp.DispatchWheel(w)
	}
	for _, p := range ptrs {
		h.disp.DispatchPointer(p)
		if p.Type != input.PointerMove {
			h.updateContent()
		}
	}
	if _, ok := h.editor.CreatePreview(); ok {
		h.invalidate()
	}
}

func (h *Host) invalidate() { h.dirty = true }

// Close stops timers, releases every subscription and restores the
// terminal.
func (h *Host) Close() {
	h.once.Do(func() {
		if h.blink != nil {
			h.blink.Stop()
		}
		h.resize.Close()
		h.editor.Close()
		h.view.Close()
		h.disp.Close()
		h.screen.Fini()
		h.log.Info("termcanvas: host closed")
	})
}

// screenSource reports the terminal size to the resize coordinator.
type screenSource struct{ h *Host }

func (s screenSource) Size() (float64, float64) {
	w, ht := s.h.screen.Size()
	return float64(w), float64(ht)
}

func (s screenSource) Observe(fn func()) input.Subscription {
	h := s.h
	id := h.nextObs
	h.nextObs++
	h.observers[id] = fn
	return input.SubscriptionFunc(func() { delete(h.observers, id) })
}
