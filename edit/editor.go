package edit

import (
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/input"
	"github.com/gogpu/ggedit/text"
)

// ErrNilSource is returned by Attach when given no event source.
var ErrNilSource = errors.New("edit: nil input source")

// Editor is the text input controller of one canvas. It owns the text
// areas of the canvas and tracks the single active one.
type Editor struct {
	opts editorOptions
	m    text.Measurer
	log  *slog.Logger

	areas  []*TextArea
	active *TextArea
	blink  *Blink

	drag     dragState
	creating bool
	gesture  CreateGesture

	subs input.Group
}

type dragState struct {
	area   *TextArea
	anchor int
	on     bool
}

// NewEditor creates an Editor that lays text out with m. A nil m measures
// with text.FixedMeasurer.
func NewEditor(m text.Measurer, opts ...Option) *Editor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if m == nil {
		m = text.FixedMeasurer{}
	}
	log := o.logger
	if log == nil {
		log = ggedit.Logger()
	}
	return &Editor{
		opts:  o,
		m:     m,
		log:   log,
		blink: NewBlink(o.blink),
	}
}

// Measurer returns the measurer used for areas added without one.
func (e *Editor) Measurer() text.Measurer { return e.m }

// Add registers a text area. Areas added later sit on top for hit
// testing. Adding an area twice is a no-op.
func (e *Editor) Add(a *TextArea) {
	if a == nil || slices.Contains(e.areas, a) {
		return
	}
	if a.m == nil {
		a.m = e.m
		a.Reflow()
	}
	e.areas = append(e.areas, a)
}

// Remove unregisters a text area, deactivating it first when active. It
// reports whether the area was registered.
func (e *Editor) Remove(a *TextArea) bool {
	i := slices.Index(e.areas, a)
	if i < 0 {
		return false
	}
	if e.active == a {
		e.Deactivate()
	}
	e.areas = slices.Delete(e.areas, i, i+1)
	return true
}

// Areas returns the registered areas in stacking order.
func (e *Editor) Areas() []*TextArea {
	return slices.Clone(e.areas)
}

// AreaAt returns the topmost area containing the canvas point p.
func (e *Editor) AreaAt(p ggedit.Point) *TextArea {
	for i := len(e.areas) - 1; i >= 0; i-- {
		if e.areas[i].Contains(p) {
			return e.areas[i]
		}
	}
	return nil
}

// Active returns the area being edited, or nil.
func (e *Editor) Active() *TextArea { return e.active }

// Editing reports whether an area is being edited.
func (e *Editor) Editing() bool { return e.active != nil }

// SetActiveTextArea makes a the active area, registering it if needed.
// The previous area is deactivated first. Passing nil deactivates.
func (e *Editor) SetActiveTextArea(a *TextArea) {
	if a == nil {
		e.Deactivate()
		return
	}
	if a == e.active {
		return
	}
	e.Add(a)
	e.activate(a)
	e.commit(a, false)
}

func (e *Editor) activate(a *TextArea) {
	if e.active == a {
		return
	}
	e.Deactivate()
	e.active = a
	a.state.Clamp(a.Len())
	e.log.Debug("edit: area activated", "id", a.ID)
}

// Deactivate ends editing: the selection is cleared, the caret stops
// blinking and is hidden. It is a no-op when nothing is active.
func (e *Editor) Deactivate() {
	a := e.active
	if a == nil {
		return
	}
	a.state.ClearSelection()
	e.blink.Stop()
	e.active = nil
	e.drag = dragState{}
	e.placeCaret()
	e.requestRender()
	e.log.Debug("edit: area deactivated", "id", a.ID)
}

// SetText replaces the content of a and runs the editing side effects.
func (e *Editor) SetText(a *TextArea, s string) {
	if a == nil {
		return
	}
	changed := s != a.text
	a.SetText(s)
	if a == e.active {
		e.commit(a, changed)
		return
	}
	e.requestRender()
	if changed && e.opts.change != nil {
		e.opts.change(a)
	}
}

// Insert types s into the active area at the caret, replacing the
// selection. It reports whether an area was active.
func (e *Editor) Insert(s string) bool {
	a := e.active
	if a == nil {
		return false
	}
	e.commit(a, e.insert(a, s))
	return true
}

// CaretVisible reports whether the caret is drawn now.
func (e *Editor) CaretVisible() bool {
	return e.active != nil && e.blink.Visible(e.opts.now())
}

// NextBlink returns the time until the caret next toggles, or 0 when it
// does not blink.
func (e *Editor) NextBlink() time.Duration {
	return e.blink.Until(e.opts.now())
}

// Attach subscribes the editor to pointer and keyboard events from src.
// The subscriptions are released by Close.
func (e *Editor) Attach(src input.Source) error {
	if src == nil {
		return ErrNilSource
	}
	e.subs.Add(
		src.OnPointer(input.PhaseBubble, func(ev *input.PointerEvent) { e.HandlePointer(ev) }),
		src.OnKey(input.PhaseBubble, func(ev *input.KeyEvent) { e.HandleKey(ev) }),
	)
	e.log.Info("edit: editor attached", "areas", len(e.areas))
	return nil
}

// Close releases every subscription, cancels a pending create gesture and
// deactivates the active area.
func (e *Editor) Close() {
	e.subs.Close()
	e.creating = false
	e.gesture.Cancel()
	e.Deactivate()
}

// commit runs the side effects of a mutation of a, in order.
func (e *Editor) commit(a *TextArea, changed bool) {
	a.Reflow()
	if e.opts.autoHeight {
		a.bounds.Height = a.ContentHeight()
	}
	e.placeCaret()
	if a == e.active {
		e.blink.Restart(e.opts.now())
	}
	e.requestRender()
	if changed && e.opts.change != nil {
		e.opts.change(a)
	}
}

func (e *Editor) placeCaret() {
	if e.opts.caret == nil {
		return
	}
	a := e.active
	if a == nil {
		e.opts.caret(Caret{})
		return
	}
	e.opts.caret(Caret{Area: a, Pos: a.CaretPoint(), Height: a.style.LinePixels()})
}

func (e *Editor) requestRender() {
	if e.opts.render != nil {
		e.opts.render()
	}
}

func (e *Editor) toCanvas(p ggedit.Point) ggedit.Point {
	if e.opts.conv == nil {
		return p
	}
	return e.opts.conv.ScreenToCanvas(p)
}
