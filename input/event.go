package input

import (
	"time"

	"github.com/gogpu/ggedit"
)

// Phase is the propagation phase a handler subscribes to.
type Phase uint8

const (
	// PhaseBubble is the normal handling phase.
	PhaseBubble Phase = iota
	// PhaseCapture runs before every bubble handler.
	PhaseCapture
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseCapture {
		return "capture"
	}
	return "bubble"
}

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta // Cmd on macOS
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool { return m&ModAlt != 0 }
func (m Modifiers) Meta() bool { return m&ModMeta != 0 }

// Shortcut reports whether the platform shortcut modifier (Ctrl or Cmd) is
// held.
func (m Modifiers) Shortcut() bool { return m&(ModCtrl|ModMeta) != 0 }

// Target describes what had focus (keyboard) or was hit (pointer) when the
// event was produced.
type Target uint8

const (
	// TargetCanvas is the drawing surface.
	TargetCanvas Target = iota
	// TargetFormControl is a native input, textarea or contenteditable
	// element. Canvas handlers leave these events alone.
	TargetFormControl
)

// Event is implemented by every event type.
type Event interface {
	Target() Target
	StopPropagation()
	PropagationStopped() bool
	PreventDefault()
	DefaultPrevented() bool
}

// Base carries the propagation state common to all events. Hosts set
// From when constructing an event.
type Base struct {
	From Target

	stopped   bool
	prevented bool
}

func (b *Base) Target() Target { return b.From }
func (b *Base) StopPropagation() { b.stopped = true }
func (b *Base) PropagationStopped() bool { return b.stopped }
func (b *Base) PreventDefault() { b.prevented = true }
func (b *Base) DefaultPrevented() bool { return b.prevented }
func (b *Base) IsFormControl() bool { return b.From == TargetFormControl }

// KeyType distinguishes key presses from releases.
type KeyType uint8

const (
	KeyDown KeyType = iota
	KeyUp
)

// Key names follow the DOM KeyboardEvent.key values. Printable keys carry
// the character itself ("a", "A", " ", "é").
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyBackspace  = "Backspace"
	KeyDelete     = "Delete"
	KeyEnter      = "Enter"
	KeyTab        = "Tab"
	KeyEscape     = "Escape"
	KeySpace      = " "
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Base
	Type   KeyType
	Key    string
	Mods   Modifiers
	Repeat bool
}

// Button identifies a pointer button using DOM numbering.
type Button int8

const (
	ButtonLeft   Button = 0
	ButtonMiddle Button = 1
	ButtonRight  Button = 2
)

// Buttons is the DOM bitmask of buttons held during an event.
type Buttons uint8

const (
	ButtonsLeft   Buttons = 1
	ButtonsRight  Buttons = 2
	ButtonsMiddle Buttons = 4
)

// Has reports whether b is held.
func (bs Buttons) Has(b Button) bool {
	switch b {
	case ButtonLeft:
		return bs&ButtonsLeft != 0
	case ButtonMiddle:
		return bs&ButtonsMiddle != 0
	case ButtonRight:
		return bs&ButtonsRight != 0
	}
	return false
}

// PointerType is the pointer event kind.
type PointerType uint8

const (
	PointerDown PointerType = iota
	PointerMove
	PointerUp
)

func (t PointerType) String() string {
	switch t {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	}
	return "unknown"
}

// PointerEvent is a mouse, pen or touch event in screen pixels relative to
// the canvas element.
type PointerEvent struct {
	Base
	Type    PointerType
	Pos     ggedit.Point
	Button  Button
	Buttons Buttons
	Mods    Modifiers
	// Clicks is the consecutive click count for PointerDown (1, 2, 3...).
	Clicks int
}

// WheelEvent is a scroll wheel or trackpad event.
type WheelEvent struct {
	Base
	Pos            ggedit.Point
	DeltaX, DeltaY float64
	Mods           Modifiers
}

// ClickCounter turns a stream of presses into consecutive click counts for
// hosts whose native events do not carry one.
type ClickCounter struct {
	// Interval is the longest gap between presses of one sequence.
	Interval time.Duration
	// Slop is the farthest a press may land from the previous one.
	Slop float64

	last  time.Time
	pos   ggedit.Point
	count int
}

// DefaultClickInterval and DefaultClickSlop match common desktop settings.
const (
	DefaultClickInterval = 500 * time.Millisecond
	DefaultClickSlop     = 5.0
)

// Press records a press at p and returns its click count.
func (c *ClickCounter) Press(now time.Time, p ggedit.Point) int {
	interval, slop := c.Interval, c.Slop
	if interval <= 0 {
		interval = DefaultClickInterval
	}
	if slop <= 0 {
		slop = DefaultClickSlop
	}
	if c.count > 0 && now.Sub(c.last) <= interval && p.Distance(c.pos) <= slop {
		c.count++
	} else {
		c.count = 1
	}
	c.last = now
	c.pos = p
	return c.count
}

// Reset forgets the current sequence.
func (c *ClickCounter) Reset() { c.count = 0 }
