package termcanvas

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/input"
)

var namedKeys = map[tcell.Key]string{
	tcell.KeyLeft:       input.KeyArrowLeft,
	tcell.KeyRight:      input.KeyArrowRight,
	tcell.KeyUp:         input.KeyArrowUp,
	tcell.KeyDown:       input.KeyArrowDown,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyEsc:        input.KeyEscape,
}

func modifiers(m tcell.ModMask) input.Modifiers {
	var mods input.Modifiers
	if m&tcell.ModShift != 0 {
		mods |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= input.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= input.ModMeta
	}
	return mods
}

// keyEvent translates a tcell key press. It reports false for keys with no
// input equivalent.
func keyEvent(ev *tcell.EventKey) (*input.KeyEvent, bool) {
	mods := modifiers(ev.Modifiers())
	k := ev.Key()
	var name string
	switch {
	case k == tcell.KeyRune:
		name = string(ev.Rune())
	case namedKeys[k] != "":
		// Checked before the Ctrl range: Tab, Enter and Backspace share
		// codes with Ctrl+I, Ctrl+M and Ctrl+H.
		name = namedKeys[k]
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		name = string(rune('a' + k - tcell.KeyCtrlA))
		mods |= input.ModCtrl
	default:
		return nil, false
	}
	return &input.KeyEvent{Type: input.KeyDown, Key: name, Mods: mods}, true
}

// release returns the synthetic key release for a press.
func release(down *input.KeyEvent) *input.KeyEvent {
	return &input.KeyEvent{Type: input.KeyUp, Key: down.Key, Mods: down.Mods}
}

// wheelStep is the pan distance of one wheel notch, in cells.
const wheelStep = 3

const pointerButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

var buttonMap = []struct {
	mask tcell.ButtonMask
	b    input.Button
	held input.Buttons
}{
	{tcell.Button1, input.ButtonLeft, input.ButtonsLeft},
	{tcell.Button3, input.ButtonMiddle, input.ButtonsMiddle},
	{tcell.Button2, input.ButtonRight, input.ButtonsRight},
}

// mouseTracker turns tcell's button-state reports into pointer transitions.
type mouseTracker struct {
	prev   tcell.ButtonMask
	pos    ggedit.Point
	clicks input.ClickCounter
}

// translate returns the pointer and wheel events implied by ev, releases
// first.
func (t *mouseTracker) translate(ev *tcell.EventMouse, now time.Time) (ptrs []*input.PointerEvent, wheels []*input.WheelEvent) {
	x, y := ev.Position()
	pos := ggedit.Pt(float64(x), float64(y))
	mods := modifiers(ev.Modifiers())
	btns := ev.Buttons()

	if btns&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
		w := &input.WheelEvent{Pos: pos, Mods: mods}
		switch {
		case btns&tcell.WheelUp != 0:
			w.DeltaY = -wheelStep
		case btns&tcell.WheelDown != 0:
			w.DeltaY = wheelStep
		}
		switch {
		case btns&tcell.WheelLeft != 0:
			w.DeltaX = -wheelStep
		case btns&tcell.WheelRight != 0:
			w.DeltaX = wheelStep
		}
		wheels = append(wheels, w)
	}

	cur := btns & pointerButtons
	held := func(mask tcell.ButtonMask) input.Buttons {
		var bs input.Buttons
		for _, m := range buttonMap {
			if mask&m.mask != 0 {
				bs |= m.held
			}
		}
		return bs
	}

	released := t.prev &^ cur
	pressed := cur &^ t.prev
	for _, m := range buttonMap {
		if released&m.mask != 0 {
			ptrs = append(ptrs, &input.PointerEvent{
				Type: input.PointerUp, Pos: pos, Button: m.b, Buttons: held(cur), Mods: mods,
			})
		}
	}
	for _, m := range buttonMap {
		if pressed&m.mask != 0 {
			clicks := 1
			if m.b == input.ButtonLeft {
				clicks = t.clicks.Press(now, pos)
			}
			ptrs = append(ptrs, &input.PointerEvent{
				Type: input.PointerDown, Pos: pos, Button: m.b, Buttons: held(cur), Mods: mods, Clicks: clicks,
			})
		}
	}
	if released == 0 && pressed == 0 && pos != t.pos {
		ptrs = append(ptrs, &input.PointerEvent{
			Type: input.PointerMove, Pos: pos, Buttons: held(cur), Mods: mods,
		})
	}
	t.prev, t.pos = cur, pos
	return ptrs, wheels
}

// keyName renders a key event for logs.
func keyName(ev *input.KeyEvent) string {
	var b strings.Builder
	for _, p := range []struct {
		on   bool
		name string
	}{
		{ev.Mods.Ctrl(), "Ctrl+"},
		{ev.Mods.Alt(), "Alt+"},
		{ev.Mods.Meta(), "Meta+"},
		{ev.Mods.Shift(), "Shift+"},
	} {
		if p.on {
			b.WriteString(p.name)
		}
	}
	if ev.Key == input.KeySpace {
		b.WriteString("Space")
	} else {
		b.WriteString(ev.Key)
	}
	return b.String()
}
