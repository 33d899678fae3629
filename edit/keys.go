package edit

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggedit/input"
)

// HandleKey applies a key press to the active area. Releases, events aimed
// at native form controls and events with no active area are ignored. It
// reports whether the key was consumed; consumed keys have their default
// action prevented.
func (e *Editor) HandleKey(ev *input.KeyEvent) bool {
	a := e.active
	if a == nil || ev.Type != input.KeyDown || ev.IsFormControl() {
		return false
	}
	if ev.Key == input.KeyEscape {
		e.Deactivate()
		ev.PreventDefault()
		return true
	}

	handled, changed := e.applyKey(a, ev.Key, ev.Mods)
	if !handled {
		return false
	}
	ev.PreventDefault()
	e.commit(a, changed)
	return true
}

func (e *Editor) applyKey(a *TextArea, key string, mods input.Modifiers) (handled, changed bool) {
	caret := a.state.caret
	shift, word := mods.Shift(), mods.Shortcut()

	switch key {
	case input.KeyArrowLeft:
		dest := caret - 1
		if word {
			dest = wordLeft(a.runes, caret, e.opts.isWord)
		}
		e.move(a, dest, shift, false)
	case input.KeyArrowRight:
		dest := caret + 1
		if word {
			dest = wordRight(a.runes, caret, e.opts.isWord)
		}
		e.move(a, dest, shift, false)
	case input.KeyArrowUp:
		e.move(a, lineUp(a.runes, caret), shift, true)
	case input.KeyArrowDown:
		e.move(a, lineDown(a.runes, caret), shift, true)
	case input.KeyHome:
		dest := lineStart(a.runes, caret)
		if word {
			dest = 0
		}
		e.move(a, dest, shift, true)
	case input.KeyEnd:
		dest := lineEnd(a.runes, caret)
		if word {
			dest = a.Len()
		}
		e.move(a, dest, shift, true)
	case input.KeyBackspace:
		return true, e.deleteBackward(a, word)
	case input.KeyDelete:
		return true, e.deleteForward(a, word)
	case input.KeyEnter:
		return true, e.insert(a, "\n")
	case input.KeyTab:
		return true, e.insert(a, strings.Repeat(" ", e.opts.tabWidth))
	default:
		if mods.Shortcut() {
			return e.shortcut(a, strings.ToLower(key))
		}
		if utf8.RuneCountInString(key) != 1 {
			return false, false
		}
		return true, e.insert(a, key)
	}
	return true, false
}

func (e *Editor) shortcut(a *TextArea, key string) (handled, changed bool) {
	switch key {
	case "a":
		a.state.Select(0, a.Len(), a.Len())
		return true, false
	case "c":
		e.copySelection(a)
		return true, false
	case "x":
		if !e.copySelection(a) {
			return true, false
		}
		start, end, _ := a.state.Range()
		return true, a.replace(start, end, nil)
	case "v":
		if e.opts.clipboard == nil {
			return false, false
		}
		s, err := e.opts.clipboard.ReadText()
		if err != nil {
			e.log.Warn("edit: clipboard read failed", "err", err)
			return true, false
		}
		return true, e.insert(a, s)
	}
	return false, false
}

// copySelection writes the selected text to the clipboard. It reports
// whether anything was written.
func (e *Editor) copySelection(a *TextArea) bool {
	sel := a.SelectedText()
	if sel == "" || e.opts.clipboard == nil {
		return false
	}
	if err := e.opts.clipboard.WriteText(sel); err != nil {
		e.log.Warn("edit: clipboard write failed", "err", err)
		return false
	}
	return true
}

// move puts the caret at dest. With extend, the selection grows from the
// current anchor; when farther is set the anchor becomes whichever end of
// the existing selection lies farther from dest.
func (e *Editor) move(a *TextArea, dest int, extend, farther bool) {
	n := a.Len()
	dest = clamp(dest, n)
	if !extend {
		a.state.SetCaret(dest, n)
		return
	}
	anchor := a.state.caret
	if sel, ok := a.state.Selection(); ok {
		anchor = sel.Anchor
		if farther && distance(sel.Focus, dest) > distance(sel.Anchor, dest) {
			anchor = sel.Focus
		}
	}
	a.state.Select(anchor, dest, n)
}

// insert replaces the selection, or inserts at the caret, with the NFC
// form of s.
func (e *Editor) insert(a *TextArea, s string) bool {
	ins := []rune(norm.NFC.String(s))
	start, end, ok := a.state.Range()
	if !ok {
		start, end = a.state.caret, a.state.caret
	}
	changed := a.replace(start, end, ins)
	if !changed {
		a.state.ClearSelection()
	}
	return changed
}

func (e *Editor) deleteBackward(a *TextArea, word bool) bool {
	if start, end, ok := a.state.Range(); ok {
		return a.replace(start, end, nil)
	}
	a.state.ClearSelection()
	caret := a.state.caret
	if caret == 0 {
		return false
	}
	from := caret - 1
	if word {
		from = wordLeft(a.runes, caret, e.opts.isWord)
	}
	return a.replace(from, caret, nil)
}

func (e *Editor) deleteForward(a *TextArea, word bool) bool {
	if start, end, ok := a.state.Range(); ok {
		return a.replace(start, end, nil)
	}
	a.state.ClearSelection()
	caret := a.state.caret
	if caret == a.Len() {
		return false
	}
	to := caret + 1
	if word {
		to = wordRight(a.runes, caret, e.opts.isWord)
	}
	return a.replace(caret, to, nil)
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
