package edit

import (
	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/input"
)

// HandlePointer applies a pointer event. Only the primary button edits;
// events aimed at native form controls are ignored. It reports whether the
// event was consumed.
func (e *Editor) HandlePointer(ev *input.PointerEvent) bool {
	if ev.IsFormControl() {
		return false
	}
	p := e.toCanvas(ev.Pos)

	var handled bool
	switch ev.Type {
	case input.PointerDown:
		if ev.Button != input.ButtonLeft {
			return false
		}
		handled = e.pointerDown(p, ev.Clicks)
	case input.PointerMove:
		handled = e.pointerMove(p, ev.Buttons)
	case input.PointerUp:
		if ev.Button != input.ButtonLeft {
			return false
		}
		handled = e.pointerUp(p)
	}
	if handled {
		ev.PreventDefault()
	}
	return handled
}

func (e *Editor) pointerDown(p ggedit.Point, clicks int) bool {
	hit := e.AreaAt(p)
	if hit == nil {
		if e.creating {
			e.Deactivate()
			e.gesture.Begin(p)
			e.requestRender()
			return true
		}
		if e.active != nil {
			e.Deactivate()
			return true
		}
		return false
	}

	e.activate(hit)
	idx := hit.IndexAt(p)
	n := hit.Len()
	e.drag = dragState{}
	switch {
	case clicks >= 3:
		hit.state.Select(lineStart(hit.runes, idx), lineEnd(hit.runes, idx), n)
	case clicks == 2:
		start, end := wordAt(hit.runes, idx, e.opts.isWord)
		hit.state.Select(start, end, n)
	default:
		hit.state.SetCaret(idx, n)
		e.drag = dragState{area: hit, anchor: hit.state.caret, on: true}
		e.log.Debug("edit: drag started", "id", hit.ID, "index", idx)
	}
	e.commit(hit, false)
	return true
}

func (e *Editor) pointerMove(p ggedit.Point, buttons input.Buttons) bool {
	if e.gesture.Active() {
		e.gesture.Update(p)
		e.requestRender()
		return true
	}
	a := e.drag.area
	if !e.drag.on || a == nil || a != e.active {
		return false
	}
	if !buttons.Has(input.ButtonLeft) {
		e.drag = dragState{}
		return false
	}

	before := a.state
	idx := a.IndexAt(p)
	if idx == e.drag.anchor {
		a.state.SetCaret(idx, a.Len())
	} else {
		a.state.Select(e.drag.anchor, idx, a.Len())
	}
	if a.state != before {
		e.commit(a, false)
	}
	return true
}

func (e *Editor) pointerUp(p ggedit.Point) bool {
	if e.gesture.Active() {
		if a, ok := e.gesture.End(p); ok {
			e.Create(a)
		}
		return true
	}
	if !e.drag.on {
		return false
	}
	e.log.Debug("edit: drag ended", "id", e.drag.area.ID)
	e.drag = dragState{}
	return true
}
