package termcanvas

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/edit"
	"github.com/gogpu/ggedit/zoom"
)

// Draw repaints the whole screen and schedules the next caret toggle.
func (h *Host) Draw() {
	s := h.screen
	s.SetStyle(h.opts.theme.Background)
	s.Clear()
	w, ht := s.Size()

	h.drawGrid(w, ht)
	active := h.editor.Active()
	for _, a := range h.editor.Areas() {
		h.drawArea(a, a == active)
	}
	if r, ok := h.editor.CreatePreview(); ok {
		h.drawBox(r, h.opts.theme.Preview)
	}
	if h.opts.status {
		h.drawStatus(w, ht)
	}
	h.placeCursor()
	s.Show()
	h.dirty = false
	h.scheduleBlink()
}

// cell returns the terminal cell of a canvas point.
func (h *Host) cell(p ggedit.Point) (int, int) {
	sp := h.view.CanvasToScreen(p)
	return int(math.Floor(sp.X + 0.5)), int(math.Floor(sp.Y + 0.5))
}

func (h *Host) drawGrid(w, ht int) {
	xs, ys := h.view.Grid().Lines(float64(w), float64(ht))
	st := h.opts.theme.Grid
	for _, y := range ys {
		for _, x := range xs {
			h.screen.SetContent(int(x), int(y), '·', nil, st)
		}
	}
}

func (h *Host) drawBox(r ggedit.Rect, st tcell.Style) {
	x0, y0 := h.cell(r.Min())
	x1, y1 := h.cell(r.Max())
	x1, y1 = x1-1, y1-1
	if x1 <= x0 || y1 <= y0 {
		return
	}
	s := h.screen
	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, '─', nil, st)
		s.SetContent(x, y1, '─', nil, st)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, '│', nil, st)
		s.SetContent(x1, y, '│', nil, st)
	}
	s.SetContent(x0, y0, '┌', nil, st)
	s.SetContent(x1, y0, '┐', nil, st)
	s.SetContent(x0, y1, '└', nil, st)
	s.SetContent(x1, y1, '┘', nil, st)
}

func (h *Host) drawArea(a *edit.TextArea, active bool) {
	border := h.opts.theme.Border
	if active {
		border = h.opts.theme.Active
	}
	h.drawBox(a.Bounds(), border)

	m := h.editor.Measurer()
	style := a.Style()
	lp := style.LinePixels()
	for i, ln := range a.Lines() {
		x := 0.0
		for _, r := range ln.Text {
			cx, cy := h.cell(a.Canvas(ggedit.Pt(x, float64(i)*lp)))
			h.screen.SetContent(cx, cy, r, nil, h.opts.theme.Text)
			x += m.Measure(string(r), style)
		}
	}

	sel := h.opts.theme.Selection
	for _, r := range a.SelectionRects() {
		x0, y0 := h.cell(r.Min())
		x1, y1 := h.cell(r.Max())
		for y := y0; y < max(y1, y0+1); y++ {
			for x := x0; x < max(x1, x0+1); x++ {
				mainc, comb, _, _ := h.screen.GetContent(x, y)
				h.screen.SetContent(x, y, mainc, comb, sel)
			}
		}
	}
}

func (h *Host) drawStatus(w, ht int) {
	mode := ""
	switch {
	case h.editor.Editing():
		mode = "editing"
	case h.editor.CreateMode():
		mode = "create"
	case h.view.GrabTool():
		mode = "grab"
	}
	grid := "off"
	if h.view.Grid().Visible {
		grid = "on"
	}
	line := fmt.Sprintf(" %s  grid %s  %s", zoom.Percent(h.view.Zoom()), grid, mode)
	st := h.opts.theme.Status
	y := ht - 1
	for x := 0; x < w; x++ {
		h.screen.SetContent(x, y, ' ', nil, st)
	}
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		h.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func (h *Host) placeCursor() {
	a := h.editor.Active()
	if a == nil || !h.editor.CaretVisible() {
		h.screen.HideCursor()
		return
	}
	x, y := h.cell(a.CaretPoint())
	h.screen.ShowCursor(x, y)
}

// scheduleBlink arms a redraw for the next caret toggle.
func (h *Host) scheduleBlink() {
	if h.blink != nil {
		h.blink.Stop()
		h.blink = nil
	}
	if !h.editor.Editing() {
		return
	}
	if d := h.editor.NextBlink(); d > 0 {
		h.blink = h.clock.AfterFunc(d, h.invalidate)
	}
}
