package edit

import (
	"github.com/google/uuid"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/text"
)

// DefaultPadding is the inner padding of new text areas in canvas pixels.
const DefaultPadding = 8

// TextArea is a box of editable text on the canvas. Bounds are in canvas
// coordinates; the text is laid out inside them after Padding is removed
// from each side.
//
// Lines are cached and recomputed whenever the text, width or style
// changes.
type TextArea struct {
	ID uuid.UUID

	bounds  ggedit.Rect
	style   text.Style
	padding float64
	m       text.Measurer

	text  string
	runes []rune
	lines []text.LineInfo
	state State
}

// NewTextArea returns a text area with a fresh ID. A nil measurer is
// replaced with the editor's measurer when the area is added to one.
func NewTextArea(bounds ggedit.Rect, content string, style text.Style) *TextArea {
	a := &TextArea{
		ID:      uuid.New(),
		bounds:  bounds,
		style:   style.Normalize(),
		padding: DefaultPadding,
		text:    content,
		runes:   []rune(content),
	}
	a.Reflow()
	return a
}

// Text returns the content.
func (a *TextArea) Text() string { return a.text }

// Len returns the content length in runes.
func (a *TextArea) Len() int { return len(a.runes) }

// SetText replaces the content, clamps the caret and selection, and
// reflows. It does not run editor side effects; use Editor.SetText for
// that.
func (a *TextArea) SetText(s string) {
	a.text = s
	a.runes = []rune(s)
	a.state.Clamp(len(a.runes))
	a.Reflow()
}

// Bounds returns the canvas rectangle of the area.
func (a *TextArea) Bounds() ggedit.Rect { return a.bounds }

// SetBounds moves or resizes the area and reflows when the width changed.
func (a *TextArea) SetBounds(r ggedit.Rect) {
	widthChanged := r.Width != a.bounds.Width
	a.bounds = r
	if widthChanged {
		a.Reflow()
	}
}

// Style returns the font style.
func (a *TextArea) Style() text.Style { return a.style }

// SetStyle changes the font style and reflows.
func (a *TextArea) SetStyle(st text.Style) {
	a.style = st.Normalize()
	a.Reflow()
}

// Padding returns the inner padding.
func (a *TextArea) Padding() float64 { return a.padding }

// SetPadding changes the inner padding and reflows. Negative values are
// treated as zero.
func (a *TextArea) SetPadding(p float64) {
	a.padding = max(p, 0)
	a.Reflow()
}

// State returns the caret and selection.
func (a *TextArea) State() State { return a.state }

// Caret returns the caret index.
func (a *TextArea) Caret() int { return a.state.caret }

// SelectedText returns the text of a non-empty selection, or "".
func (a *TextArea) SelectedText() string {
	start, end, ok := a.state.Range()
	if !ok {
		return ""
	}
	return string(a.runes[start:end])
}

// Lines returns the wrapped lines from the last reflow.
func (a *TextArea) Lines() []text.LineInfo { return a.lines }

// TextWidth is the wrapping width: the bounds width minus padding.
func (a *TextArea) TextWidth() float64 {
	return max(a.bounds.Width-2*a.padding, 0)
}

// Reflow recomputes the wrapped lines.
func (a *TextArea) Reflow() {
	a.lines = text.Wrap(a.text, a.TextWidth(), a.style, a.measurer())
}

// ContentHeight returns the height the area needs for its lines, padding
// included, never less than two lines.
func (a *TextArea) ContentHeight() float64 {
	return text.OptimalHeight(len(a.lines), a.style) + 2*a.padding
}

// Contains reports whether the canvas point p hits the area.
func (a *TextArea) Contains(p ggedit.Point) bool {
	return a.bounds.Contains(p)
}

// Local converts a canvas point to text-local coordinates.
func (a *TextArea) Local(p ggedit.Point) ggedit.Point {
	return p.Sub(a.origin())
}

// Canvas converts a text-local point to canvas coordinates.
func (a *TextArea) Canvas(p ggedit.Point) ggedit.Point {
	return p.Add(a.origin())
}

// IndexAt returns the caret index closest to the canvas point p.
func (a *TextArea) IndexAt(p ggedit.Point) int {
	l := a.Local(p)
	return text.IndexAt(a.lines, l.X, l.Y, a.style, a.measurer())
}

// CaretPoint returns the canvas position of the top of the caret.
func (a *TextArea) CaretPoint() ggedit.Point {
	return a.Canvas(text.CaretPosition(a.lines, a.state.caret, a.style, a.measurer()))
}

// SelectionRects returns the canvas rectangles covering the selection.
func (a *TextArea) SelectionRects() []ggedit.Rect {
	start, end, ok := a.state.Range()
	if !ok {
		return nil
	}
	rects := text.SelectionRects(a.lines, start, end, a.style, a.measurer())
	o := a.origin()
	for i := range rects {
		rects[i].X += o.X
		rects[i].Y += o.Y
	}
	return rects
}

func (a *TextArea) origin() ggedit.Point {
	return ggedit.Pt(a.bounds.X+a.padding, a.bounds.Y+a.padding)
}

func (a *TextArea) measurer() text.Measurer {
	if a.m == nil {
		return text.FixedMeasurer{}
	}
	return a.m
}

// replace swaps runes[start:end] for ins and puts the caret after the
// inserted text. It reports whether the content changed.
func (a *TextArea) replace(start, end int, ins []rune) bool {
	n := len(a.runes)
	start, end = clamp(start, n), clamp(end, n)
	if start > end {
		start, end = end, start
	}
	if start == end && len(ins) == 0 {
		return false
	}
	out := make([]rune, 0, n-(end-start)+len(ins))
	out = append(out, a.runes[:start]...)
	out = append(out, ins...)
	out = append(out, a.runes[end:]...)
	a.runes = out
	a.text = string(out)
	a.state.SetCaret(start+len(ins), len(out))
	return true
}
