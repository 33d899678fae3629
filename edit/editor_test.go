package edit

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/input"
	"github.com/gogpu/ggedit/text"
)

// Layout used throughout: FixedMeasurer at the default 16px size gives
// 8px per rune and 19.2px lines; areas have 8px padding.
const (
	runeW = 8.0
	lineH = 16 * 1.2
)

type trace struct {
	now     time.Time
	events  []string
	carets  []Caret
	changed []*TextArea
}

func newTestEditor(opts ...Option) (*Editor, *trace) {
	tr := &trace{now: time.Unix(1000, 0)}
	base := []Option{
		WithRenderFunc(func() { tr.events = append(tr.events, "render") }),
		WithChangeFunc(func(a *TextArea) {
			tr.events = append(tr.events, "change")
			tr.changed = append(tr.changed, a)
		}),
		WithCaretFunc(func(c Caret) {
			tr.events = append(tr.events, "caret")
			tr.carets = append(tr.carets, c)
		}),
		WithClock(func() time.Time { return tr.now }),
	}
	return NewEditor(text.FixedMeasurer{}, append(base, opts...)...), tr
}

func newArea(x, y float64, content string) *TextArea {
	return NewTextArea(ggedit.Rect{X: x, Y: y, Width: 416, Height: 100}, content, text.Style{})
}

func keyDown(k string, mods input.Modifiers) *input.KeyEvent {
	return &input.KeyEvent{Type: input.KeyDown, Key: k, Mods: mods}
}

// at returns the canvas point over caret column col of line 0 of a.
func at(a *TextArea, col float64) ggedit.Point {
	b := a.Bounds()
	return ggedit.Pt(b.X+a.Padding()+col*runeW, b.Y+a.Padding()+lineH/2)
}

func down(p ggedit.Point, clicks int) *input.PointerEvent {
	return &input.PointerEvent{Type: input.PointerDown, Pos: p, Button: input.ButtonLeft, Buttons: input.ButtonsLeft, Clicks: clicks}
}

func activeWithCaret(t *testing.T, ed *Editor, a *TextArea, caret int) {
	t.Helper()
	ed.SetActiveTextArea(a)
	a.state.SetCaret(caret, a.Len())
}

func TestShiftEndSelectsToLineEnd(t *testing.T) {
	ed, _ := newTestEditor()
	a := newArea(0, 0, "hello world")
	activeWithCaret(t, ed, a, 5)

	if !ed.HandleKey(keyDown(input.KeyEnd, input.ModShift)) {
		t.Fatal("Shift+End not handled")
	}
	sel, ok := a.State().Selection()
	if !ok || sel.Start() != 5 || sel.End() != 11 {
		t.Errorf("selection = %+v (ok=%v), want [5,11)", sel, ok)
	}
	if a.Caret() != 11 {
		t.Errorf("caret = %d, want 11", a.Caret())
	}
	if got := a.SelectedText(); got != " world" {
		t.Errorf("SelectedText() = %q", got)
	}

	// The anchor becomes the endpoint farther from the destination.
	ed.HandleKey(keyDown(input.KeyHome, input.ModShift))
	sel, _ = a.State().Selection()
	if sel != (Selection{Anchor: 11, Focus: 0}) {
		t.Errorf("after Shift+Home selection = %+v, want {11 0}", sel)
	}
}

func TestArrowKeys(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		caret  int
		key    string
		mods   input.Modifiers
		caretW int
		sel    *Selection
	}{
		{"left", "hello", 3, input.KeyArrowLeft, 0, 2, nil},
		{"left at start", "hello", 0, input.KeyArrowLeft, 0, 0, nil},
		{"right at end", "hello", 5, input.KeyArrowRight, 0, 5, nil},
		{"shift left", "hello", 3, input.KeyArrowLeft, input.ModShift, 2, &Selection{3, 2}},
		{"shift right", "hello", 3, input.KeyArrowRight, input.ModShift, 4, &Selection{3, 4}},
		{"ctrl right", "foo bar baz", 0, input.KeyArrowRight, input.ModCtrl, 3, nil},
		{"cmd left", "foo bar baz", 11, input.KeyArrowLeft, input.ModMeta, 8, nil},
		{"ctrl shift right", "foo bar", 3, input.KeyArrowRight, input.ModCtrl | input.ModShift, 7, &Selection{3, 7}},
		{"up on first line", "abc\nde", 2, input.KeyArrowUp, 0, 0, nil},
		{"down on last line", "abc\nde", 5, input.KeyArrowDown, 0, 6, nil},
		{"down keeps column", "abc\ndefg", 2, input.KeyArrowDown, 0, 6, nil},
		{"home", "abc\ndefg", 6, input.KeyHome, 0, 4, nil},
		{"end", "abc\ndefg", 1, input.KeyEnd, 0, 3, nil},
		{"ctrl home", "abc\ndefg", 6, input.KeyHome, input.ModCtrl, 0, nil},
		{"ctrl end", "abc\ndefg", 1, input.KeyEnd, input.ModCtrl, 8, nil},
		{"shift down", "abc\ndefg", 1, input.KeyArrowDown, input.ModShift, 5, &Selection{1, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed, _ := newTestEditor()
			a := newArea(0, 0, tt.text)
			activeWithCaret(t, ed, a, tt.caret)
			ed.HandleKey(keyDown(tt.key, tt.mods))

			if a.Caret() != tt.caretW {
				t.Errorf("caret = %d, want %d", a.Caret(), tt.caretW)
			}
			sel, ok := a.State().Selection()
			switch {
			case tt.sel == nil && ok:
				t.Errorf("unexpected selection %+v", sel)
			case tt.sel != nil && (!ok || sel != *tt.sel):
				t.Errorf("selection = %+v (ok=%v), want %+v", sel, ok, *tt.sel)
			}
		})
	}
}

func TestPlainArrowClearsSelection(t *testing.T) {
	ed, _ := newTestEditor()
	a := newArea(0, 0, "hello world")
	ed.SetActiveTextArea(a)
	a.state.Select(2, 5, a.Len())

	ed.HandleKey(keyDown(input.KeyArrowRight, 0))
	if a.State().HasSelection() {
		t.Error("selection survived plain ArrowRight")
	}
	if a.Caret() != 6 {
		t.Errorf("caret = %d, want 6", a.Caret())
	}
}

func TestEditingKeys(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		caret int
		sel   *Selection
		key   string
		mods  input.Modifiers
		want  string
		wantC int
	}{
		{"type", "helo", 3, nil, "l", 0, "hello", 4},
		{"type replaces selection", "hello world", 5, &Selection{0, 5}, "J", 0, "J world", 1},
		{"space", "ab", 1, nil, " ", 0, "a b", 2},
		{"shifted character", "ab", 2, nil, "C", input.ModShift, "abC", 3},
		{"backspace", "abc", 2, nil, input.KeyBackspace, 0, "ac", 1},
		{"backspace at start", "abc", 0, nil, input.KeyBackspace, 0, "abc", 0},
		{"backspace selection", "abcdef", 1, &Selection{4, 1}, input.KeyBackspace, 0, "aef", 1},
		{"delete", "abc", 1, nil, input.KeyDelete, 0, "ac", 1},
		{"delete at end", "abc", 3, nil, input.KeyDelete, 0, "abc", 3},
		{"delete selection", "abcdef", 0, &Selection{2, 5}, input.KeyDelete, 0, "abf", 2},
		{"ctrl backspace", "foo bar", 7, nil, input.KeyBackspace, input.ModCtrl, "foo ", 4},
		{"ctrl delete", "foo bar", 0, nil, input.KeyDelete, input.ModCtrl, " bar", 0},
		{"enter", "ab", 1, nil, input.KeyEnter, 0, "a\nb", 2},
		{"tab", "ab", 1, nil, input.KeyTab, 0, "a    b", 5},
		{"unknown named key", "ab", 1, nil, "F5", 0, "ab", 1},
		{"ctrl letter without binding", "ab", 1, nil, "q", input.ModCtrl, "ab", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed, _ := newTestEditor()
			a := newArea(0, 0, tt.text)
			activeWithCaret(t, ed, a, tt.caret)
			if tt.sel != nil {
				a.state.Select(tt.sel.Anchor, tt.sel.Focus, a.Len())
			}
			ed.HandleKey(keyDown(tt.key, tt.mods))
			if a.Text() != tt.want {
				t.Errorf("text = %q, want %q", a.Text(), tt.want)
			}
			if a.Caret() != tt.wantC {
				t.Errorf("caret = %d, want %d", a.Caret(), tt.wantC)
			}
		})
	}
}

func TestInsertNormalizesToNFC(t *testing.T) {
	ed, _ := newTestEditor()
	a := newArea(0, 0, "caf")
	activeWithCaret(t, ed, a, 3)

	ed.Insert("e\u0301")
	if a.Text() != "caf\u00e9" {
		t.Errorf("text = %+q, want NFC form", a.Text())
	}
	if a.Caret() != 4 || a.Len() != 4 {
		t.Errorf("caret=%d len=%d, want 4/4", a.Caret(), a.Len())
	}
}

func TestSelectAllAndClipboard(t *testing.T) {
	clip := &MemoryClipboard{}
	ed, _ := newTestEditor(WithClipboard(clip))
	a := newArea(0, 0, "hello world")
	ed.SetActiveTextArea(a)

	ed.HandleKey(keyDown("a", input.ModCtrl))
	if sel, ok := a.State().Selection(); !ok || sel.Start() != 0 || sel.End() != 11 {
		t.Fatalf("Ctrl+A selection = %+v ok=%v", sel, ok)
	}

	a.state.Select(0, 5, a.Len())
	ed.HandleKey(keyDown("c", input.ModMeta))
	if s, _ := clip.ReadText(); s != "hello" {
		t.Fatalf("clipboard after copy = %q", s)
	}
	if a.Text() != "hello world" {
		t.Fatalf("copy changed text to %q", a.Text())
	}

	ed.HandleKey(keyDown("x", input.ModCtrl))
	if a.Text() != " world" || a.Caret() != 0 {
		t.Fatalf("after cut text=%q caret=%d", a.Text(), a.Caret())
	}

	ed.HandleKey(keyDown(input.KeyEnd, 0))
	ed.HandleKey(keyDown("V", input.ModCtrl|input.ModShift))
	if a.Text() != " worldhello" || a.Caret() != 11 {
		t.Errorf("after paste text=%q caret=%d", a.Text(), a.Caret())
	}
}

func TestPasteWithoutClipboardIsIgnored(t *testing.T) {
	ed, _ := newTestEditor()
	a := newArea(0, 0, "abc")
	ed.SetActiveTextArea(a)
	if ed.HandleKey(keyDown("v", input.ModCtrl)) {
		t.Error("Ctrl+V handled without a clipboard")
	}
}

func TestKeysIgnoredWhenNotEditing(t *testing.T) {
	ed, _ := newTestEditor()
	a := newArea(0, 0, "abc")
	ed.Add(a)
	if ed.HandleKey(keyDown("x", 0)) {
		t.Error("key handled with no active area")
	}

	ed.SetActiveTextArea(a)
	ev := keyDown("x", 0)
	ev.From = input.TargetFormControl
	if ed.HandleKey(ev) {
		t.Error("key aimed at a form control was handled")
	}
	if ed.HandleKey(&input.KeyEvent{Type: input.KeyUp, Key: "x"}) {
		t.Error("key release was handled")
	}
	if a.Text() != "abc" {
		t.Errorf("text changed to %q", a.Text())
	}

	ev = keyDown("y", 0)
	if !ed.HandleKey(ev) || !ev.DefaultPrevented() {
		t.Error("handled key did not prevent the default action")
	}
}

func TestEscapeDeactivates(t *testing.T) {
	ed, tr := newTestEditor()
	a := newArea(0, 0, "abc")
	ed.SetActiveTextArea(a)
	ed.HandleKey(keyDown(input.KeyEscape, 0))
	if ed.Active() != nil || ed.Editing() {
		t.Error("Escape did not deactivate")
	}
	if last := tr.carets[len(tr.carets)-1]; last.Area != nil {
		t.Error("caret not hidden after Escape")
	}
}

func TestSideEffectOrder(t *testing.T) {
	ed, tr := newTestEditor()
	a := newArea(0, 0, "abc")
	activeWithCaret(t, ed, a, 3)

	tr.events = nil
	ed.HandleKey(keyDown("d", 0))
	want := []string{"caret", "render", "change"}
	if !slices.Equal(tr.events, want) {
		t.Errorf("typing events = %v, want %v", tr.events, want)
	}
	if len(tr.changed) != 1 || tr.changed[0] != a {
		t.Errorf("change callback got %v", tr.changed)
	}

	tr.events = nil
	ed.HandleKey(keyDown(input.KeyArrowLeft, 0))
	want = []string{"caret", "render"}
	if !slices.Equal(tr.events, want) {
		t.Errorf("movement events = %v, want %v", tr.events, want)
	}

	tr.events = nil
	ed.HandleKey(keyDown(input.KeyBackspace, input.ModCtrl))
	ed.HandleKey(keyDown(input.KeyBackspace, 0))
	if slices.Contains(tr.events[3:], "change") {
		t.Errorf("no-op backspace fired change: %v", tr.events)
	}
}

func TestCaretCallbackPosition(t *testing.T) {
	ed, tr := newTestEditor()
	a := newArea(100, 50, "hello world")
	a.state.SetCaret(5, a.Len())
	ed.SetActiveTextArea(a)

	c := tr.carets[len(tr.carets)-1]
	if c.Area != a {
		t.Fatalf("caret area = %v", c.Area)
	}
	if c.Pos != ggedit.Pt(148, 58) {
		t.Errorf("caret pos = %v, want (148,58)", c.Pos)
	}
	if math.Abs(c.Height-lineH) > 1e-9 {
		t.Errorf("caret height = %v", c.Height)
	}
}

func TestAutoHeight(t *testing.T) {
	ed, _ := newTestEditor()
	a := NewTextArea(ggedit.Rect{Width: 96, Height: 10}, "", text.Style{})
	ed.SetActiveTextArea(a)
	if h := a.Bounds().Height; math.Abs(h-(2*lineH+16)) > 1e-9 {
		t.Errorf("empty area height = %v, want two lines", h)
	}

	ed.Insert("aaaa bbbb cccc dddd eeee")
	if len(a.Lines()) != 3 {
		t.Fatalf("lines = %d, want 3", len(a.Lines()))
	}
	if h := a.Bounds().Height; math.Abs(h-(3*lineH+16)) > 1e-9 {
		t.Errorf("height = %v, want %v", h, 3*lineH+16)
	}

	fixed, _ := newTestEditor(WithAutoHeight(false))
	b := NewTextArea(ggedit.Rect{Width: 96, Height: 10}, "", text.Style{})
	fixed.SetActiveTextArea(b)
	fixed.Insert("aaaa bbbb cccc dddd eeee")
	if b.Bounds().Height != 10 {
		t.Errorf("height changed to %v with auto-height off", b.Bounds().Height)
	}
}

func TestDoubleClickSelectsWord(t *testing.T) {
	for _, col := range []float64{0.1, 1.4, 2.5, 4.6, 4.9} {
		ed, _ := newTestEditor()
		a := newArea(100, 50, "fast brown fox")
		ed.Add(a)

		// col is measured from the start of "brown".
		ed.HandlePointer(down(at(a, 5+col), 2))
		sel, ok := a.State().Selection()
		if !ok || sel.Start() != 5 || sel.End() != 10 {
			t.Errorf("double-click at brown+%.1f: selection = %+v ok=%v, want [5,10)", col, sel, ok)
		}
		if ed.Active() != a {
			t.Error("double-click did not activate the area")
		}
	}
}

func TestTripleClickSelectsLine(t *testing.T) {
	ed, _ := newTestEditor()
	a := newArea(0, 0, "first line\nsecond")
	ed.Add(a)
	ed.HandlePointer(down(at(a, 3), 3))
	sel, _ := a.State().Selection()
	if sel.Start() != 0 || sel.End() != 10 {
		t.Errorf("triple-click selection = %+v, want [0,10)", sel)
	}
}

func TestDragSelectsThroughDispatcher(t *testing.T) {
	d := input.NewDispatcher()
	ed, _ := newTestEditor()
	if err := ed.Attach(d); err != nil {
		t.Fatal(err)
	}
	a := newArea(0, 0, "hello world")
	ed.Add(a)

	d.DispatchPointer(down(at(a, 2), 1))
	if ed.Active() != a || a.Caret() != 2 {
		t.Fatalf("after down active=%v caret=%d", ed.Active() == a, a.Caret())
	}
	d.DispatchPointer(&input.PointerEvent{Type: input.PointerMove, Pos: at(a, 7), Buttons: input.ButtonsLeft})
	sel, ok := a.State().Selection()
	if !ok || sel != (Selection{Anchor: 2, Focus: 7}) || a.Caret() != 7 {
		t.Fatalf("drag selection = %+v ok=%v caret=%d", sel, ok, a.Caret())
	}
	d.DispatchPointer(&input.PointerEvent{Type: input.PointerUp, Pos: at(a, 7), Button: input.ButtonLeft})

	// Moves after release do not extend the selection.
	d.DispatchPointer(&input.PointerEvent{Type: input.PointerMove, Pos: at(a, 9), Buttons: input.ButtonsLeft})
	if sel, _ := a.State().Selection(); sel.Focus != 7 {
		t.Errorf("selection moved after release: %+v", sel)
	}

	d.DispatchKey(keyDown("X", input.ModShift))
	if a.Text() != "heXorld" {
		t.Errorf("typing over drag selection gave %q", a.Text())
	}

	ed.Close()
	if d.Count() != 0 {
		t.Errorf("%d handlers left after Close", d.Count())
	}
	if ed.Active() != nil {
		t.Error("Close left an active area")
	}
}

func TestSwitchingAreasDoesNotLeakState(t *testing.T) {
	ed, tr := newTestEditor()
	first := newArea(0, 0, "alpha")
	second := newArea(0, 200, "beta")
	ed.Add(first)
	ed.Add(second)

	ed.HandlePointer(down(at(first, 2), 1))
	ed.HandleKey(keyDown("a", input.ModCtrl))
	if !first.State().HasSelection() {
		t.Fatal("setup: no selection in first area")
	}

	tr.now = tr.now.Add(time.Second)
	ed.HandlePointer(down(at(second, 1), 1))
	if first.State().HasSelection() {
		t.Error("first area kept its selection after switching")
	}
	if ed.Active() != second {
		t.Fatal("second area not active")
	}
	if !ed.CaretVisible() {
		t.Error("caret blink not restarted for the new area")
	}

	ed.HandlePointer(down(ggedit.Pt(2000, 2000), 1))
	if ed.Active() != nil {
		t.Error("click on empty canvas did not deactivate")
	}
	if ed.CaretVisible() || ed.blink.Running() {
		t.Error("blink still running after deactivation")
	}
	if last := tr.carets[len(tr.carets)-1]; last.Area != nil {
		t.Error("caret not hidden after deactivation")
	}
}

func TestIndependentEditors(t *testing.T) {
	ed1, _ := newTestEditor()
	ed2, _ := newTestEditor()
	a, b := newArea(0, 0, "one"), newArea(0, 0, "two")
	ed1.SetActiveTextArea(a)
	ed2.SetActiveTextArea(b)
	ed1.Deactivate()
	if ed2.Active() != b {
		t.Error("deactivating one editor affected another")
	}
}

func TestPointerIgnoresOtherButtonsAndFormControls(t *testing.T) {
	ed, _ := newTestEditor()
	a := newArea(0, 0, "abc")
	ed.Add(a)

	ev := down(at(a, 1), 1)
	ev.Button = input.ButtonMiddle
	if ed.HandlePointer(ev) || ed.Active() != nil {
		t.Error("middle button activated an area")
	}
	ev = down(at(a, 1), 1)
	ev.From = input.TargetFormControl
	if ed.HandlePointer(ev) || ed.Active() != nil {
		t.Error("form control press activated an area")
	}
	if ed.HandlePointer(down(ggedit.Pt(900, 900), 1)) {
		t.Error("press on empty canvas with nothing active reported handled")
	}
}

func TestConverterMapsScreenPoints(t *testing.T) {
	// Screen is the canvas at zoom 2.
	conv := ConverterFunc(func(p ggedit.Point) ggedit.Point { return p.Div(2) })
	ed, _ := newTestEditor(WithConverter(conv))
	a := newArea(0, 0, "hello")
	ed.Add(a)
	ed.HandlePointer(down(at(a, 3).Mul(2), 1))
	if ed.Active() != a || a.Caret() != 3 {
		t.Errorf("active=%v caret=%d, want caret 3", ed.Active() == a, a.Caret())
	}
}

func TestRemoveActiveArea(t *testing.T) {
	ed, _ := newTestEditor()
	a := newArea(0, 0, "abc")
	ed.SetActiveTextArea(a)
	if !ed.Remove(a) {
		t.Fatal("Remove() = false")
	}
	if ed.Active() != nil || len(ed.Areas()) != 0 {
		t.Error("removed area still active or registered")
	}
	if ed.Remove(a) {
		t.Error("second Remove() = true")
	}
}

func TestSetTextOnInactiveArea(t *testing.T) {
	ed, tr := newTestEditor()
	a := newArea(0, 0, "abc")
	ed.Add(a)
	ed.SetText(a, "abcdef")
	if !slices.Equal(tr.events, []string{"render", "change"}) {
		t.Errorf("events = %v", tr.events)
	}
	tr.events = nil
	ed.SetText(a, "abcdef")
	if slices.Contains(tr.events, "change") {
		t.Error("identical SetText fired change")
	}
}

func TestAttachNilSource(t *testing.T) {
	ed, _ := newTestEditor()
	if err := ed.Attach(nil); !errors.Is(err, ErrNilSource) {
		t.Errorf("Attach(nil) = %v, want ErrNilSource", err)
	}
}

func TestCreateGestureThroughEditor(t *testing.T) {
	ed, _ := newTestEditor()
	ed.SetCreateMode(true)

	ed.HandlePointer(down(ggedit.Pt(500, 500), 1))
	ed.HandlePointer(&input.PointerEvent{Type: input.PointerMove, Pos: ggedit.Pt(700, 600), Buttons: input.ButtonsLeft})
	if r, ok := ed.CreatePreview(); !ok || r != (ggedit.Rect{X: 500, Y: 500, Width: 200, Height: 100}) {
		t.Fatalf("preview = %+v ok=%v", r, ok)
	}
	ed.HandlePointer(&input.PointerEvent{Type: input.PointerUp, Pos: ggedit.Pt(700, 600), Button: input.ButtonLeft})

	areas := ed.Areas()
	if len(areas) != 1 {
		t.Fatalf("areas = %d, want 1", len(areas))
	}
	a := areas[0]
	if ed.Active() != a {
		t.Error("created area not active")
	}
	if b := a.Bounds(); b.X != 500 || b.Y != 500 || b.Width != 200 {
		t.Errorf("bounds = %+v", b)
	}

	// A click without a drag makes a default-size box at the press point.
	ed.HandlePointer(down(ggedit.Pt(10, 10), 1))
	ed.HandlePointer(&input.PointerEvent{Type: input.PointerUp, Pos: ggedit.Pt(12, 12), Button: input.ButtonLeft})
	areas = ed.Areas()
	if len(areas) != 2 {
		t.Fatalf("areas = %d, want 2", len(areas))
	}
	if b := areas[1].Bounds(); b.X != 10 || b.Y != 10 || b.Width != DefaultCreateWidth {
		t.Errorf("click-created bounds = %+v", b)
	}
}

func TestCaretStaysInRange(t *testing.T) {
	keys := []struct {
		key  string
		mods input.Modifiers
	}{
		{input.KeyArrowLeft, 0}, {input.KeyArrowRight, input.ModShift},
		{input.KeyArrowUp, 0}, {input.KeyArrowDown, input.ModShift},
		{input.KeyHome, input.ModShift}, {input.KeyEnd, 0},
		{input.KeyArrowLeft, input.ModCtrl | input.ModShift}, {input.KeyArrowRight, input.ModCtrl},
		{input.KeyBackspace, 0}, {input.KeyDelete, input.ModCtrl},
		{input.KeyEnter, 0}, {input.KeyTab, 0},
		{"a", input.ModCtrl}, {"x", 0}, {" ", 0}, {"é", 0},
	}

	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, 99))
		ed, _ := newTestEditor()
		a := NewTextArea(ggedit.Rect{Width: 120, Height: 40}, "lorem ipsum\ndolor sit amet", text.Style{})
		ed.SetActiveTextArea(a)

		for step := 0; step < 200; step++ {
			if rng.IntN(10) == 0 {
				p := ggedit.Pt(rng.Float64()*140-10, rng.Float64()*120-10)
				ed.HandlePointer(down(p, 1+rng.IntN(3)))
				if ed.Active() == nil {
					ed.SetActiveTextArea(a)
				}
			} else {
				k := keys[rng.IntN(len(keys))]
				ed.HandleKey(keyDown(k.key, k.mods))
			}

			st := a.State()
			n := a.Len()
			if st.Caret() < 0 || st.Caret() > n {
				t.Fatalf("seed %d step %d: caret %d outside [0,%d]", seed, step, st.Caret(), n)
			}
			if sel, ok := st.Selection(); ok {
				if sel.Start() < 0 || sel.End() > n || sel.Start() > sel.End() {
					t.Fatalf("seed %d step %d: selection %+v invalid for len %d", seed, step, sel, n)
				}
				if sel.Focus != st.Caret() {
					t.Fatalf("seed %d step %d: caret %d not at focus %+v", seed, step, st.Caret(), sel)
				}
			}
		}
	}
}
