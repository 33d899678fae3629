package viewport

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/input"
	"github.com/gogpu/ggedit/internal/clock"
	"github.com/gogpu/ggedit/zoom"
)

func pointer(typ input.PointerType, x, y float64, b input.Button) *input.PointerEvent {
	ev := &input.PointerEvent{Type: typ, Pos: ggedit.Pt(x, y), Button: b}
	switch b {
	case input.ButtonLeft:
		ev.Buttons = input.ButtonsLeft
	case input.ButtonMiddle:
		ev.Buttons = input.ButtonsMiddle
	}
	return ev
}

func key(typ input.KeyType, k string, mods input.Modifiers) *input.KeyEvent {
	return &input.KeyEvent{Type: typ, Key: k, Mods: mods}
}

func TestZoomInSequence(t *testing.T) {
	c := New()
	want := []float64{1.25, 1.5, 1.75, 2, 2.25}
	for i, w := range want {
		c.ZoomIn()
		if c.Zoom() != w {
			t.Fatalf("ZoomIn #%d = %v, want %v", i+1, c.Zoom(), w)
		}
	}
}

func TestZoomSaturates(t *testing.T) {
	c := New()
	for i := 0; i < 30; i++ {
		c.ZoomIn()
	}
	if c.Zoom() != zoom.Max {
		t.Errorf("zoom after many ZoomIn = %v", c.Zoom())
	}
	for i := 0; i < 30; i++ {
		c.ZoomOut()
	}
	if c.Zoom() != zoom.Min {
		t.Errorf("zoom after many ZoomOut = %v", c.Zoom())
	}
}

func TestSetZoomSnaps(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{1.37, 1.25},
		{1.38, 1.5},
		{100, zoom.Max},
		{-1, zoom.Min},
		{math.NaN(), zoom.Default},
	}
	for _, tt := range tests {
		c := New()
		c.SetZoom(tt.in)
		if c.Zoom() != tt.want {
			t.Errorf("SetZoom(%v) = %v, want %v", tt.in, c.Zoom(), tt.want)
		}
	}
}

func TestGrabToolPan(t *testing.T) {
	c := New()
	c.SetZoom(2)
	c.SetGrabTool(true)
	start := c.Pan()

	if !c.HandlePointer(pointer(input.PointerDown, 100, 100, input.ButtonLeft)) {
		t.Fatal("grab press not handled")
	}
	if c.Camera().Drag != DragGrabTool {
		t.Fatalf("drag = %v, want grab-tool", c.Camera().Drag)
	}
	c.HandlePointer(pointer(input.PointerMove, 150, 130, input.ButtonLeft))

	if got := c.Pan().Sub(start); !near(got, ggedit.Pt(25, 15)) {
		t.Errorf("pan delta = %v, want (25,15)", got)
	}
	c.HandlePointer(pointer(input.PointerUp, 150, 130, input.ButtonLeft))
	if c.Camera().Drag != DragNone {
		t.Errorf("drag after release = %v", c.Camera().Drag)
	}
}

func TestPanAccountsForPixelRatio(t *testing.T) {
	c := New(WithPixelRatio(2))
	c.HandlePointer(pointer(input.PointerDown, 0, 0, input.ButtonMiddle))
	c.HandlePointer(pointer(input.PointerMove, 40, -20, input.ButtonMiddle))
	if !near(c.Pan(), ggedit.Pt(20, -10)) {
		t.Errorf("pan = %v, want (20,-10)", c.Pan())
	}
}

func TestPanIsUnbounded(t *testing.T) {
	c := New()
	c.HandlePointer(pointer(input.PointerDown, 0, 0, input.ButtonMiddle))
	c.HandlePointer(pointer(input.PointerMove, -1e6, 1e6, input.ButtonMiddle))
	if !near(c.Pan(), ggedit.Pt(-1e6, 1e6)) {
		t.Errorf("pan = %v", c.Pan())
	}
}

func TestDragSourcePriority(t *testing.T) {
	tests := []struct {
		name   string
		grab   bool
		space  bool
		button input.Button
		want   DragSource
	}{
		{"middle beats everything", true, true, input.ButtonMiddle, DragMiddleMouse},
		{"space beats grab", true, true, input.ButtonLeft, DragSpacebar},
		{"grab alone", true, false, input.ButtonLeft, DragGrabTool},
		{"plain left", false, false, input.ButtonLeft, DragNone},
		{"right never pans", true, true, input.ButtonRight, DragNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.SetGrabTool(tt.grab)
			if tt.space {
				c.HandleKey(key(input.KeyDown, input.KeySpace, 0))
			}
			handled := c.HandlePointer(pointer(input.PointerDown, 5, 5, tt.button))
			if got := c.Camera().Drag; got != tt.want {
				t.Errorf("drag = %v, want %v", got, tt.want)
			}
			if handled != (tt.want != DragNone) {
				t.Errorf("handled = %v", handled)
			}
		})
	}
}

func TestSecondPressDuringDragIsIgnored(t *testing.T) {
	c := New()
	c.SetGrabTool(true)
	c.HandlePointer(pointer(input.PointerDown, 0, 0, input.ButtonMiddle))
	if c.HandlePointer(pointer(input.PointerDown, 0, 0, input.ButtonLeft)) {
		t.Error("second press handled during a drag")
	}
	if c.HandlePointer(pointer(input.PointerUp, 0, 0, input.ButtonLeft)) {
		t.Error("release of a different button ended the drag")
	}
	if c.Camera().Drag != DragMiddleMouse {
		t.Errorf("drag = %v", c.Camera().Drag)
	}
	c.HandlePointer(pointer(input.PointerUp, 0, 0, input.ButtonMiddle))
	if c.Camera().Drag != DragNone {
		t.Errorf("drag = %v after middle release", c.Camera().Drag)
	}
}

func TestSpacebarHold(t *testing.T) {
	c := New()
	c.HandleKey(key(input.KeyDown, input.KeySpace, 0))
	if !c.SpaceHeld() {
		t.Fatal("space not held")
	}
	c.HandlePointer(pointer(input.PointerDown, 0, 0, input.ButtonLeft))
	c.HandleKey(key(input.KeyUp, input.KeySpace, 0))
	if c.SpaceHeld() || c.Camera().Drag != DragNone {
		t.Errorf("after space release held=%v drag=%v", c.SpaceHeld(), c.Camera().Drag)
	}
}

func TestSpacebarWhileEditing(t *testing.T) {
	editing := true
	c := New(WithEditingFunc(func() bool { return editing }))
	if c.HandleKey(key(input.KeyDown, input.KeySpace, 0)) || c.SpaceHeld() {
		t.Error("space captured while editing text")
	}
	editing = false
	ev := key(input.KeyDown, input.KeySpace, 0)
	ev.From = input.TargetFormControl
	if c.HandleKey(ev) || c.SpaceHeld() {
		t.Error("space captured from a form control")
	}
}

func TestZoomShortcuts(t *testing.T) {
	c := New(WithContentSize(2000, 1000), WithContainerSize(1000, 800), WithFitPadding(0))

	ev := key(input.KeyDown, "=", input.ModCtrl)
	if !c.HandleKey(ev) || !ev.PropagationStopped() || !ev.DefaultPrevented() {
		t.Fatal("Ctrl+= not captured")
	}
	if c.Zoom() != 1.25 {
		t.Errorf("after Ctrl+= zoom = %v", c.Zoom())
	}
	c.HandleKey(key(input.KeyDown, "+", input.ModMeta))
	c.HandleKey(key(input.KeyDown, "-", input.ModCtrl))
	if c.Zoom() != 1.25 {
		t.Errorf("after Cmd++ and Ctrl+- zoom = %v", c.Zoom())
	}

	c.PanBy(ggedit.Pt(30, 30))
	c.HandleKey(key(input.KeyDown, "0", input.ModCtrl))
	if c.Zoom() != 1 || c.Pan() != (ggedit.Point{}) {
		t.Errorf("after Ctrl+0 zoom=%v pan=%v", c.Zoom(), c.Pan())
	}

	c.HandleKey(key(input.KeyDown, "1", input.ModCtrl))
	if c.Zoom() != 0.5 {
		t.Errorf("after Ctrl+1 zoom = %v, want 0.5", c.Zoom())
	}

	if c.HandleKey(key(input.KeyDown, "=", 0)) {
		t.Error("= without modifier handled")
	}
	ev = key(input.KeyDown, "=", input.ModCtrl)
	ev.From = input.TargetFormControl
	if c.HandleKey(ev) {
		t.Error("shortcut handled while a form control has focus")
	}
}

func TestFitToContainer(t *testing.T) {
	tests := []struct {
		name                   string
		contentW, contentH     float64
		containerW, containerH float64
		padding                float64
		want                   float64
	}{
		{"small content never upscales", 200, 100, 1000, 800, 40, 1},
		{"large content snaps down", 1600, 1200, 1000, 800, 40, 0.5},
		{"exact fit", 1000, 800, 1000, 800, 0, 1},
		{"padding eats container", 100, 100, 60, 60, 40, zoom.Min},
		{"huge content clamps", 1e6, 1e6, 1000, 800, 0, zoom.Min},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(WithContentSize(tt.contentW, tt.contentH), WithContainerSize(tt.containerW, tt.containerH))
			got := c.FitToContainer(tt.padding)
			if got != tt.want || c.Zoom() != tt.want {
				t.Errorf("FitToContainer = %v (zoom %v), want %v", got, c.Zoom(), tt.want)
			}
			if got > 1 {
				t.Errorf("fit upscaled to %v", got)
			}
		})
	}
}

func TestFitCentresContent(t *testing.T) {
	c := New(WithContentSize(1600, 1200), WithContainerSize(1000, 800))
	c.FitToContainer(40)
	centre := c.CanvasToScreen(ggedit.Pt(800, 600))
	if !near(centre, ggedit.Pt(500, 400)) {
		t.Errorf("content centre on screen = %v, want (500,400)", centre)
	}
}

func TestZoomAtKeepsPointFixed(t *testing.T) {
	c := New(WithPixelRatio(2), WithOrigin(ggedit.Pt(10, 20)))
	c.PanBy(ggedit.Pt(-37, 12))
	p := ggedit.Pt(300, 240)
	before := c.ScreenToCanvas(p)

	c.ZoomAt(2.5, p)
	if c.Zoom() != 2.5 {
		t.Fatalf("zoom = %v", c.Zoom())
	}
	if after := c.ScreenToCanvas(p); !near(after, before) {
		t.Errorf("canvas point under pointer moved from %v to %v", before, after)
	}
}

func TestWheel(t *testing.T) {
	c := New()
	ev := &input.WheelEvent{Pos: ggedit.Pt(100, 100), DeltaY: -120, Mods: input.ModCtrl}
	if !c.HandleWheel(ev) {
		t.Fatal("Ctrl+wheel not handled")
	}
	if c.Zoom() != 1.25 {
		t.Errorf("zoom after Ctrl+wheel up = %v", c.Zoom())
	}
	c.HandleWheel(&input.WheelEvent{Pos: ggedit.Pt(100, 100), DeltaY: 120, Mods: input.ModMeta})
	if c.Zoom() != 1 {
		t.Errorf("zoom after Cmd+wheel down = %v", c.Zoom())
	}

	c.ResetView()
	c.SetZoom(2)
	c.HandleWheel(&input.WheelEvent{DeltaX: 10, DeltaY: 40})
	if !near(c.Pan(), ggedit.Pt(-5, -20)) {
		t.Errorf("pan after wheel = %v, want (-5,-20)", c.Pan())
	}
	c.HandleWheel(&input.WheelEvent{DeltaY: 40, Mods: input.ModShift})
	if !near(c.Pan(), ggedit.Pt(-25, -20)) {
		t.Errorf("pan after shift+wheel = %v, want (-25,-20)", c.Pan())
	}
	if c.HandleWheel(&input.WheelEvent{}) {
		t.Error("zero wheel handled")
	}
}

func TestGridFollowsEveryMutation(t *testing.T) {
	var grids []GridOverlay
	var transforms []ggedit.Matrix
	c := New(
		WithGridFunc(func(g GridOverlay) { grids = append(grids, g) }),
		WithTransformFunc(func(m ggedit.Matrix) { transforms = append(transforms, m) }),
	)

	c.ZoomIn()
	c.PanBy(ggedit.Pt(10, 0))
	c.ToggleGrid()
	if len(grids) != 3 || len(transforms) != 3 {
		t.Fatalf("grid callbacks = %d, transform callbacks = %d, want 3 each", len(grids), len(transforms))
	}
	last := grids[len(grids)-1]
	if last.Transform != c.Transform() {
		t.Error("grid transform differs from the camera transform")
	}
	if last.CellSize != DefaultGridCell/1.25 {
		t.Errorf("CellSize = %v", last.CellSize)
	}
	if last.Visible {
		t.Error("grid still visible after toggle")
	}
}

func TestResetViewRestoresGridDefault(t *testing.T) {
	c := New(WithGrid(false))
	c.SetGrid(true)
	c.SetGrabTool(true)
	c.ResetView()
	if c.Camera().Grid {
		t.Error("ResetView did not restore the configured grid flag")
	}
	if !c.GrabTool() {
		t.Error("ResetView changed the tool selection")
	}
}

func TestPanStopsEditorFromSeeingEvents(t *testing.T) {
	d := input.NewDispatcher()
	c := New()
	if err := c.Attach(d); err != nil {
		t.Fatal(err)
	}
	editorSaw := 0
	d.OnPointer(input.PhaseBubble, func(*input.PointerEvent) { editorSaw++ })

	d.DispatchPointer(pointer(input.PointerDown, 0, 0, input.ButtonMiddle))
	d.DispatchPointer(pointer(input.PointerMove, 10, 10, input.ButtonMiddle))
	d.DispatchPointer(pointer(input.PointerUp, 10, 10, input.ButtonMiddle))
	if editorSaw != 0 {
		t.Errorf("bubble handler saw %d pan events", editorSaw)
	}
	d.DispatchPointer(pointer(input.PointerDown, 0, 0, input.ButtonLeft))
	if editorSaw != 1 {
		t.Errorf("bubble handler saw %d plain presses, want 1", editorSaw)
	}

	c.Close()
	if d.Count() != 1 {
		t.Errorf("Count after Close = %d, want only the bubble handler", d.Count())
	}
	if err := c.Attach(nil); !errors.Is(err, ErrNilInput) {
		t.Errorf("Attach(nil) = %v", err)
	}
}

func TestAttachResizeRefits(t *testing.T) {
	fake := clock.NewFake(time.Unix(0, 0))
	rc, err := NewResizeCoordinator(ResizeManual, nil, WithResizeClock(fake))
	if err != nil {
		t.Fatal(err)
	}
	c := New(WithContentSize(1600, 1200), WithFitPadding(0))
	c.AttachResize(rc, true)

	rc.Resize(800, 600)
	fake.Advance(DefaultThrottle)
	if s := c.ContainerSize(); s.Width != 800 || s.Height != 600 {
		t.Errorf("container = %+v", s)
	}
	if c.Zoom() != 0.5 {
		t.Errorf("zoom after refit = %v, want 0.5", c.Zoom())
	}

	c.Close()
	rc.Resize(3200, 2400)
	fake.Advance(DefaultThrottle)
	if c.ContainerSize().Width != 800 {
		t.Error("closed controller still follows resizes")
	}
}
