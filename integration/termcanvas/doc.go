// Package termcanvas hosts an editable canvas in a terminal.
//
// A Host owns a tcell screen, an input dispatcher, a viewport controller
// and a text editor. It turns tcell events into input events, feeds them
// through the dispatcher and redraws the canvas after every change. One
// terminal cell is one screen pixel.
//
//	screen, _ := tcell.NewScreen()
//	h, err := termcanvas.New(screen)
//	if err != nil {
//		return err
//	}
//	defer h.Close()
//	h.AddArea(ggedit.Rect{X: 2, Y: 2, Width: 30, Height: 4}, "hello")
//	return h.Run(ctx)
//
// Terminals report no key releases, so every key press is followed by a
// synthetic release. Shortcuts that need Ctrl with punctuation (zoom) are
// also bound to the bare keys while no text area is being edited.
package termcanvas
