// Package ggedit is the canvas interaction core of the course-builder: a text
// editing engine and a camera engine that sit on a retained-mode 2D canvas
// instead of native text widgets.
//
// # Overview
//
// The root package only carries the shared geometry (Point, Rect, Matrix) and
// the package logger. The engines live in sub-packages:
//
//   - zoom: the discrete zoom table and snap/step logic
//   - device: viewport classification and fit math
//   - text: line wrapping, caret hit-testing and glyph measurement backends
//   - edit: text areas, caret/selection state and the keyboard/mouse editor
//   - input: DOM-style events and capture/bubble dispatch
//   - viewport: camera state, pan sources, grid overlay, resize coordination
//   - config: TOML or YAML settings turned into component options
//   - integration/termcanvas: a terminal host built on tcell
//
// The ggedit command (cmd/ggedit) wraps these for the terminal.
//
// # Quick Start
//
//	bus := input.NewDispatcher()
//
//	view := viewport.New(
//	    viewport.WithContentSize(1920, 1080),
//	    viewport.WithContainerSize(1280, 720),
//	)
//	view.Attach(bus)
//
//	ed := edit.NewEditor(text.NewFaceMeasurer(),
//	    edit.WithConverter(view),
//	    edit.WithRenderFunc(host.Redraw),
//	)
//	ed.Attach(bus)
//	defer ed.Close()
//
// # Coordinate System
//
// Canvas-local coordinates are what text areas, carets and hit-testing use.
// Screen coordinates are what pointer events carry. The viewport controller
// is the only bridge between the two:
//
//	screen = ((canvas + pan) * zoom + origin) * pixelRatio
//
// # Threading
//
// Editors and viewport controllers are not safe for concurrent use. Every
// event is handled to completion, side effects included, before the call
// returns.
package ggedit
