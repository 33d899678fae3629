// Package edit implements text editing on the canvas: text areas, caret and
// selection state, and the [Editor] controller that turns pointer and
// keyboard events into edits.
//
// An Editor owns a set of [TextArea] values and at most one active area.
// Several editors can coexist, each with its own active area. All methods
// run on the host's event loop; none of them are safe for concurrent use.
//
// Every mutation runs the same side effects in a fixed order before the
// handling call returns: reflow, auto-height, caret repositioning, blink
// restart, render request and, when the text changed, the change callback.
package edit
