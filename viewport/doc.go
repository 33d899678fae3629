// Package viewport implements the camera of an infinite canvas: discrete
// zoom, panning, fit-to-container, the grid overlay and resize handling.
//
// Coordinates come in two spaces. Screen points are pointer positions in
// pixels relative to the canvas element; canvas points are positions in
// the unbounded drawing space. The camera maps one to the other:
//
//	screen = ((canvas + pan) * zoom + origin) * pixelRatio
//
// [Controller.ScreenToCanvas] and [Controller.CanvasToScreen] are the only
// bridge between the two, and every pointer consumer goes through them.
//
// Pan gestures come from exactly one [DragSource] at a time. Sources are
// checked in priority order on pointer down: middle mouse, then a held
// spacebar, then the grab tool.
package viewport
