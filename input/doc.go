// Package input defines the DOM-style event model shared by the text editor
// and the viewport controller.
//
// Hosts translate native events into [KeyEvent], [PointerEvent] and
// [WheelEvent] values and hand them to a [Dispatcher]. Handlers subscribe in
// either the capture or the bubble phase; capture handlers run first, and any
// handler can stop propagation so later handlers never see the event.
//
// Every subscription returns a [Subscription] handle. Components collect
// their handles in a [Group] and release them all in one Close call.
package input
