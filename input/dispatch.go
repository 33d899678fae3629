package input

import "sync"

// Subscription is a handle to a registered listener.
type Subscription interface {
	// Unsubscribe removes the listener. It is safe to call more than once.
	Unsubscribe()
}

// SubscriptionFunc adapts a function to Subscription. The function runs at
// most once.
func SubscriptionFunc(f func()) Subscription {
	return &funcSub{f: f}
}

type funcSub struct {
	once sync.Once
	f    func()
}

func (s *funcSub) Unsubscribe() {
	s.once.Do(func() {
		if s.f != nil {
			s.f()
		}
	})
}

// Source is anything handlers can subscribe to. Dispatcher is the standard
// implementation.
type Source interface {
	OnKey(phase Phase, h func(*KeyEvent)) Subscription
	OnPointer(phase Phase, h func(*PointerEvent)) Subscription
	OnWheel(phase Phase, h func(*WheelEvent)) Subscription
}

// Group collects subscriptions and releases them together.
type Group struct {
	mu   sync.Mutex
	subs []Subscription
}

// Add appends subscriptions to the group. Nil handles are skipped.
func (g *Group) Add(subs ...Subscription) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, s := range subs {
		if s != nil {
			g.subs = append(g.subs, s)
		}
	}
}

// Len returns the number of held subscriptions.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.subs)
}

// Close unsubscribes every handle in reverse order and empties the group.
func (g *Group) Close() {
	g.mu.Lock()
	subs := g.subs
	g.subs = nil
	g.mu.Unlock()
	for i := len(subs) - 1; i >= 0; i-- {
		subs[i].Unsubscribe()
	}
}

type listener[E any] struct {
	h       func(E)
	removed bool
}

// listeners is one phase's handler list for one event type.
type listeners[E any] struct {
	list []*listener[E]
}

func (l *listeners[E]) add(mu *sync.Mutex, h func(E)) Subscription {
	ent := &listener[E]{h: h}
	l.list = append(l.list, ent)
	return SubscriptionFunc(func() {
		mu.Lock()
		defer mu.Unlock()
		ent.removed = true
		for i, e := range l.list {
			if e == ent {
				l.list = append(l.list[:i:i], l.list[i+1:]...)
				break
			}
		}
	})
}

func (l *listeners[E]) snapshot() []*listener[E] {
	return append([]*listener[E](nil), l.list...)
}

// Dispatcher routes events to subscribed handlers. Handlers for one event
// run in capture order, then bubble order, each phase in registration order.
// A handler that calls StopPropagation ends the walk.
//
// Handlers may subscribe or unsubscribe while an event is being dispatched;
// a handler removed mid-dispatch is not called for that event.
type Dispatcher struct {
	mu     sync.Mutex
	closed bool

	key     [2]listeners[*KeyEvent]
	pointer [2]listeners[*PointerEvent]
	wheel   [2]listeners[*WheelEvent]
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

var noop = SubscriptionFunc(nil)

// OnKey implements Source.
func (d *Dispatcher) OnKey(phase Phase, h func(*KeyEvent)) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || h == nil {
		return noop
	}
	return d.key[phase&1].add(&d.mu, h)
}

// OnPointer implements Source.
func (d *Dispatcher) OnPointer(phase Phase, h func(*PointerEvent)) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || h == nil {
		return noop
	}
	return d.pointer[phase&1].add(&d.mu, h)
}

// OnWheel implements Source.
func (d *Dispatcher) OnWheel(phase Phase, h func(*WheelEvent)) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || h == nil {
		return noop
	}
	return d.wheel[phase&1].add(&d.mu, h)
}

// Close drops every handler. Later subscriptions are no-ops.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.key = [2]listeners[*KeyEvent]{}
	d.pointer = [2]listeners[*PointerEvent]{}
	d.wheel = [2]listeners[*WheelEvent]{}
}

// Count returns the number of live handlers across all event types.
func (d *Dispatcher) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for i := 0; i < 2; i++ {
		n += len(d.key[i].list) + len(d.pointer[i].list) + len(d.wheel[i].list)
	}
	return n
}

// DispatchKey delivers e and reports whether a handler stopped propagation.
func (d *Dispatcher) DispatchKey(e *KeyEvent) bool {
	d.mu.Lock()
	capture, bubble := d.key[PhaseCapture].snapshot(), d.key[PhaseBubble].snapshot()
	d.mu.Unlock()
	return run(&d.mu, e, capture, bubble)
}

// DispatchPointer delivers e and reports whether a handler stopped
// propagation.
func (d *Dispatcher) DispatchPointer(e *PointerEvent) bool {
	d.mu.Lock()
	capture, bubble := d.pointer[PhaseCapture].snapshot(), d.pointer[PhaseBubble].snapshot()
	d.mu.Unlock()
	return run(&d.mu, e, capture, bubble)
}

// DispatchWheel delivers e and reports whether a handler stopped
// propagation.
func (d *Dispatcher) DispatchWheel(e *WheelEvent) bool {
	d.mu.Lock()
	capture, bubble := d.wheel[PhaseCapture].snapshot(), d.wheel[PhaseBubble].snapshot()
	d.mu.Unlock()
	return run(&d.mu, e, capture, bubble)
}

func run[E Event](mu *sync.Mutex, e E, phases ...[]*listener[E]) bool {
	for _, list := range phases {
		for _, l := range list {
			mu.Lock()
			removed := l.removed
			mu.Unlock()
			if removed {
				continue
			}
			l.h(e)
			if e.PropagationStopped() {
				return true
			}
		}
	}
	return false
}
