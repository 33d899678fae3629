package termcanvas

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/ggedit/internal/clock"
)

// loopClock runs timer callbacks on the event loop: an expired timer posts
// an interrupt and the loop invokes the callback when it dequeues it.
type loopClock struct {
	screen tcell.Screen
	now    func() time.Time
	onDrop func(error)
}

type loopTimer struct {
	mu    sync.Mutex
	t     *time.Timer
	f     func()
	done  bool
	clock *loopClock
}

var _ clock.Clock = (*loopClock)(nil)

func (c *loopClock) Now() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

func (c *loopClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	lt := &loopTimer{f: f, clock: c}
	lt.mu.Lock()
	defer lt.mu.Unlock()
	lt.t = time.AfterFunc(d, lt.post)
	return lt
}

func (t *loopTimer) post() {
	if err := t.clock.screen.PostEvent(tcell.NewEventInterrupt(t)); err != nil && t.clock.onDrop != nil {
		t.clock.onDrop(err)
	}
}

// Stop implements clock.Timer. A timer whose interrupt is already queued
// is still stopped.
func (t *loopTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.t.Stop()
	return true
}

// fire runs the callback unless the timer was stopped. It is called on
// the event loop.
func (t *loopTimer) fire() {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return
	}
	t.done = true
	t.mu.Unlock()
	t.f()
}
