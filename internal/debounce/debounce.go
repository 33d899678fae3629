// Package debounce implements a single-slot cancel-and-reschedule timer.
//
// Each Trigger replaces the pending callback, so a burst of triggers closer
// together than the interval runs the callback once, after the last one.
package debounce

import (
	"sync"
	"time"

	"github.com/gogpu/ggedit/internal/clock"
)

// Debouncer runs fn once per burst of Trigger calls. It is safe for
// concurrent use; fn runs on the clock's callback goroutine.
type Debouncer struct {
	mu       sync.Mutex
	clock    clock.Clock
	interval time.Duration
	fn       func()
	pending  clock.Timer
	gen      uint64
	closed   bool
}

// New creates a Debouncer. A nil clock means the real clock; a
// non-positive interval runs fn synchronously on every Trigger.
func New(c clock.Clock, interval time.Duration, fn func()) *Debouncer {
	if c == nil {
		c = clock.Real{}
	}
	return &Debouncer{clock: c, interval: interval, fn: fn}
}

// Trigger cancels the pending callback, if any, and schedules a new one.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.stopLocked()
	if d.interval <= 0 {
		d.mu.Unlock()
		d.fn()
		return
	}
	d.gen++
	gen := d.gen
	d.pending = d.clock.AfterFunc(d.interval, func() { d.fire(gen) })
	d.mu.Unlock()
}

// fire runs fn if gen is still the latest schedule. A timer that lost the
// race with Stop must not run a superseded callback.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.closed || gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.mu.Unlock()
	d.fn()
}

// Pending reports whether a callback is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Flush runs the pending callback now, if there is one.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.pending == nil || d.closed {
		d.mu.Unlock()
		return
	}
	d.stopLocked()
	d.mu.Unlock()
	d.fn()
}

// Cancel drops the pending callback without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Close cancels the pending callback and ignores later triggers.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.closed = true
}

func (d *Debouncer) stopLocked() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.gen++
}
