package edit

import "time"

// DefaultBlinkInterval is the caret on/off half-period.
const DefaultBlinkInterval = 530 * time.Millisecond

// Blink computes caret visibility from the time of the last restart. It
// holds no timer; hosts ask Until for the next toggle and schedule a
// redraw themselves.
type Blink struct {
	interval time.Duration
	since    time.Time
	running  bool
}

// NewBlink returns a stopped Blink. A non-positive interval keeps the
// caret solid while running.
func NewBlink(interval time.Duration) *Blink {
	return &Blink{interval: interval}
}

// Restart shows the caret and starts a new on/off cycle at now.
func (b *Blink) Restart(now time.Time) {
	b.since = now
	b.running = true
}

// Stop hides the caret.
func (b *Blink) Stop() { b.running = false }

// Running reports whether the caret is blinking.
func (b *Blink) Running() bool { return b.running }

// Interval returns the half-period.
func (b *Blink) Interval() time.Duration { return b.interval }

// Visible reports whether the caret is drawn at now.
func (b *Blink) Visible(now time.Time) bool {
	if !b.running {
		return false
	}
	if b.interval <= 0 {
		return true
	}
	elapsed := max(now.Sub(b.since), 0)
	return (elapsed/b.interval)%2 == 0
}

// Until returns the time from now to the next visibility toggle, or 0
// when the caret is stopped or solid.
func (b *Blink) Until(now time.Time) time.Duration {
	if !b.running || b.interval <= 0 {
		return 0
	}
	elapsed := max(now.Sub(b.since), 0)
	return b.interval - elapsed%b.interval
}
