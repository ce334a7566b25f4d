package input

import (
	"time"

	"github.com/kamstrup/intmap"
)

// Latch turns press events into held keys for hosts that never see key-up
// events, such as terminals. A key stays held until window has elapsed since
// its most recent press. Terminal auto-repeat keeps refreshing the press while
// the physical key is down.
type Latch struct {
	window float64
	now    float64
	seen   *intmap.Map[Key, float64]
}

// NewLatch creates a latch with the given hold window.
func NewLatch(window time.Duration) *Latch {
	return &Latch{
		window: window.Seconds(),
		seen:   intmap.New[Key, float64](int(keyCount)),
	}
}

// Press records a press event for k at the latch's current time.
func (l *Latch) Press(k Key) {
	l.seen.Put(k, l.now)
}

// Release forgets k immediately.
func (l *Latch) Release(k Key) {
	l.seen.Del(k)
}

// Advance moves the latch clock forward by dt seconds and returns the keys
// still held. Expired keys are dropped.
func (l *Latch) Advance(dt float64) State {
	l.now += dt

	var s State
	for k := Key(0); k < keyCount; k++ {
		at, ok := l.seen.Get(k)
		if !ok {
			continue
		}
		if l.now-at > l.window {
			l.seen.Del(k)
			continue
		}
		s = s.With(k)
	}
	return s
}
