package observable

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Timer is a pending one-shot callback. Stop reports whether it prevented
// the callback from running.
type Timer interface {
	Stop() bool
}

// Clock schedules one-shot callbacks. It is the only timing facility the
// package relies on. An implementation may run f before AfterFunc returns.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clockworkClock struct {
	clock clockwork.Clock
}

// SystemClock schedules callbacks on the wall clock; they run on their own
// goroutine.
func SystemClock() Clock {
	return FromClockwork(clockwork.NewRealClock())
}

// FromClockwork adapts a clockwork clock. With clockwork.NewFakeClock,
// callbacks fire once the fake clock is advanced past their deadline.
func FromClockwork(c clockwork.Clock) Clock {
	return clockworkClock{clock: c}
}

func (c clockworkClock) AfterFunc(d time.Duration, f func()) Timer {
	return c.clock.AfterFunc(d, f)
}
