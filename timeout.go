package observable

import (
	"sync"
	"time"

	"github.com/Petka17/observable/pkg/logging"
)

// Timeout emits one empty value after d, then completes. Unsubscribing
// before that stops the timer and nothing is delivered.
func Timeout(d time.Duration) Observable[struct{}] {
	return TimeoutOn(SystemClock(), d)
}

// TimeoutOn is Timeout driven by clock.
func TimeoutOn(clock Clock, d time.Duration) Observable[struct{}] {
	return New(func(observer Observer[struct{}]) Subscription {
		sub := &timerSubscription{delay: d}
		timer := clock.AfterFunc(d, func() {
			if !sub.finish() {
				return
			}
			logging.Trace().Dur("delay", d).Msg("timer fired")
			observer.Next(struct{}{})
			observer.Complete()
		})
		if !sub.setTimer(timer) {
			timer.Stop()
			return sub
		}
		logging.Trace().Dur("delay", d).Msg("timer scheduled")
		return sub
	})
}

// timerSubscription owns the timer of one Timeout subscription. done is set
// once, by whichever of firing and Unsubscribe happens first.
type timerSubscription struct {
	mu    sync.Mutex
	timer Timer
	delay time.Duration
	done  bool
}

func (s *timerSubscription) finish() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return false
	}
	s.done = true
	return true
}

// setTimer records timer unless the subscription already finished, which
// happens when the clock fires before AfterFunc returns.
func (s *timerSubscription) setTimer(timer Timer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return false
	}
	s.timer = timer
	return true
}

func (s *timerSubscription) Unsubscribe() {
	if !s.finish() {
		return
	}
	s.mu.Lock()
	timer := s.timer
	s.mu.Unlock()
	if timer != nil {
		timer.Stop()
	}
	logging.Trace().Dur("delay", s.delay).Msg("timer cancelled")
}
