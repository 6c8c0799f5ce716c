package observable

import (
	"sync/atomic"
	"time"

	"github.com/Petka17/observable/pkg/logging"
)

// Event is what an EventTarget hands to its listeners.
type Event struct {
	ID      string    `json:"id" yaml:"id"`
	Type    string    `json:"type" yaml:"type"`
	Payload any       `json:"payload,omitempty" yaml:"payload,omitempty"`
	Time    time.Time `json:"time" yaml:"time"`
}

// Listener is a registered event callback. Targets compare listeners by
// pointer, so the same *Listener must be passed to add and remove.
type Listener struct {
	handle func(Event)
}

func NewListener(fn func(Event)) *Listener {
	return &Listener{handle: fn}
}

func (l *Listener) Handle(e Event) {
	l.handle(e)
}

// EventTarget registers and unregisters named-event listeners.
type EventTarget interface {
	AddEventListener(name string, l *Listener)
	RemoveEventListener(name string, l *Listener)
}

// FromEvent emits every name event fired on target. It never completes or
// errors on its own; Unsubscribe removes the listener. Each subscription
// registers a listener of its own.
func FromEvent(name string, target EventTarget) Observable[Event] {
	return New(func(observer Observer[Event]) Subscription {
		sub := &listenerSubscription{name: name, target: target}
		sub.listener = NewListener(func(e Event) {
			if sub.closed.Load() {
				return
			}
			observer.Next(e)
		})
		target.AddEventListener(name, sub.listener)
		logging.Trace().Str("event", name).Msg("listener added")
		return sub
	})
}

// listenerSubscription owns the listener of one FromEvent subscription.
// closed also stops delivery of an event that is already being dispatched
// when Unsubscribe runs.
type listenerSubscription struct {
	name     string
	target   EventTarget
	listener *Listener
	closed   atomic.Bool
}

func (s *listenerSubscription) Unsubscribe() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	s.target.RemoveEventListener(s.name, s.listener)
	logging.Trace().Str("event", s.name).Msg("listener removed")
}
