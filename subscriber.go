package observable

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/Petka17/observable/pkg/logging"
)

// Subscriber sits between an operator and the downstream observer of one
// subscription. After the first terminal notification, or after
// Unsubscribe, it delivers nothing more and runs its hooks once; Lift
// registers the upstream Subscription as one of those hooks.
type Subscriber[T any] struct {
	id      string
	dst     Observer[T]
	stopped atomic.Bool
	hooks
}

// NewSubscriber wraps dst.
func NewSubscriber[T any](dst Observer[T]) *Subscriber[T] {
	return &Subscriber[T]{id: uuid.NewString(), dst: dst}
}

// ID identifies the subscription in log output.
func (sub *Subscriber[T]) ID() string {
	return sub.id
}

func (sub *Subscriber[T]) Next(v T) {
	if sub.stopped.Load() {
		return
	}
	sub.dst.Next(v)
}

// Error forwards an error that came from upstream.
func (sub *Subscriber[T]) Error(err error) {
	if !sub.stopped.CompareAndSwap(false, true) {
		return
	}
	sub.dst.Error(err)
	sub.callHooks()
}

func (sub *Subscriber[T]) Complete() {
	if !sub.stopped.CompareAndSwap(false, true) {
		return
	}
	sub.dst.Complete()
	sub.callHooks()
}

// Fail reports an error raised by the operator itself. Upstream is
// cancelled before the downstream observer sees the error.
func (sub *Subscriber[T]) Fail(err error) {
	if !sub.stopped.CompareAndSwap(false, true) {
		return
	}
	logging.Debug().
		Err(err).
		Str("subscription", sub.id).
		Msg("operator failed, cancelling upstream")
	sub.callHooks()
	sub.dst.Error(err)
}

// Notify delivers n through Next, Error or Complete.
func (sub *Subscriber[T]) Notify(n Notification[T]) {
	n.Accept(sub)
}

func (sub *Subscriber[T]) IsSubscribed() bool {
	return !sub.stopped.Load()
}

func (sub *Subscriber[T]) Unsubscribe() {
	if sub.stopped.CompareAndSwap(false, true) {
		logging.Trace().Str("subscription", sub.id).Msg("unsubscribed")
	}
	sub.callHooks()
}
