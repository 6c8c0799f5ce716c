package observable

import "github.com/Petka17/observable/pkg/logging"

// Lift builds the Observable that subscribes to source and routes each of
// its notifications through op. The returned Subscription is the
// Subscriber; unsubscribing it unsubscribes from source.
func Lift[T, R any](source Observable[T], op Operator[T, R]) Observable[R] {
	return New(func(observer Observer[R]) Subscription {
		sub := NewSubscriber(observer)
		logging.Trace().Str("subscription", sub.ID()).Msg("subscribing upstream")
		upstream := source.Subscribe(liftedObserver[T, R]{sub: sub, op: op})
		// runs at once if op already failed during a synchronous upstream
		sub.Add(upstream.Unsubscribe)
		return sub
	})
}

type liftedObserver[T, R any] struct {
	sub *Subscriber[R]
	op  Operator[T, R]
}

func (o liftedObserver[T, R]) Next(v T) {
	o.notify(Next(v))
}

func (o liftedObserver[T, R]) Error(err error) {
	o.notify(Error[T](err))
}

func (o liftedObserver[T, R]) Complete() {
	o.notify(Complete[T]())
}

func (o liftedObserver[T, R]) notify(n Notification[T]) {
	if !o.sub.IsSubscribed() {
		return
	}
	o.op.Notify(o.sub, n)
}
