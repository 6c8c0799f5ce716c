package observable

import (
	"context"
	"sync/atomic"
)

// FromChan emits every value received from ch and completes when ch is
// closed. If ctx is done first the stream ends with ctx.Err(). Values are
// received on a goroutine started by Subscribe; Unsubscribe stops it
// without delivering anything further. ch is never closed by FromChan.
func FromChan[T any](ctx context.Context, ch <-chan T) Observable[T] {
	return New(func(observer Observer[T]) Subscription {
		sub := &chanSubscription{stop: make(chan struct{})}
		go pumpChan(ctx, sub, ch, observer)
		return sub
	})
}

type chanSubscription struct {
	stop   chan struct{}
	closed atomic.Bool
}

func (s *chanSubscription) Unsubscribe() {
	if s.closed.CompareAndSwap(false, true) {
		close(s.stop)
	}
}

// finish marks the stream as ended by the source itself.
func (s *chanSubscription) finish() bool {
	return s.closed.CompareAndSwap(false, true)
}

func pumpChan[T any](ctx context.Context, sub *chanSubscription, ch <-chan T, observer Observer[T]) {
	for {
		select {
		case <-sub.stop:
			return
		case <-ctx.Done():
			if sub.finish() {
				observer.Error(ctx.Err())
			}
			return
		case v, ok := <-ch:
			if !ok {
				if sub.finish() {
					observer.Complete()
				}
				return
			}
			if sub.closed.Load() {
				return
			}
			observer.Next(v)
		}
	}
}
