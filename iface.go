package observable

// Observer receives the notifications of one subscription: zero or more
// Next calls followed by at most one of Error or Complete.
type Observer[T any] interface {
	Next(T)
	Error(error)
	Complete()
}

// Subscription cancels one running execution of an Observable.
// Unsubscribe may be called any number of times, from any callback.
type Subscription interface {
	Unsubscribe()
}

// Operator receives every notification of the upstream and decides what
// reaches the downstream Subscriber.
type Operator[T, R any] interface {
	Notify(*Subscriber[R], Notification[T])
}

type CompleteHook func()

// NewObserver builds an Observer from callbacks. next is required; a nil
// onError or onComplete becomes a no-op here, so delivery never has to check.
func NewObserver[T any](next func(T), onError func(error), onComplete func()) Observer[T] {
	if next == nil {
		panic("observable: NewObserver requires a next callback")
	}
	if onError == nil {
		onError = func(error) {}
	}
	if onComplete == nil {
		onComplete = func() {}
	}
	return funcObserver[T]{next: next, err: onError, complete: onComplete}
}

type funcObserver[T any] struct {
	next     func(T)
	err      func(error)
	complete func()
}

func (o funcObserver[T]) Next(v T)        { o.next(v) }
func (o funcObserver[T]) Error(err error) { o.err(err) }
func (o funcObserver[T]) Complete()       { o.complete() }
