package observable

// SubscribeFunc starts one execution of an Observable for the given observer
// and returns the handle that cancels it.
type SubscribeFunc[T any] func(Observer[T]) Subscription

// Observable is a cold, unicast stream of T. Creating one does no work;
// every Subscribe runs the wrapped function again, independently.
type Observable[T any] struct {
	onSub SubscribeFunc[T]
}

// New wraps fn without calling it.
func New[T any](fn SubscribeFunc[T]) Observable[T] {
	return Observable[T]{onSub: fn}
}

// Subscribe runs the subscribe function synchronously. A panic inside it
// reaches the caller; it is not turned into an Error notification.
func (o Observable[T]) Subscribe(observer Observer[T]) Subscription {
	sub := o.onSub(observer)
	if sub == nil {
		return Empty()
	}
	return sub
}

// SubscribeFunc is Subscribe(NewObserver(next, onError, onComplete)).
func (o Observable[T]) SubscribeFunc(next func(T), onError func(error), onComplete func()) Subscription {
	return o.Subscribe(NewObserver(next, onError, onComplete))
}

// Map applies a projection that keeps the element type.
func (o Observable[T]) Map(projection func(T) T) Observable[T] {
	return MapValue(o, projection)
}

// Filter forwards the values for which predicate returns true.
func (o Observable[T]) Filter(predicate func(T) bool) Observable[T] {
	return Filter(o, func(v T) (bool, error) {
		return predicate(v), nil
	})
}
