package observable

import "github.com/Petka17/observable/pkg/errors"

// OfValue emits v, then completes, before Subscribe returns.
func OfValue[T any](v T) Observable[T] {
	return New(func(observer Observer[T]) Subscription {
		observer.Next(v)
		observer.Complete()
		return Empty()
	})
}

// OfSequence emits each of values in order, then completes, before
// Subscribe returns.
func OfSequence[T any](values ...T) Observable[T] {
	return OfSlice(values)
}

// OfSlice is OfSequence for an existing slice. The slice is copied, so
// later changes to it do not affect the Observable.
func OfSlice[T any](values []T) Observable[T] {
	items := make([]T, len(values))
	copy(items, values)
	return New(func(observer Observer[T]) Subscription {
		for _, v := range items {
			observer.Next(v)
		}
		observer.Complete()
		return Empty()
	})
}

// Fail emits a single error whose message is message. It never calls Next
// or Complete.
func Fail[T any](message string) Observable[T] {
	return New(func(observer Observer[T]) Subscription {
		observer.Error(errors.NewSourceError(message))
		return Empty()
	})
}

// Throw emits err as its only notification.
func Throw[T any](err error) Observable[T] {
	return New(func(observer Observer[T]) Subscription {
		observer.Error(err)
		return Empty()
	})
}
