package observable

import "github.com/Petka17/observable/pkg/errors"

// Map applies projection to every value of source. A projection that
// returns an error or panics ends the stream with that error: upstream is
// cancelled and neither Next nor Complete follows. Errors and completion
// from source pass through unchanged.
func Map[T, R any](source Observable[T], projection func(T) (R, error)) Observable[R] {
	return Lift(source, FunctionOperator[T, R](func(sub *Subscriber[R], n Notification[T]) {
		switch n.Type() {
		case OnNext:
			out, err := guard(projection, n.Value())
			if err != nil {
				sub.Fail(err)
				return
			}
			sub.Next(out)
		case OnError:
			sub.Error(n.Err())
		case OnComplete:
			sub.Complete()
		}
	}))
}

// MapValue is Map for projections that cannot return an error. A panic is
// still reported as an error.
func MapValue[T, R any](source Observable[T], projection func(T) R) Observable[R] {
	return Map(source, func(v T) (R, error) {
		return projection(v), nil
	})
}

// Filter forwards the values for which predicate returns true. A predicate
// error or panic ends the stream the same way a failing Map projection does.
func Filter[T any](source Observable[T], predicate func(T) (bool, error)) Observable[T] {
	return Lift(source, FunctionOperator[T, T](func(sub *Subscriber[T], n Notification[T]) {
		if n.Type() != OnNext {
			sub.Notify(n)
			return
		}
		keep, err := guard(predicate, n.Value())
		if err != nil {
			sub.Fail(err)
			return
		}
		if keep {
			sub.Next(n.Value())
		}
	}))
}

// guard calls fn and converts a panic into *errors.PanicError.
func guard[T, R any](fn func(T) (R, error), v T) (out R, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.NewPanicError(p)
		}
	}()
	return fn(v)
}
