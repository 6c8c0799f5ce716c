package observable

import "fmt"

type NotificationType string

const (
	OnNext     NotificationType = "next"
	OnError    NotificationType = "error"
	OnComplete NotificationType = "complete"
)

// Notification is one event of the next/error/complete protocol as a value.
type Notification[T any] struct {
	t     NotificationType
	value T
	err   error
}

func Next[T any](v T) Notification[T] {
	return Notification[T]{t: OnNext, value: v}
}

func Error[T any](err error) Notification[T] {
	return Notification[T]{t: OnError, err: err}
}

func Complete[T any]() Notification[T] {
	return Notification[T]{t: OnComplete}
}

func (n Notification[T]) Type() NotificationType {
	return n.t
}

// Value is the payload of an OnNext notification and the zero T otherwise.
func (n Notification[T]) Value() T {
	return n.value
}

// Err is the error of an OnError notification and nil otherwise.
func (n Notification[T]) Err() error {
	return n.err
}

// IsTerminal reports whether n ends the stream.
func (n Notification[T]) IsTerminal() bool {
	return n.t == OnError || n.t == OnComplete
}

// Accept delivers n to the matching observer callback.
func (n Notification[T]) Accept(o Observer[T]) {
	switch n.t {
	case OnNext:
		o.Next(n.value)
	case OnError:
		o.Error(n.err)
	case OnComplete:
		o.Complete()
	}
}

func (n Notification[T]) String() string {
	switch n.t {
	case OnNext:
		return fmt.Sprintf("next(%v)", n.value)
	case OnError:
		return fmt.Sprintf("error(%v)", n.err)
	default:
		return string(n.t)
	}
}

// Materialize turns every notification of source, terminal ones included,
// into a value. The result completes right after the terminal notification.
func Materialize[T any](source Observable[T]) Observable[Notification[T]] {
	return Lift(source, FunctionOperator[T, Notification[T]](func(sub *Subscriber[Notification[T]], n Notification[T]) {
		sub.Next(n)
		if n.IsTerminal() {
			sub.Complete()
		}
	}))
}
