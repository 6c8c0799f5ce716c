package observable

// FunctionOperator adapts a plain function to the Operator interface.
type FunctionOperator[T, R any] func(*Subscriber[R], Notification[T])

func (o FunctionOperator[T, R]) Notify(s *Subscriber[R], n Notification[T]) {
	o(s, n)
}
