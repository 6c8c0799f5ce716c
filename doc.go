// Package observable is a small push-based stream primitive.
//
// An Observable wraps a subscribe function and does nothing until
// Subscribe is called. Each call starts an independent execution that
// delivers zero or more Next notifications followed by at most one Error or
// Complete, and returns a Subscription that cancels it.
//
//	sub := observable.MapValue(observable.OfSequence(1, 2, 3), func(v int) int { return v * 2 }).
//		Filter(func(v int) bool { return v > 2 }).
//		SubscribeFunc(func(v int) { fmt.Println(v) }, nil, nil)
//	defer sub.Unsubscribe()
//
// Sources: OfValue, OfSequence, OfSlice, Fail, Throw, Timeout, FromEvent and
// FromChan. Operators: Map, MapValue and Filter, all built on Lift.
package observable
