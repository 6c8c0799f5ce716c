package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Petka17/observable"
	pkgerrors "github.com/Petka17/observable/pkg/errors"
)

func projectionByName(name string) (func(int) (int, error), error) {
	switch {
	case name == "double":
		return func(v int) (int, error) { return v * 2, nil }, nil
	case name == "negate":
		return func(v int) (int, error) { return -v, nil }, nil
	case name == "square":
		return func(v int) (int, error) { return v * v, nil }, nil
	case strings.HasPrefix(name, "fail-on="):
		bad, err := strconv.Atoi(strings.TrimPrefix(name, "fail-on="))
		if err != nil {
			return nil, pkgerrors.NewValidationError("map", name, "fail-on needs an integer")
		}
		return func(v int) (int, error) {
			if v == bad {
				return 0, fmt.Errorf("value %d rejected", v)
			}
			return v, nil
		}, nil
	default:
		return nil, pkgerrors.NewValidationError("map", name, "unknown projection")
	}
}

func predicateByName(name string) (func(int) bool, error) {
	switch name {
	case "odd":
		return func(v int) bool { return v%2 != 0 }, nil
	case "even":
		return func(v int) bool { return v%2 == 0 }, nil
	case "positive":
		return func(v int) bool { return v > 0 }, nil
	default:
		return nil, pkgerrors.NewValidationError("filter", name, "unknown predicate")
	}
}

// take completes after n values and cancels the source.
func take[T any](source observable.Observable[T], n int) observable.Observable[T] {
	return observable.New(func(o observable.Observer[T]) observable.Subscription {
		seen := 0
		return observable.Lift(source, observable.FunctionOperator[T, T](func(sub *observable.Subscriber[T], note observable.Notification[T]) {
			sub.Notify(note)
			if note.Type() != observable.OnNext {
				return
			}
			seen++
			if seen == n {
				sub.Complete()
			}
		})).Subscribe(o)
	})
}
