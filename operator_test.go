package observable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Petka17/observable/pkg/errors"
	"github.com/Petka17/observable/pkg/logging"
)

func TestMap(t *testing.T) {
	arr := []int{1, 2, 3}
	double := func(x int) int { return x * 2 }

	rec := newRecorder[int]()
	MapValue(OfSlice(arr), double).Subscribe(rec)

	assert.Equal(t, []int{2, 4, 6}, rec.values())
	assert.Equal(t, 1, rec.count(OnComplete))
}

func TestMapChangesType(t *testing.T) {
	rec := newRecorder[string]()
	Map(OfSequence(1, 2), func(v int) (string, error) {
		return fmt.Sprintf("#%d", v), nil
	}).Subscribe(rec)

	assert.Equal(t, []string{"#1", "#2"}, rec.values())
}

func TestMapMethod(t *testing.T) {
	rec := newRecorder[int]()
	OfSequence(1, 2, 3).Map(func(v int) int { return -v }).Subscribe(rec)
	assert.Equal(t, []int{-1, -2, -3}, rec.values())
}

func TestFilter(t *testing.T) {
	arr := []int{1, 2, 3}
	odd := func(x int) bool { return x%2 == 1 }

	rec := newRecorder[int]()
	OfSlice(arr).Filter(odd).Subscribe(rec)

	assert.Equal(t, []int{1, 3}, rec.values())
	assert.Equal(t, 1, rec.count(OnComplete))
}

func TestOperatorsForwardSourceError(t *testing.T) {
	tests := []struct {
		name string
		obs  Observable[int]
	}{
		{name: "map", obs: MapValue(Fail[int]("upstream"), func(v int) int { return v })},
		{name: "filter", obs: Fail[int]("upstream").Filter(func(int) bool { return true })},
		{name: "chained", obs: Fail[int]("upstream").Filter(func(int) bool { return true }).Map(func(v int) int { return v })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder[int]()
			tt.obs.Subscribe(rec)

			assert.Equal(t, 0, rec.count(OnNext))
			assert.Equal(t, 0, rec.count(OnComplete))
			require.Equal(t, 1, rec.count(OnError))
			assert.EqualError(t, rec.err(), "upstream")
			assert.True(t, errors.IsSourceFailed(rec.err()))
		})
	}
}

func TestMapProjectionError(t *testing.T) {
	bad := errors.New("cannot project 2")
	rec := newRecorder[int]()
	Map(OfSequence(1, 2, 3), func(v int) (int, error) {
		if v == 2 {
			return 0, bad
		}
		return v * 10, nil
	}).Subscribe(rec)

	assert.Equal(t, []Notification[int]{Next(10), Error[int](bad)}, rec.notifications(),
		"values before the failure are delivered, nothing after it")
}

func TestMapProjectionPanic(t *testing.T) {
	rec := newRecorder[int]()
	MapValue(OfSequence(1, 0, 2), func(v int) int {
		if v == 0 {
			panic("zero")
		}
		return 10 / v
	}).Subscribe(rec)

	assert.Equal(t, []int{10}, rec.values())
	assert.Equal(t, 0, rec.count(OnComplete))
	require.Error(t, rec.err())
	assert.EqualError(t, rec.err(), "zero")
	assert.True(t, errors.IsOperatorPanic(rec.err()))
}

func TestFilterPredicateError(t *testing.T) {
	bad := errors.New("cannot decide")
	rec := newRecorder[int]()
	Filter(OfSequence(1, 2, 3, 4), func(v int) (bool, error) {
		if v == 3 {
			return false, bad
		}
		return v%2 == 0, nil
	}).Subscribe(rec)

	assert.Equal(t, []Notification[int]{Next(2), Error[int](bad)}, rec.notifications())
}

func TestOperatorFailureCancelsUpstream(t *testing.T) {
	target := NewDispatcher()
	unsubscribed := 0

	source := New(func(o Observer[int]) Subscription {
		l := NewListener(func(e Event) { o.Next(e.Payload.(int)) })
		target.AddEventListener("n", l)
		return NewSubscription(func() {
			unsubscribed++
			target.RemoveEventListener("n", l)
		})
	})

	rec := newRecorder[int]()
	MapValue(source, func(v int) int {
		if v < 0 {
			panic("negative")
		}
		return v
	}).Subscribe(rec)

	target.Dispatch("n", 1)
	target.Dispatch("n", -1)
	target.Dispatch("n", 2)

	assert.Equal(t, []int{1}, rec.values())
	assert.Equal(t, 1, rec.count(OnError))
	assert.Equal(t, 1, unsubscribed, "upstream is cancelled on operator failure")
	assert.Equal(t, 0, target.ListenerCount("n"))
}

func TestOperatorFailureDuringSynchronousUpstream(t *testing.T) {
	emitted := 0
	cancelled := false
	source := New(func(o Observer[int]) Subscription {
		for i := 1; i <= 5; i++ {
			emitted++
			o.Next(i)
		}
		o.Complete()
		return NewSubscription(func() { cancelled = true })
	})

	projected := 0
	rec := newRecorder[int]()
	Map(source, func(v int) (int, error) {
		projected++
		if v == 2 {
			return 0, errors.New("stop")
		}
		return v, nil
	}).Subscribe(rec)

	assert.Equal(t, 5, emitted, "a synchronous source runs to the end")
	assert.Equal(t, 2, projected, "values after the failure never reach the projection")
	assert.Equal(t, []int{1}, rec.values())
	assert.Equal(t, 0, rec.count(OnComplete), "the upstream complete is dropped")
	assert.True(t, cancelled, "upstream is cancelled once its subscription is returned")
}

func TestOperatorFailureIsLogged(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)

	rec := newRecorder[int]()
	Map(OfValue(1), func(int) (int, error) {
		return 0, errors.New("projection broke")
	}).Subscribe(rec)

	tl.AssertContains(t, "operator failed")
	tl.AssertContains(t, "projection broke")
}

func TestOperatorsPreserveOrder(t *testing.T) {
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}
	rec := newRecorder[int]()
	MapValue(OfSlice(in), func(v int) int { return v + 1 }).
		Filter(func(v int) bool { return v%3 != 0 }).
		Subscribe(rec)

	var want []int
	for _, v := range in {
		if (v+1)%3 != 0 {
			want = append(want, v+1)
		}
	}
	assert.Equal(t, want, rec.values())
}

func TestLiftUnsubscribeFromCallback(t *testing.T) {
	target := NewDispatcher()
	var sub Subscription
	var got []int
	sub = MapValue(FromEvent("tick", target), func(e Event) int { return e.Payload.(int) }).
		SubscribeFunc(func(v int) {
			got = append(got, v)
			if v == 2 {
				sub.Unsubscribe()
			}
		}, nil, nil)

	for i := 1; i <= 4; i++ {
		target.Dispatch("tick", i)
	}

	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 0, target.ListenerCount("tick"), "unsubscribing the outer removes the inner listener")
}

func TestMaterialize(t *testing.T) {
	rec := newRecorder[Notification[int]]()
	Materialize(OfSequence(1, 2)).Subscribe(rec)
	assert.Equal(t, []Notification[int]{Next(1), Next(2), Complete[int]()}, rec.values())
	assert.Equal(t, 1, rec.count(OnComplete))

	rec = newRecorder[Notification[int]]()
	Materialize(Fail[int]("x")).Subscribe(rec)
	require.Len(t, rec.values(), 1)
	assert.Equal(t, OnError, rec.values()[0].Type())
	assert.Equal(t, 0, rec.count(OnError), "errors become values")
}
