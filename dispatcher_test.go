package observable

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherAddRemove(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	l := NewListener(func(Event) { calls++ })

	d.AddEventListener("x", l)
	d.AddEventListener("x", l)
	d.AddEventListener("x", nil)
	assert.Equal(t, 1, d.ListenerCount("x"), "duplicates and nil are ignored")

	d.Dispatch("x", nil)
	assert.Equal(t, 1, calls)

	d.RemoveEventListener("x", l)
	d.RemoveEventListener("x", l)
	d.Dispatch("x", nil)
	assert.Equal(t, 1, calls)
}

func TestDispatcherReentrantDispatchIsQueued(t *testing.T) {
	d := NewDispatcher()
	var order []string

	d.AddEventListener("a", NewListener(func(e Event) {
		order = append(order, "a:start")
		d.Dispatch("b", nil)
		order = append(order, "a:end")
	}))
	d.AddEventListener("b", NewListener(func(e Event) {
		order = append(order, "b")
	}))

	d.Dispatch("a", nil)
	assert.Equal(t, []string{"a:start", "a:end", "b"}, order)
}

func TestDispatcherListenerPanicDoesNotWedge(t *testing.T) {
	d := NewDispatcher()
	l := NewListener(func(Event) { panic("listener broke") })
	d.AddEventListener("p", l)

	assert.Panics(t, func() { d.Dispatch("p", nil) })

	d.RemoveEventListener("p", l)
	delivered := false
	d.AddEventListener("ok", NewListener(func(Event) { delivered = true }))
	d.Dispatch("ok", nil)
	assert.True(t, delivered)
}

func TestDispatcherListenerPanicDropsQueuedEvents(t *testing.T) {
	d := NewDispatcher()
	var got []any
	d.AddEventListener("q", NewListener(func(e Event) { got = append(got, e.Payload) }))
	d.AddEventListener("p", NewListener(func(Event) {
		d.Dispatch("q", "queued-before-panic")
		panic("listener broke")
	}))

	assert.Panics(t, func() { d.Dispatch("p", nil) })
	assert.Empty(t, got)

	d.Dispatch("q", "fresh")
	assert.Equal(t, []any{"fresh"}, got)
}

func TestDispatcherConcurrentDispatchSerialised(t *testing.T) {
	d := NewDispatcher()
	var mu sync.Mutex
	active, maxActive, total := 0, 0, 0

	d.AddEventListener("c", NewListener(func(Event) {
		mu.Lock()
		active++
		if active > maxActive {
			maxActive = active
		}
		mu.Unlock()

		mu.Lock()
		active--
		total++
		mu.Unlock()
	}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Dispatch("c", j)
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 400, total)
	assert.Equal(t, 1, maxActive, "listeners never run concurrently")
}
