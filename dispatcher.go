package observable

import (
	"slices"
	"sync"
	"time"

	"github.com/eapache/queue"
	"github.com/google/uuid"
)

// Dispatcher is an in-memory EventTarget. Events are delivered one at a
// time in the order they were dispatched: a Dispatch issued while another
// event is being delivered, whether from a listener or another goroutine,
// is queued and delivered by the goroutine already dispatching.
type Dispatcher struct {
	mu          sync.Mutex
	listeners   map[string][]*Listener
	pending     *queue.Queue
	dispatching bool
	now         func() time.Time
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[string][]*Listener),
		pending:   queue.New(),
		now:       time.Now,
	}
}

// AddEventListener registers l for name. Adding the same listener twice
// for one name has no effect.
func (d *Dispatcher) AddEventListener(name string, l *Listener) {
	if l == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if slices.Contains(d.listeners[name], l) {
		return
	}
	d.listeners[name] = append(d.listeners[name], l)
}

func (d *Dispatcher) RemoveEventListener(name string, l *Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := d.listeners[name]
	i := slices.Index(list, l)
	if i < 0 {
		return
	}
	list = slices.Delete(slices.Clone(list), i, i+1)
	if len(list) == 0 {
		delete(d.listeners, name)
		return
	}
	d.listeners[name] = list
}

// ListenerCount is the number of listeners registered for name.
func (d *Dispatcher) ListenerCount(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[name])
}

// Dispatch fires a name event carrying payload and returns it. If no other
// dispatch is in progress the event has been delivered when Dispatch
// returns; otherwise it is delivered after the events queued before it.
func (d *Dispatcher) Dispatch(name string, payload any) Event {
	ev := Event{
		ID:      uuid.NewString(),
		Type:    name,
		Payload: payload,
		Time:    d.now(),
	}

	d.mu.Lock()
	d.pending.Add(ev)
	if d.dispatching {
		d.mu.Unlock()
		return ev
	}
	d.dispatching = true
	d.drain()
	return ev
}

// drain is called with d.mu held and releases it. If a listener panics,
// events still queued are dropped along with the dispatch that failed.
func (d *Dispatcher) drain() {
	defer func() {
		if d.pending.Length() > 0 {
			d.pending = queue.New()
		}
		d.dispatching = false
		d.mu.Unlock()
	}()
	for d.pending.Length() > 0 {
		ev := d.pending.Remove().(Event)
		d.deliver(slices.Clone(d.listeners[ev.Type]), ev)
	}
}

func (d *Dispatcher) deliver(listeners []*Listener, ev Event) {
	d.mu.Unlock()
	defer d.mu.Lock()
	for _, l := range listeners {
		l.Handle(ev)
	}
}
