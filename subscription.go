package observable

import "sync"

// hooks runs teardown functions exactly once. A hook added after that has
// happened runs immediately.
type hooks struct {
	mu       sync.Mutex
	list     []CompleteHook
	finished bool
}

func (h *hooks) Add(hook CompleteHook) {
	h.mu.Lock()
	if h.finished {
		h.mu.Unlock()
		hook()
		return
	}
	h.list = append(h.list, hook)
	h.mu.Unlock()
}

func (h *hooks) callHooks() {
	h.mu.Lock()
	if h.finished {
		h.mu.Unlock()
		return
	}
	h.finished = true
	list := h.list
	h.list = nil
	h.mu.Unlock()

	for _, hook := range list {
		hook()
	}
}

func (h *hooks) isFinished() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.finished
}

type emptySubscription struct{}

func (emptySubscription) Unsubscribe() {}

// Empty returns a Subscription with nothing to cancel, for sources that
// finish before Subscribe returns.
func Empty() Subscription {
	return emptySubscription{}
}

type funcSubscription struct {
	once     sync.Once
	teardown func()
}

// NewSubscription returns a Subscription that runs teardown on the first
// Unsubscribe and ignores the rest.
func NewSubscription(teardown func()) Subscription {
	return &funcSubscription{teardown: teardown}
}

func (s *funcSubscription) Unsubscribe() {
	s.once.Do(s.teardown)
}
