package loadout

import "sync"

// Topic delivers the latest published value to its subscribers.
// Each subscriber holds at most one undelivered value; a newer publish replaces it.
type Topic[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan T
}

// NewTopic creates a topic with no subscribers.
func NewTopic[T any]() *Topic[T] {
	return &Topic[T]{subs: make(map[int]chan T)}
}

// Subscribe returns a channel receiving future publishes and a func that unsubscribes
// and closes the channel. Calling the func twice is safe.
func (t *Topic[T]) Subscribe() (<-chan T, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	ch := make(chan T, 1)
	t.subs[id] = ch

	return ch, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if c, ok := t.subs[id]; ok {
			delete(t.subs, id)
			close(c)
		}
	}
}

// Publish hands v to every subscriber without blocking.
func (t *Topic[T]) Publish(v T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, ch := range t.subs {
		// drop the stale value, if the subscriber has not read it yet
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

// Subscribers returns the current subscriber count.
func (t *Topic[T]) Subscribers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}
