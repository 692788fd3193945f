// Package hub provides a small in-process typed publish/subscribe channel.
// Components subscribe on construction and must call the returned cancel
// function on teardown. Delivery is fire-and-forget, at most once per publish:
// a subscriber that is not draining its channel is skipped, never waited on.
package hub

import "sync"

const subscriberBuffer = 16

// Hub fans out values of type T to all current subscribers.
type Hub[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan T
}

func New[T any]() *Hub[T] {
	return &Hub[T]{
		subs: make(map[int]chan T),
	}
}

// Subscribe registers a new subscriber and returns its channel together with
// a cancel function. The channel is closed by cancel, never by Publish.
func (h *Hub[T]) Subscribe() (<-chan T, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan T, subscriberBuffer)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Publish delivers v to every subscriber that has buffer room. Slow
// subscribers are dropped for this publish rather than blocking the caller.
func (h *Hub[T]) Publish(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- v:
		default:
		}
	}
}

// Len returns the current subscriber count.
func (h *Hub[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs)
}
