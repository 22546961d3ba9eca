// Package watch implements a small broadcast topic with last-value replay.
// Each cache table owns a topic; readers subscribe to recompute their view
// whenever the table changes, and late subscribers immediately receive the
// current snapshot.
package watch

import (
	"sync"

	"github.com/google/uuid"
)

// Subscription delivers published values on C until Cancel is called.
// Values are conflated: a slow consumer sees the newest value, not every
// intermediate one.
type Subscription[T any] struct {
	C      <-chan T
	cancel func()
}

func (s *Subscription[T]) Cancel() {
	s.cancel()
}

// Topic broadcasts values of T to all current subscribers and replays the
// last published value to anyone who subscribes afterwards.
type Topic[T any] struct {
	mu   sync.Mutex
	subs map[string]chan T
	last *T
}

func NewTopic[T any]() *Topic[T] {
	return &Topic[T]{subs: make(map[string]chan T)}
}

// Publish delivers v to every subscriber and records it for replay. Delivery
// never blocks: a full subscriber buffer is drained so the newest value wins.
func (t *Topic[T]) Publish(v T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.last = &v
	for _, ch := range t.subs {
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}

// Subscribe registers a new consumer. If a value was ever published, the
// subscription starts with it already buffered.
func (t *Topic[T]) Subscribe() *Subscription[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan T, 1)
	if t.last != nil {
		ch <- *t.last
	}
	t.subs[id] = ch

	return &Subscription[T]{
		C: ch,
		cancel: func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			if _, ok := t.subs[id]; ok {
				delete(t.subs, id)
				close(ch)
			}
		},
	}
}

// Len reports the current number of subscribers.
func (t *Topic[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}
