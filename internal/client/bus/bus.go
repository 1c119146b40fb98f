// Package bus broadcasts "the session changed" to any number of listeners
// that hold no reference to each other.
//
// Publish carries no payload: listeners re-read the session store, so a
// burst of publishes can never hand anyone a stale identity.
package bus

import (
	"context"
	"sync"
)

// Handler reacts to a session change.
type Handler func(ctx context.Context)

// Subscription identifies one registered handler.
type Subscription struct {
	id uint64
}

// Publisher is the announcing side of a Bus.
type Publisher interface {
	Publish(ctx context.Context)
}

// Subscriber is the listening side of a Bus.
type Subscriber interface {
	Subscribe(h Handler) *Subscription
	Unsubscribe(s *Subscription)
}

// Bus is a synchronous, in-process observer list.
//
// Each Publish runs one delivery cycle: every handler registered when the
// cycle starts is called once on the publishing goroutine, in no particular
// order. A handler unsubscribed while the cycle runs (by itself or by an
// earlier handler) is skipped. Cycles never overlap; a Publish issued while a
// cycle is running, including from inside a handler, is queued and delivered
// in issue order once the running cycle finishes.
type Bus struct {
	mu       sync.Mutex
	next     uint64
	handlers map[uint64]Handler
	pending  []context.Context
	draining bool
}

func New() *Bus {
	return &Bus{handlers: make(map[uint64]Handler)}
}

func (b *Bus) Subscribe(h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	b.handlers[b.next] = h
	return &Subscription{id: b.next}
}

// Unsubscribe removes s. It is safe to call more than once and from inside
// a handler.
func (b *Bus) Unsubscribe(s *Subscription) {
	if s == nil {
		return
	}
	b.mu.Lock()
	delete(b.handlers, s.id)
	b.mu.Unlock()
}

// Len reports the number of live subscriptions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

func (b *Bus) Publish(ctx context.Context) {
	b.mu.Lock()
	b.pending = append(b.pending, ctx)
	if b.draining {
		b.mu.Unlock()
		return
	}
	b.draining = true

	// A panicking handler unwinds with the lock released. Clear draining
	// so later publishes still deliver; queued cycles go out with the next one.
	finished := false
	defer func() {
		if !finished {
			b.mu.Lock()
			b.draining = false
			b.mu.Unlock()
		}
	}()

	for len(b.pending) > 0 {
		cycleCtx := b.pending[0]
		b.pending = b.pending[1:]

		ids := make([]uint64, 0, len(b.handlers))
		for id := range b.handlers {
			ids = append(ids, id)
		}

		for _, id := range ids {
			h, ok := b.handlers[id]
			if !ok {
				continue
			}
			b.mu.Unlock()
			h(cycleCtx)
			b.mu.Lock()
		}
	}

	b.draining = false
	finished = true
	b.mu.Unlock()
}
