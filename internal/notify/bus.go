// Package notify is an in-process event bus pushing data-change events to
// connected clients, replacing client-side polling.
package notify

import (
	"sync"
	"time"
)

// Event kinds published on the bus.
const (
	EventMessageCreated   = "message.created"
	EventMessageUpdated   = "message.updated"
	EventCandidateUpdated = "candidate.updated"
	EventScreeningApplied = "screening.applied"
)

// subscriberBuffer is the per-subscriber channel capacity. A subscriber that
// falls this far behind starts losing events; clients recover by refetching.
const subscriberBuffer = 16

// Event is a single change notification.
type Event struct {
	Kind string      `json:"kind"`
	At   time.Time   `json:"at"`
	Data interface{} `json:"data,omitempty"`
}

// Bus fans events out to subscribers.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	closed      bool
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[chan Event]struct{})}
}

// Subscribe registers a new subscriber. The returned cancel func must be
// called when the subscriber disconnects.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if b.closed {
				return
			}
			delete(b.subscribers, ch)
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers an event to all subscribers. Slow subscribers are skipped
// rather than blocking the publisher.
func (b *Bus) Publish(kind string, data interface{}) {
	event := Event{Kind: kind, At: time.Now(), Data: data}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount reports the number of active subscribers.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close shuts the bus down and closes all subscriber channels.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subscribers {
		close(ch)
	}
	b.subscribers = make(map[chan Event]struct{})
}
