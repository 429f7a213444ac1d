// Package notify implements the change notification bus: committed store
// mutations are fanned out to every subscriber as full recomputed result
// sets, not diffs. Delivery is at-least-once with no ordering guarantee
// across subscribers.
package notify

import (
	"context"
	"sync"
)

// Topic names for the three live queries.
const TopicVenues = "venues"

// TopicVenuesByOwner is the live query over one owner's venues.
func TopicVenuesByOwner(ownerID string) string {
	return "venues/owner/" + ownerID
}

// TopicBookingsByUser is the live query over one user's bookings.
func TopicBookingsByUser(userID string) string {
	return "bookings/user/" + userID
}

// Broker carries topic notifications between processes. The payload is just
// the topic name; subscribers recompute result sets themselves, so a message
// can never deliver stale data.
type Broker interface {
	// Publish announces that the data behind topic changed.
	Publish(ctx context.Context, topic string) error
	// Subscribe returns a stream of announced topics and a stop function.
	Subscribe(ctx context.Context) (<-chan string, func(), error)
}

// MemoryBroker is an in-process Broker used in tests and single-node runs.
type MemoryBroker struct {
	mu   sync.Mutex
	subs map[chan string]struct{}
}

// NewMemoryBroker creates an empty in-process broker.
func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{subs: make(map[chan string]struct{})}
}

// Publish delivers topic to every live subscriber. A subscriber that has
// fallen far behind misses the message; the next mutation repairs it, which
// is all the at-least-once contract promises.
func (b *MemoryBroker) Publish(_ context.Context, topic string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- topic:
		default:
		}
	}
	return nil
}

// Subscribe registers a new topic stream.
func (b *MemoryBroker) Subscribe(_ context.Context) (<-chan string, func(), error) {
	ch := make(chan string, 64)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	stop := func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}
	return ch, stop, nil
}
