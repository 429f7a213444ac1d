package notify

import (
	"context"
	"fmt"
	"strings"
	"sync"

	bookingRepo "github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database/repository/booking"
	venueRepo "github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/database/repository/venue"

	"go.uber.org/zap"
)

// Handler receives the full current result set for a subscription's topic.
// It is invoked from its own goroutine and must be safe for concurrent use.
type Handler func(payload any)

// Subscription is a live registration of one handler on one topic.
type Subscription struct {
	topic   string
	handler Handler
}

// Topic returns the topic this subscription listens on.
func (s *Subscription) Topic() string { return s.topic }

// Hub resolves topic announcements into recomputed result sets and delivers
// them to subscribers. One Hub runs per process; the Broker bridges
// processes.
type Hub struct {
	broker   Broker
	venues   venueRepo.Repository
	bookings bookingRepo.Repository
	logger   *zap.Logger

	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

// NewHub constructs a hub over the given broker and read repositories.
func NewHub(broker Broker, venues venueRepo.Repository, bookings bookingRepo.Repository, logger *zap.Logger) *Hub {
	return &Hub{
		broker:   broker,
		venues:   venues,
		bookings: bookings,
		logger:   logger,
		subs:     make(map[*Subscription]struct{}),
	}
}

// Run consumes the broker stream and dispatches until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	stream, stop, err := h.broker.Subscribe(ctx)
	if err != nil {
		return err
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case topic, ok := <-stream:
			if !ok {
				return nil
			}
			h.dispatch(topic)
		}
	}
}

// Subscribe registers fn on topic and asynchronously delivers the current
// result set as the initial snapshot.
func (h *Hub) Subscribe(topic string, fn Handler) *Subscription {
	sub := &Subscription{topic: topic, handler: fn}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	go h.push(sub)
	return sub
}

// Unsubscribe removes the subscription; no further deliveries occur after
// in-flight pushes drain.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
}

// Publish announces that the data behind each topic changed. It is called
// after the mutation has committed; a failed announcement is logged and
// dropped since the store itself is already consistent.
func (h *Hub) Publish(ctx context.Context, topics ...string) {
	for _, topic := range topics {
		if err := h.broker.Publish(ctx, topic); err != nil {
			h.logger.Warn("failed to publish change notification",
				zap.String("topic", topic), zap.Error(err))
		}
	}
}

func (h *Hub) dispatch(topic string) {
	h.mu.Lock()
	var matched []*Subscription
	for sub := range h.subs {
		if sub.topic == topic {
			matched = append(matched, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range matched {
		go h.push(sub)
	}
}

// push recomputes the topic's full result set and hands it to the handler.
func (h *Hub) push(sub *Subscription) {
	payload, err := h.resolve(sub.topic)
	if err != nil {
		h.logger.Warn("failed to recompute result set for subscriber",
			zap.String("topic", sub.topic), zap.Error(err))
		return
	}

	h.mu.Lock()
	_, live := h.subs[sub]
	h.mu.Unlock()
	if live {
		sub.handler(payload)
	}
}

// resolve maps a topic to its backing query.
func (h *Hub) resolve(topic string) (any, error) {
	switch {
	case topic == TopicVenues:
		return h.venues.GetAll()
	case strings.HasPrefix(topic, "venues/owner/"):
		return h.venues.GetByOwner(strings.TrimPrefix(topic, "venues/owner/"))
	case strings.HasPrefix(topic, "bookings/user/"):
		return h.bookings.GetByUser(strings.TrimPrefix(topic, "bookings/user/"))
	default:
		return nil, fmt.Errorf("unknown topic %q", topic)
	}
}
