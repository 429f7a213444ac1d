package notify

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// busChannel is the Redis pub/sub channel carrying topic announcements.
const busChannel = "venuebook:events"

// RedisBroker is the cross-process Broker backed by Redis pub/sub.
type RedisBroker struct {
	client *redis.Client
}

// NewRedisBroker creates a Broker on top of the given Redis client.
func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{client: client}
}

// Publish announces the topic on the shared bus channel.
func (b *RedisBroker) Publish(ctx context.Context, topic string) error {
	return b.client.Publish(ctx, busChannel, topic).Err()
}

// Subscribe opens a pub/sub subscription and adapts it to a topic stream.
func (b *RedisBroker) Subscribe(ctx context.Context) (<-chan string, func(), error) {
	ps := b.client.Subscribe(ctx, busChannel)
	// Force the subscription to be established before we report success.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, err
	}

	out := make(chan string, 64)
	go func() {
		defer close(out)
		for msg := range ps.Channel() {
			out <- msg.Payload
		}
	}()

	stop := func() { _ = ps.Close() }
	return out, stop, nil
}
