package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	platformredis "warebell/internal/platform/redis"
)

// RedisPublisher pushes events over redis pub/sub. Each user has their own
// channel; the socket gateway subscribes to the channels of its connected
// sessions and forwards messages as they arrive.
type RedisPublisher struct {
	client *platformredis.Client
}

func NewRedisPublisher(client *platformredis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// Channel returns the pub/sub channel carrying a user's events.
func Channel(user string) string {
	return "warebell:events:" + user
}

type wireEvent struct {
	Event   string         `json:"event"`
	Message map[string]any `json:"message"`
}

func (p *RedisPublisher) Publish(ctx context.Context, user string, event Event) error {
	raw, err := json.Marshal(wireEvent{Event: event.Topic, Message: event.Payload})
	if err != nil {
		return fmt.Errorf("marshal realtime event: %w", err)
	}
	if err := p.client.Publish(ctx, Channel(user), raw).Err(); err != nil {
		return fmt.Errorf("publish realtime event: %w", err)
	}
	return nil
}
