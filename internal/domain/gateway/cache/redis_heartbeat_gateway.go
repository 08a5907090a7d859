package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-web/internal/domain/model"
	"go-web/pkg/redis"
)

type RedisHeartbeatGateway struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

var _ HeartbeatGateway = (*RedisHeartbeatGateway)(nil)

// NewRedisHeartbeatGateway stores heartbeats under "<namespace>:heartbeat:db" expiring after ttl.
func NewRedisHeartbeatGateway(client *redis.Client, namespace string, ttl time.Duration) *RedisHeartbeatGateway {
	return &RedisHeartbeatGateway{
		client: client,
		key:    fmt.Sprintf("%s:heartbeat:db", namespace),
		ttl:    ttl,
	}
}

func (gateway *RedisHeartbeatGateway) Key() string {
	return gateway.key
}

func (gateway *RedisHeartbeatGateway) Save(ctx context.Context, heartbeat model.Heartbeat) error {
	if err := gateway.client.SetJSON(ctx, gateway.key, heartbeat, gateway.ttl); err != nil {
		return fmt.Errorf("failed to save heartbeat %s: %w", gateway.key, err)
	}
	return nil
}

func (gateway *RedisHeartbeatGateway) Last(ctx context.Context) (*model.Heartbeat, error) {
	var heartbeat model.Heartbeat
	err := gateway.client.GetJSON(ctx, gateway.key, &heartbeat)
	if errors.Is(err, redis.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read heartbeat %s: %w", gateway.key, err)
	}
	return &heartbeat, nil
}
