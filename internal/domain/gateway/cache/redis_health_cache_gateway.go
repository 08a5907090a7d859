package cache

import (
	"context"

	"go-web/internal/domain/model"
	"go-web/pkg/redis"
)

type RedisHealthCacheGateway struct {
	checker *redis.HealthChecker
}

var _ HealthCacheGateway = (*RedisHealthCacheGateway)(nil)

func NewRedisHealthCacheGateway(client *redis.Client) *RedisHealthCacheGateway {
	return &RedisHealthCacheGateway{checker: redis.NewHealthChecker(client)}
}

func (gateway *RedisHealthCacheGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.checker.HealthCheck(ctx)

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: check.Details,
	}
}
