package cache

import (
	"context"

	"go-web/internal/domain/model"
)

type HealthCacheGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}
