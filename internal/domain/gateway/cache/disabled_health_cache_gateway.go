package cache

import (
	"context"

	"go-web/internal/domain/model"
	"go-web/pkg/msg"
)

// DisabledHealthCacheGateway reports the cache as UNKNOWN when Redis is not configured
type DisabledHealthCacheGateway struct{}

var _ HealthCacheGateway = DisabledHealthCacheGateway{}

func (DisabledHealthCacheGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.NewComponentHealthStatus(model.StatusUnknown, msg.GetMessage("cache.disabled"))
}
