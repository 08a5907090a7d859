package cache

import (
	"context"

	"go-web/internal/domain/model"
)

// HeartbeatGateway keeps the last database heartbeat
type HeartbeatGateway interface {
	Save(ctx context.Context, heartbeat model.Heartbeat) error
	// Last returns nil without error when no heartbeat is stored.
	Last(ctx context.Context) (*model.Heartbeat, error)
}
