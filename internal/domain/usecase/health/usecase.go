package health

import (
	"context"

	"go-web/internal/domain/model"
)

type UseCase interface {
	// ProbeDatabase runs a single connectivity probe and never panics.
	ProbeDatabase(ctx context.Context) model.ProbeResult
	CheckHealth(ctx context.Context) model.HealthResponse
}
