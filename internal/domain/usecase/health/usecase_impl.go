package health

import (
	"context"
	"strconv"
	"time"

	"go-web/internal/domain/gateway/cache"
	"go-web/internal/domain/gateway/db"
	"go-web/internal/domain/model"
	"go-web/pkg/log"
	"go-web/pkg/metrics"

	"go.uber.org/zap"
)

const defaultTimeout = 2 * time.Second

type healthUseCase struct {
	dbGateway        db.HealthDBGateway
	cacheGateway     cache.HealthCacheGateway
	heartbeatGateway cache.HeartbeatGateway
	metrics          *metrics.Metrics
	timeout          time.Duration
}

// Option customizes the health use case
type Option func(*healthUseCase)

// WithHeartbeatGateway adds the last heartbeat to the database details of CheckHealth.
func WithHeartbeatGateway(gateway cache.HeartbeatGateway) Option {
	return func(useCase *healthUseCase) {
		useCase.heartbeatGateway = gateway
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(useCase *healthUseCase) {
		useCase.metrics = m
	}
}

// WithTimeout bounds each component check of CheckHealth. ProbeDatabase is not bounded.
func WithTimeout(timeout time.Duration) Option {
	return func(useCase *healthUseCase) {
		if timeout > 0 {
			useCase.timeout = timeout
		}
	}
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.HealthCacheGateway, opts ...Option) UseCase {
	useCase := &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
		timeout:      defaultTimeout,
	}
	for _, opt := range opts {
		opt(useCase)
	}
	return useCase
}

func (useCase *healthUseCase) ProbeDatabase(ctx context.Context) (result model.ProbeResult) {
	defer func() {
		if recovered := recover(); recovered != nil {
			result = model.ProbeFailure(recovered)
		}
		useCase.metrics.RecordProbe(result.OK())
	}()

	if err := useCase.dbGateway.Probe(ctx); err != nil {
		return model.ProbeFailure(err)
	}
	return model.ProbeSucceeded()
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.databaseHealth(ctx)
	cacheHealth := useCase.cacheHealth(ctx)

	return model.HealthResponse{
		Status:   model.OverallStatus(dbHealth, cacheHealth),
		Database: dbHealth,
		Cache:    cacheHealth,
	}
}

func (useCase *healthUseCase) databaseHealth(ctx context.Context) model.ComponentHealthStatus {
	probeCtx, cancel := context.WithTimeout(ctx, useCase.timeout)
	defer cancel()

	var component model.ComponentHealthStatus
	if result := useCase.ProbeDatabase(probeCtx); result.OK() {
		component = model.NewComponentHealthStatus(model.StatusUp, string(model.StatusUp))
	} else {
		component = model.NewComponentHealthStatus(model.StatusDown, result.Message())
	}
	component.Details["client"] = useCase.dbGateway.Client()

	if useCase.heartbeatGateway == nil {
		return component
	}

	heartbeat, err := useCase.heartbeatGateway.Last(ctx)
	if err != nil {
		log.Warn("failed to read last heartbeat", zap.Error(err))
		return component
	}
	if heartbeat != nil {
		component.Details["last_heartbeat_at"] = heartbeat.CheckedAt.Format(time.RFC3339)
		component.Details["last_heartbeat_ok"] = strconv.FormatBool(heartbeat.OK)
	}
	return component
}

func (useCase *healthUseCase) cacheHealth(ctx context.Context) model.ComponentHealthStatus {
	cacheCtx, cancel := context.WithTimeout(ctx, useCase.timeout)
	defer cancel()

	return useCase.cacheGateway.Health(cacheCtx)
}
