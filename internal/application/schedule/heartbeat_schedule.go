package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-web/internal/domain/gateway/cache"
	"go-web/internal/domain/model"
	"go-web/internal/domain/usecase/health"
	"go-web/pkg/log"
	"go-web/pkg/msg"
)

// HeartbeatSchedulerConfig holds configuration for the heartbeat scheduler
type HeartbeatSchedulerConfig struct {
	CronExpression string
	Timeout        time.Duration
	StoreTimeout   time.Duration
}

// HeartbeatScheduler probes the database on a cron schedule and keeps the last outcome
type HeartbeatScheduler struct {
	cron    *cron.Cron
	useCase health.UseCase
	store   cache.HeartbeatGateway
	config  HeartbeatSchedulerConfig
	now     func() time.Time
}

// NewHeartbeatScheduler creates a scheduler. store may be nil, in which case outcomes are only logged.
func NewHeartbeatScheduler(useCase health.UseCase, store cache.HeartbeatGateway, config HeartbeatSchedulerConfig) *HeartbeatScheduler {
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}
	if config.StoreTimeout <= 0 {
		config.StoreTimeout = 2 * time.Second
	}
	return &HeartbeatScheduler{
		cron:    cron.New(),
		useCase: useCase,
		store:   store,
		config:  config,
		now:     time.Now,
	}
}

// InitHeartbeatScheduleTasks registers the heartbeat job and starts the cron
func (s *HeartbeatScheduler) InitHeartbeatScheduleTasks() error {
	_, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask)
	if err != nil {
		return fmt.Errorf("invalid heartbeat cron expression %q: %w", s.config.CronExpression, err)
	}

	s.cron.Start()
	log.Info(msg.GetMessage("heartbeat.start", s.config.CronExpression))
	return nil
}

// ExecuteScheduledTask runs one heartbeat probe
func (s *HeartbeatScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	start := s.now()
	result := s.probe()
	latency := time.Since(start)

	if result.OK() {
		log.Info(msg.GetMessage("heartbeat.ok", latency),
			zap.String("request_id", requestID), zap.Duration("latency", latency))
	} else {
		log.Error(msg.GetMessage("heartbeat.fail", latency, result.Message()),
			zap.String("request_id", requestID), zap.Duration("latency", latency), zap.String("error", result.Message()))
	}

	if s.store == nil {
		return
	}

	heartbeat := model.NewHeartbeat(result, requestID, start, latency)
	if err := s.save(heartbeat); err != nil {
		log.Error(msg.GetMessage("heartbeat.store-fail", err), zap.String("request_id", requestID), zap.Error(err))
	}
}

func (s *HeartbeatScheduler) probe() model.ProbeResult {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()
	return s.useCase.ProbeDatabase(ctx)
}

// save runs on its own deadline so a probe that used up its timeout is still stored.
func (s *HeartbeatScheduler) save(heartbeat model.Heartbeat) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.StoreTimeout)
	defer cancel()
	return s.store.Save(ctx, heartbeat)
}

// Stop gracefully stops the scheduler, waiting for a running heartbeat
func (s *HeartbeatScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
