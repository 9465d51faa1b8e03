package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-api/internal/domain/usecase/weather"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/redis"
)

const (
	captureLockName      = "weather_capture_scheduler"
	captureLockNamespace = "weather_schedules"
)

// CaptureSchedulerConfig holds configuration for the capture scheduler
type CaptureSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// CaptureScheduler periodically stores readings for the configured cities.
// With a Redis client only the instance holding the lock runs the job.
type CaptureScheduler struct {
	cron        *cron.Cron
	useCase     weather.UseCase
	redisClient *redis.Client
	config      CaptureSchedulerConfig
	newID       func() string
}

// NewCaptureScheduler creates the scheduler. redisClient may be nil to run without a lock.
func NewCaptureScheduler(useCase weather.UseCase, redisClient *redis.Client, config CaptureSchedulerConfig) *CaptureScheduler {
	return &CaptureScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
		newID:       uuid.NewString,
	}
}

// Start registers the job and starts the cron. An invalid expression is reported
// immediately. With a lock the cron only starts once the lock is acquired, and it
// stops when the lock can no longer be refreshed.
func (s *CaptureScheduler) Start(ctx context.Context) error {
	log.Info(msg.GetMessage("capture.schedule.init", s.config.CronExpression))

	_, err := s.cron.AddFunc(s.config.CronExpression, func() { s.ExecuteScheduledTask(ctx) })
	if err != nil {
		return err
	}

	if s.redisClient == nil {
		s.cron.Start()
		return nil
	}

	go s.runWithLock(ctx)
	return nil
}

func (s *CaptureScheduler) runWithLock(ctx context.Context) {
	lock := redis.NewScheduledTaskLock(
		s.redisClient,
		captureLockName,
		s.getLockTTL(),
		s.getRefreshInterval(),
		captureLockNamespace,
	)

	if err := lock.Lock(ctx); err != nil {
		log.Error(msg.GetMessage("capture.schedule.lock-failed", err), zap.String("lock", lock.Key()))
		return
	}

	refreshErrChan := lock.AutoRefresh(ctx)
	s.cron.Start()
	log.Info("Weather capture scheduler started", zap.String("cron", s.config.CronExpression), zap.String("lock", lock.Key()))

	err := <-refreshErrChan
	s.Stop()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Weather capture scheduler stopped after losing its lock", zap.Error(err))
		return
	}

	unlockCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := lock.Unlock(unlockCtx); err != nil {
		log.Warn("Failed to release weather capture lock", zap.Error(err))
	}
	log.Info("Weather capture scheduler stopped gracefully")
}

// ExecuteScheduledTask runs one capture with a fresh request id.
func (s *CaptureScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := s.newID()

	log.Info("Weather capture triggered", zap.String("request_id", requestID))
	if err := s.useCase.CaptureScheduled(ctx, requestID); err != nil {
		log.Error("Weather capture finished with errors", zap.String("request_id", requestID), zap.Error(err))
		return
	}
	log.Info("Weather capture completed", zap.String("request_id", requestID))
}

// Stop waits for a running job to finish.
func (s *CaptureScheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *CaptureScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return time.Minute
}

func (s *CaptureScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 && s.config.RefreshInterval < s.getLockTTL() {
		return s.config.RefreshInterval
	}
	return s.getLockTTL() / 3
}
