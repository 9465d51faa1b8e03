package schedule

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

type recordingUseCase struct {
	mu         sync.Mutex
	requestIDs []string
	err        error
	called     chan struct{}
}

func (r *recordingUseCase) GetCurrent(context.Context, string) (*model.CurrentWeather, error) {
	return nil, nil
}

func (r *recordingUseCase) GetCurrentView(context.Context, string) (*model.WeatherView, error) {
	return nil, nil
}

func (r *recordingUseCase) SaveCurrent(context.Context, string) (int64, error) {
	return 0, nil
}

func (r *recordingUseCase) QueryHistory(context.Context, string, int) ([]entity.WeatherSample, error) {
	return nil, nil
}

func (r *recordingUseCase) GetRainfallSeries(context.Context, float64, float64, *time.Time, *time.Time) (*model.RainfallSeries, error) {
	return nil, nil
}

func (r *recordingUseCase) CaptureScheduled(_ context.Context, requestID string) error {
	r.mu.Lock()
	r.requestIDs = append(r.requestIDs, requestID)
	r.mu.Unlock()
	if r.called != nil {
		select {
		case r.called <- struct{}{}:
		default:
		}
	}
	return r.err
}

func TestExecuteScheduledTaskUsesFreshRequestIDs(t *testing.T) {
	uc := &recordingUseCase{}
	s := NewCaptureScheduler(uc, nil, CaptureSchedulerConfig{CronExpression: "@every 1h"})

	s.ExecuteScheduledTask(context.Background())
	uc.err = errors.New("partial failure")
	s.ExecuteScheduledTask(context.Background())

	if len(uc.requestIDs) != 2 {
		t.Fatalf("calls = %d", len(uc.requestIDs))
	}
	if uc.requestIDs[0] == "" || uc.requestIDs[0] == uc.requestIDs[1] {
		t.Errorf("request ids should be unique: %v", uc.requestIDs)
	}
}

func TestStartRejectsInvalidExpression(t *testing.T) {
	s := NewCaptureScheduler(&recordingUseCase{}, nil, CaptureSchedulerConfig{CronExpression: "every tuesday"})
	if err := s.Start(context.Background()); err == nil {
		t.Fatal("expected an invalid cron expression error")
	}
}

func TestStartWithoutLockRunsJob(t *testing.T) {
	uc := &recordingUseCase{called: make(chan struct{}, 1)}
	s := NewCaptureScheduler(uc, nil, CaptureSchedulerConfig{CronExpression: "@every 1s"})

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	select {
	case <-uc.called:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestRefreshIntervalStaysBelowTTL(t *testing.T) {
	s := NewCaptureScheduler(&recordingUseCase{}, nil, CaptureSchedulerConfig{LockTTL: 30 * time.Second, RefreshInterval: time.Minute})
	if got := s.getRefreshInterval(); got != 10*time.Second {
		t.Errorf("refresh = %s", got)
	}

	s = NewCaptureScheduler(&recordingUseCase{}, nil, CaptureSchedulerConfig{})
	if s.getLockTTL() != time.Minute || s.getRefreshInterval() != 20*time.Second {
		t.Errorf("defaults = %s/%s", s.getLockTTL(), s.getRefreshInterval())
	}
}
