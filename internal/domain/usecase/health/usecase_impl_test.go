package health

import (
	"context"
	"testing"
	"time"

	"weather-api/internal/domain/gateway/queue"
	"weather-api/internal/domain/model"
)

type staticChecker model.ComponentHealthStatus

func (s staticChecker) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus(s)
}

func TestPingReportsUTCTime(t *testing.T) {
	uc := NewHealthUseCase(staticChecker{Status: model.StatusUp}, queue.NewQueueHealthGateway(), nil).(*healthUseCase)
	uc.now = func() time.Time {
		return time.Date(2024, 5, 6, 9, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	}

	ping := uc.Ping()
	if !ping.OK || ping.Time != "2024-05-06T04:00:00Z" {
		t.Errorf("ping = %+v", ping)
	}
}

func TestCheckHealthIgnoresUnknownComponents(t *testing.T) {
	uc := NewHealthUseCase(staticChecker{Status: model.StatusUp}, queue.NewQueueHealthGateway(), nil)

	response := uc.CheckHealth(context.Background())
	if response.Status != model.StatusUp {
		t.Errorf("status = %s", response.Status)
	}
	if response.Queue.Status != model.StatusUnknown {
		t.Errorf("queue without workers should be UNKNOWN: %+v", response.Queue)
	}
	if response.Cache != nil {
		t.Errorf("cache should be omitted without a checker")
	}
}

func TestCheckHealthIsDownWhenAnyComponentIsDown(t *testing.T) {
	uc := NewHealthUseCase(
		staticChecker{Status: model.StatusUp},
		queue.NewQueueHealthGateway(),
		staticChecker{Status: model.StatusDown, Details: map[string]string{"message": "refused"}},
	)

	response := uc.CheckHealth(context.Background())
	if response.Status != model.StatusDown {
		t.Errorf("status = %s", response.Status)
	}
	if response.Cache == nil || response.Cache.Details["message"] != "refused" {
		t.Errorf("cache = %+v", response.Cache)
	}

	uc = NewHealthUseCase(staticChecker{Status: model.StatusDown}, queue.NewQueueHealthGateway(), nil)
	if response := uc.CheckHealth(context.Background()); response.Status != model.StatusDown {
		t.Errorf("database down should mark the service DOWN, got %s", response.Status)
	}
}
