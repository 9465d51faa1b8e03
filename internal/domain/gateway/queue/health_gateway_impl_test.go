package queue

import (
	"context"
	"testing"

	"weather-api/internal/domain/model"
	"weather-api/pkg/sqs"
)

type fakeWorker sqs.WorkerHealth

func (p fakeWorker) HealthCheck() sqs.WorkerHealth {
	return sqs.WorkerHealth(p)
}

func TestQueueHealthWithoutWorkersIsUnknown(t *testing.T) {
	if got := NewQueueHealthGateway().Health(context.Background()); got.Status != model.StatusUnknown {
		t.Errorf("status = %s", got.Status)
	}
}

func TestQueueHealthFollowsWorkers(t *testing.T) {
	gateway := NewQueueHealthGateway()
	gateway.RegisterWorker("weather-capture", fakeWorker{Status: sqs.StatusUp, Details: map[string]string{"processed": "3"}})

	got := gateway.Health(context.Background())
	if got.Status != model.StatusUp {
		t.Fatalf("status = %s", got.Status)
	}
	if got.Details["weather-capture.processed"] != "3" || got.Details["polling"] != "1" {
		t.Errorf("details = %v", got.Details)
	}

	gateway.RegisterWorker("weather-capture-dlq", fakeWorker{Status: sqs.StatusDown})
	if got := gateway.Health(context.Background()); got.Status != model.StatusDown {
		t.Errorf("a stopped worker should mark the queue DOWN, got %s", got.Status)
	}

	gateway.UnregisterWorker("weather-capture-dlq")
	gateway.UnregisterWorker("weather-capture")
	if got := gateway.Health(context.Background()); got.Status != model.StatusUnknown {
		t.Errorf("status after unregistering = %s", got.Status)
	}
}
