package queue

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"weather-api/internal/domain/model"
	"weather-api/pkg/sqs"
)

// QueueHealthGateway reports capture workers keyed by the queue they poll.
type QueueHealthGateway struct {
	mu      sync.RWMutex
	workers map[string]WorkerProbe
}

var _ HealthGateway = (*QueueHealthGateway)(nil)

func NewQueueHealthGateway() *QueueHealthGateway {
	return &QueueHealthGateway{workers: map[string]WorkerProbe{}}
}

func (gateway *QueueHealthGateway) RegisterWorker(queueName string, worker WorkerProbe) {
	gateway.mu.Lock()
	gateway.workers[queueName] = worker
	gateway.mu.Unlock()
}

func (gateway *QueueHealthGateway) UnregisterWorker(queueName string) {
	gateway.mu.Lock()
	delete(gateway.workers, queueName)
	gateway.mu.Unlock()
}

// Health is UNKNOWN when captures are saved inline, DOWN when a worker stopped polling.
func (gateway *QueueHealthGateway) Health(_ context.Context) model.ComponentHealthStatus {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()

	if len(gateway.workers) == 0 {
		return model.ComponentHealthStatus{Status: model.StatusUnknown}
	}

	queues := make([]string, 0, len(gateway.workers))
	for queueName := range gateway.workers {
		queues = append(queues, queueName)
	}
	sort.Strings(queues)

	result := model.ComponentHealthStatus{Status: model.StatusUp, Details: map[string]string{}}
	polling := 0
	for _, queueName := range queues {
		check := gateway.workers[queueName].HealthCheck()
		if check.Status == sqs.StatusUp {
			polling++
		} else {
			result.Status = model.StatusDown
		}

		result.Details[queueName+".status"] = string(check.Status)
		for key, value := range check.Details {
			result.Details[queueName+"."+key] = value
		}
	}
	result.Details["workers"] = strconv.Itoa(len(queues))
	result.Details["polling"] = strconv.Itoa(polling)
	return result
}
