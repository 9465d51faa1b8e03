package queue

import (
	"context"

	"weather-api/internal/domain/model"
	"weather-api/pkg/sqs"
)

// WorkerProbe is the part of a capture worker the health check reads.
type WorkerProbe interface {
	HealthCheck() sqs.WorkerHealth
}

// HealthGateway tracks the capture workers consuming the queue.
type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
	RegisterWorker(queueName string, worker WorkerProbe)
	UnregisterWorker(queueName string)
}
