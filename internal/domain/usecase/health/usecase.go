package health

import (
	"context"

	"weather-api/internal/domain/model"
)

type UseCase interface {
	// Ping never fails.
	Ping() model.PingResponse
	CheckHealth(ctx context.Context) model.HealthResponse
}

// CacheHealthChecker reports the state of the lock backend.
type CacheHealthChecker interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}
