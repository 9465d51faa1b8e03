package health

import (
	"context"
	"time"

	"weather-api/internal/domain/gateway/db"
	"weather-api/internal/domain/gateway/queue"
	"weather-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	queueGateway queue.HealthGateway
	cacheChecker CacheHealthChecker
	now          func() time.Time
}

// NewHealthUseCase wires the checks. cacheChecker may be nil when Redis is disabled.
func NewHealthUseCase(dbGateway db.HealthDBGateway, queueGateway queue.HealthGateway, cacheChecker CacheHealthChecker) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		queueGateway: queueGateway,
		cacheChecker: cacheChecker,
		now:          time.Now,
	}
}

func (useCase *healthUseCase) Ping() model.PingResponse {
	return model.PingResponse{OK: true, Time: useCase.now().UTC().Format(time.RFC3339)}
}

// CheckHealth is DOWN when any component is DOWN. UNKNOWN components are optional and ignored.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	response := model.HealthResponse{
		Status:   model.StatusUp,
		Database: useCase.dbGateway.Health(ctx),
		Queue:    useCase.queueGateway.Health(ctx),
	}
	components := []model.ComponentHealthStatus{response.Database, response.Queue}

	if useCase.cacheChecker != nil {
		cache := useCase.cacheChecker.Health(ctx)
		response.Cache = &cache
		components = append(components, cache)
	}

	for _, component := range components {
		if component.Status == model.StatusDown {
			response.Status = model.StatusDown
		}
	}
	return response
}
