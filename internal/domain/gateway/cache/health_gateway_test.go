package cache

import (
	"context"
	"testing"

	"weather-api/internal/domain/model"
	"weather-api/pkg/redis"
)

func TestUnreachableRedisIsDown(t *testing.T) {
	client, err := redis.NewClient(redis.NewRedisConfig().WithHost("127.0.0.1").WithPort(1))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer func() { _ = client.Close() }()

	status := NewRedisHealthGateway(client).Health(context.Background())
	if status.Status != model.StatusDown {
		t.Errorf("status = %s", status.Status)
	}
	if status.Details["address"] != "127.0.0.1:1" || status.Details["message"] == "" {
		t.Errorf("details = %v", status.Details)
	}
}
