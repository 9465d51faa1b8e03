package redis

import (
	"context"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	if err := NewRedisConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if err := NewRedisConfig().WithPort(0).Validate(); err == nil {
		t.Error("expected an error for port 0")
	}
	if err := NewRedisConfig().WithDatabase(16).Validate(); err == nil {
		t.Error("expected an error for database 16")
	}
	if _, err := NewClient(NewRedisConfig().WithHost("")); err == nil {
		t.Error("expected NewClient to reject an empty host")
	}
}

func TestScheduledTaskLockKey(t *testing.T) {
	client, err := NewClient(nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	lock := NewScheduledTaskLock(client, "weather_capture_scheduler", time.Minute, 20*time.Second, "weather-api")
	if got := lock.Key(); got != "weather-api::weather_capture_scheduler" {
		t.Errorf("Key() = %q", got)
	}
	other := NewScheduledTaskLock(client, "weather_capture_scheduler", time.Minute, 20*time.Second, "")
	if other.Key() != "weather_capture_scheduler" {
		t.Errorf("Key() without namespace = %q", other.Key())
	}
	if lock.value == other.value {
		t.Error("each lock should carry its own owner token")
	}
}

func TestHealthCheckReportsDownWithoutServer(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithHost("127.0.0.1").WithPort(1))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	health := client.HealthCheck(context.Background(), 200*time.Millisecond)
	if health.Status != StatusDown {
		t.Errorf("status = %s", health.Status)
	}
	if health.Details["address"] != "127.0.0.1:1" {
		t.Errorf("address = %q", health.Details["address"])
	}
}
