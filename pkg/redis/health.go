package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus represents the health status
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthCheck is the outcome of Client.HealthCheck.
type HealthCheck struct {
	Status  HealthStatus
	Details map[string]string
}

// HealthCheck pings the server within timeout and reports pool statistics.
func (c *Client) HealthCheck(ctx context.Context, timeout time.Duration) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	err := c.Ping(ctx)
	stats := c.rdb.PoolStats()

	details := map[string]string{
		"address":     c.config.Addr(),
		"latency_ms":  strconv.FormatInt(time.Since(started).Milliseconds(), 10),
		"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
	}
	if err != nil {
		details["message"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}
	return HealthCheck{Status: StatusUp, Details: details}
}
