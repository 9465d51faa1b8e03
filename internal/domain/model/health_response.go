package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus is the state of one dependency.
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse aggregates the store, queue and lock backend states.
// Queue is UNKNOWN when no capture worker runs; Cache is omitted without Redis.
type HealthResponse struct {
	Status   HealthStatus           `json:"status"`
	Database ComponentHealthStatus  `json:"database"`
	Queue    ComponentHealthStatus  `json:"queue"`
	Cache    *ComponentHealthStatus `json:"cache,omitempty"`
}

// PingResponse is the liveness answer. Time is ISO-8601 in UTC.
type PingResponse struct {
	OK   bool   `json:"ok" example:"true"`
	Time string `json:"time" example:"2024-01-02T03:04:05Z"`
}
