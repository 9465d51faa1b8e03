package model

import (
	"fmt"
	"net/http"
)

// ConfigError reports a required setting that is absent, such as the OpenWeather API key.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// UpstreamError reports a failed call to an external provider.
// Status is the upstream HTTP status, or 0 when the provider was never reached
// or answered with a payload that could not be used. Body is the raw upstream text.
type UpstreamError struct {
	Provider string
	Status   int
	Body     string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s upstream error: status %d: %s", e.Provider, e.Status, e.Body)
	}
	return fmt.Sprintf("%s upstream error: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HTTPStatus is the status echoed to API clients: the upstream status when one was
// received, 500 otherwise.
func (e *UpstreamError) HTTPStatus() int {
	if e.Status >= 400 && e.Status <= 599 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// Detail is the body echoed to API clients.
func (e *UpstreamError) Detail() string {
	if e.Status > 0 {
		return e.Body
	}
	return e.Error()
}

// StorageError reports a failed store operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
