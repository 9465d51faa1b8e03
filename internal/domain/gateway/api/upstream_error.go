package api

import (
	"errors"

	"weather-api/internal/domain/model"
	"weather-api/pkg/http"
)

// toUpstreamError keeps the upstream status and raw body when the provider answered,
// and wraps the transport error otherwise.
func toUpstreamError(provider string, err error) error {
	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		return &model.UpstreamError{
			Provider: provider,
			Status:   statusErr.StatusCode,
			Body:     string(statusErr.Body),
			Err:      err,
		}
	}
	return &model.UpstreamError{Provider: provider, Err: err}
}
