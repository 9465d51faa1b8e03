package api

import (
	"context"

	"weather-api/internal/domain/model"
)

// WeatherGateway reads current conditions from OpenWeather.
type WeatherGateway interface {
	// FetchCurrent resolves citySpec (for example "Thane,IN") with the given API key
	// and returns the normalized reading along with the page presentation fields.
	// Failures are reported as *model.UpstreamError.
	FetchCurrent(ctx context.Context, apiKey, citySpec string) (*model.CurrentConditions, error)
}
