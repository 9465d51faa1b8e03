package weather

import (
	"context"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

type UseCase interface {
	// GetCurrent returns the normalized current reading for citySpec.
	// It fails with *model.ConfigError, before any network call, when no API key is set.
	GetCurrent(ctx context.Context, citySpec string) (*model.CurrentWeather, error)

	// GetCurrentView returns the display data for the index page. Temperatures round half to even.
	GetCurrentView(ctx context.Context, citySpec string) (*model.WeatherView, error)

	// SaveCurrent fetches the current reading and stores it, returning the new sample id.
	SaveCurrent(ctx context.Context, citySpec string) (int64, error)

	// QueryHistory returns samples recorded within the last hours whose city matches citySpec.
	QueryHistory(ctx context.Context, citySpec string, hours int) ([]entity.WeatherSample, error)

	// GetRainfallSeries returns daily rainfall for a coordinate. Nil bounds default to
	// the configured window ending today.
	GetRainfallSeries(ctx context.Context, lat, lon float64, start, end *time.Time) (*model.RainfallSeries, error)

	// CaptureScheduled stores a reading for every configured capture city, either by
	// enqueueing capture requests or, without a queue, by saving them inline.
	CaptureScheduled(ctx context.Context, requestID string) error
}
