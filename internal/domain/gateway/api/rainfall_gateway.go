package api

import (
	"context"
	"time"

	"weather-api/internal/domain/model"
)

// RainfallGateway reads daily corrected precipitation from NASA POWER.
type RainfallGateway interface {
	// FetchDailyRainfall returns the series for the inclusive day window [start, end].
	// Fill values are dropped and amounts are rounded to two decimals.
	FetchDailyRainfall(ctx context.Context, lat, lon float64, start, end time.Time) (*model.RainfallSeries, error)
}
