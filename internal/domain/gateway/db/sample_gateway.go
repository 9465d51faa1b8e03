package db

import (
	"context"
	"strings"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

// SampleGateway persists weather samples.
type SampleGateway interface {
	// Create stores reading stamped with the current UTC instant and returns the new id.
	// Ids are strictly increasing and never reused.
	Create(ctx context.Context, reading model.CurrentWeather) (int64, error)

	// FindRecordedSince returns every sample with recorded_at >= cutoff, in id order.
	FindRecordedSince(ctx context.Context, cutoff time.Time) ([]entity.WeatherSample, error)
}

// MatchCity reports whether a stored city matches citySpec. Only the part of
// citySpec before the first comma is used, compared as a case-insensitive substring.
func MatchCity(storedCity, citySpec string) bool {
	name := strings.ToLower(strings.SplitN(citySpec, ",", 2)[0])
	return strings.Contains(strings.ToLower(storedCity), name)
}

// FilterByCity keeps the samples matching citySpec, preserving order.
func FilterByCity(samples []entity.WeatherSample, citySpec string) []entity.WeatherSample {
	matched := make([]entity.WeatherSample, 0, len(samples))
	for _, s := range samples {
		if MatchCity(s.City, citySpec) {
			matched = append(matched, s)
		}
	}
	return matched
}
