package entity

import (
	"time"

	"weather-api/internal/domain/model"
)

// WeatherSample is a stored reading. ID is assigned by the store and RecordedAt
// is the UTC instant the row was inserted.
type WeatherSample struct {
	ID         int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	City       string    `json:"city" gorm:"column:city;not null"`
	Lat        float64   `json:"lat" gorm:"column:lat;not null"`
	Lon        float64   `json:"lon" gorm:"column:lon;not null"`
	TempC      float64   `json:"temp_c" gorm:"column:temp_c;not null"`
	FeelsLikeC float64   `json:"feels_like_c" gorm:"column:feels_like_c;not null"`
	Humidity   int       `json:"humidity" gorm:"column:humidity;not null"`
	WindMs     float64   `json:"wind_ms" gorm:"column:wind_ms;not null"`
	Rain1h     float64   `json:"rain_1h" gorm:"column:rain_1h;not null;default:0"`
	RecordedAt time.Time `json:"recorded_at" gorm:"column:recorded_at;not null;index"`
}

func (WeatherSample) TableName() string {
	return "weather_samples"
}

// NewWeatherSample copies a reading into an unsaved sample stamped at recordedAt.
func NewWeatherSample(reading model.CurrentWeather, recordedAt time.Time) WeatherSample {
	return WeatherSample{
		City:       reading.City,
		Lat:        reading.Lat,
		Lon:        reading.Lon,
		TempC:      reading.TempC,
		FeelsLikeC: reading.FeelsLikeC,
		Humidity:   reading.Humidity,
		WindMs:     reading.WindMs,
		Rain1h:     reading.Rain1h,
		RecordedAt: recordedAt.UTC(),
	}
}
