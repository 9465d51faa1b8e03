package db

import (
	"context"
	"time"

	"gorm.io/gorm"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

// GormSampleGateway stores samples through gorm.
type GormSampleGateway struct {
	DB  *gorm.DB
	now func() time.Time
}

var _ SampleGateway = (*GormSampleGateway)(nil)

func NewGormSampleGateway(db *gorm.DB) *GormSampleGateway {
	return &GormSampleGateway{DB: db, now: time.Now}
}

// Migrate creates or updates the weather_samples table.
func (gateway *GormSampleGateway) Migrate(ctx context.Context) error {
	return gateway.DB.WithContext(ctx).AutoMigrate(&entity.WeatherSample{})
}

func (gateway *GormSampleGateway) Create(ctx context.Context, reading model.CurrentWeather) (int64, error) {
	sample := entity.NewWeatherSample(reading, gateway.now())
	if err := gateway.DB.WithContext(ctx).Create(&sample).Error; err != nil {
		return 0, err
	}
	return sample.ID, nil
}

func (gateway *GormSampleGateway) FindRecordedSince(ctx context.Context, cutoff time.Time) ([]entity.WeatherSample, error) {
	results := make([]entity.WeatherSample, 0)
	err := gateway.DB.WithContext(ctx).
		Where("recorded_at >= ?", cutoff.UTC()).
		Order("id").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].RecordedAt = results[i].RecordedAt.UTC()
	}
	return results, nil
}
