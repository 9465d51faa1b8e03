package db

import (
	"context"
	"database/sql"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

const (
	insertSampleQuery = `
		INSERT INTO weather_samples (city, lat, lon, temp_c, feels_like_c, humidity, wind_ms, rain_1h, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	selectSamplesSinceQuery = `
		SELECT id, city, lat, lon, temp_c, feels_like_c, humidity, wind_ms, rain_1h, recorded_at
		FROM weather_samples
		WHERE recorded_at >= ?
		ORDER BY id`
)

// SQLCSampleGateway stores samples through database/sql, on SQLite or PostgreSQL.
type SQLCSampleGateway struct {
	DB      *sql.DB
	Dialect Dialect
	now     func() time.Time
}

var _ SampleGateway = (*SQLCSampleGateway)(nil)

func NewSQLCSampleGateway(db *sql.DB, dialect Dialect) *SQLCSampleGateway {
	return &SQLCSampleGateway{DB: db, Dialect: dialect, now: time.Now}
}

// InitSchema creates the weather_samples table and its index when missing.
func (gateway *SQLCSampleGateway) InitSchema(ctx context.Context) error {
	for _, stmt := range gateway.Dialect.schema() {
		if _, err := gateway.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (gateway *SQLCSampleGateway) Create(ctx context.Context, reading model.CurrentWeather) (int64, error) {
	sample := entity.NewWeatherSample(reading, gateway.now())

	var id int64
	err := gateway.DB.QueryRowContext(ctx, gateway.Dialect.rebind(insertSampleQuery),
		sample.City, sample.Lat, sample.Lon, sample.TempC, sample.FeelsLikeC,
		sample.Humidity, sample.WindMs, sample.Rain1h,
		gateway.Dialect.encodeTime(sample.RecordedAt),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (gateway *SQLCSampleGateway) FindRecordedSince(ctx context.Context, cutoff time.Time) (results []entity.WeatherSample, err error) {
	rows, err := gateway.DB.QueryContext(ctx, gateway.Dialect.rebind(selectSamplesSinceQuery), gateway.Dialect.encodeTime(cutoff))
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results = make([]entity.WeatherSample, 0)
	for rows.Next() {
		var (
			s          entity.WeatherSample
			recordedAt storedTime
		)
		if err := rows.Scan(&s.ID, &s.City, &s.Lat, &s.Lon, &s.TempC, &s.FeelsLikeC,
			&s.Humidity, &s.WindMs, &s.Rain1h, &recordedAt); err != nil {
			return nil, err
		}
		s.RecordedAt = recordedAt.Time
		results = append(results, s)
	}
	return results, rows.Err()
}
