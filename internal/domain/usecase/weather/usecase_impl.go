package weather

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/gateway/db"
	"weather-api/internal/domain/gateway/queue"
	"weather-api/internal/domain/model"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
)

// Config holds the settings the use case needs from properties.
type Config struct {
	APIKey         string
	WindowDays     int
	CaptureCities  []string
	CaptureQueue   string
	CaptureTimeout time.Duration
}

type weatherUseCase struct {
	config          Config
	weatherGateway  api.WeatherGateway
	rainfallGateway api.RainfallGateway
	sampleGateway   db.SampleGateway
	queueSender     queue.Sender
	now             func() time.Time
}

// NewWeatherUseCase wires the use case. queueSender may be nil when no capture queue is configured.
func NewWeatherUseCase(config Config, weatherGateway api.WeatherGateway, rainfallGateway api.RainfallGateway, sampleGateway db.SampleGateway, queueSender queue.Sender) UseCase {
	if config.WindowDays < 1 {
		config.WindowDays = 7
	}
	if config.CaptureTimeout <= 0 {
		config.CaptureTimeout = 30 * time.Second
	}
	return &weatherUseCase{
		config:          config,
		weatherGateway:  weatherGateway,
		rainfallGateway: rainfallGateway,
		sampleGateway:   sampleGateway,
		queueSender:     queueSender,
		now:             time.Now,
	}
}

func (uc *weatherUseCase) fetchConditions(ctx context.Context, citySpec string) (*model.CurrentConditions, error) {
	if uc.config.APIKey == "" {
		return nil, &model.ConfigError{Message: msg.GetMessage("weather.error.missing-key")}
	}

	conditions, err := uc.weatherGateway.FetchCurrent(ctx, uc.config.APIKey, citySpec)
	if err != nil {
		return nil, err
	}

	log.Debug(msg.GetMessage("weather.current.fetched", citySpec))
	return conditions, nil
}

func (uc *weatherUseCase) GetCurrent(ctx context.Context, citySpec string) (*model.CurrentWeather, error) {
	conditions, err := uc.fetchConditions(ctx, citySpec)
	if err != nil {
		return nil, err
	}
	return &conditions.Reading, nil
}

func (uc *weatherUseCase) GetCurrentView(ctx context.Context, citySpec string) (*model.WeatherView, error) {
	conditions, err := uc.fetchConditions(ctx, citySpec)
	if err != nil {
		return nil, err
	}

	return &model.WeatherView{
		City:        conditions.Name + ", " + conditions.Country,
		Temp:        int(math.RoundToEven(conditions.Reading.TempC)),
		FeelsLike:   int(math.RoundToEven(conditions.Reading.FeelsLikeC)),
		Description: cases.Title(language.Und).String(conditions.Description),
		Icon:        conditions.Icon,
		Humidity:    conditions.Reading.Humidity,
		Wind:        conditions.Reading.WindMs,
	}, nil
}

// SaveCurrent does not retry: a reading whose insert fails is logged and dropped.
func (uc *weatherUseCase) SaveCurrent(ctx context.Context, citySpec string) (int64, error) {
	reading, err := uc.GetCurrent(ctx, citySpec)
	if err != nil {
		return 0, err
	}

	id, err := uc.sampleGateway.Create(ctx, *reading)
	if err != nil {
		log.Error(msg.GetMessage("weather.save.discarded", reading.City, err),
			zap.String("city", reading.City),
			zap.Error(err))
		return 0, &model.StorageError{Op: "insert", Err: err}
	}

	log.Info(msg.GetMessage("weather.save.done", id, reading.City), zap.Int64("sample_id", id))
	return id, nil
}

func (uc *weatherUseCase) QueryHistory(ctx context.Context, citySpec string, hours int) ([]entity.WeatherSample, error) {
	cutoff := uc.now().UTC().Add(-time.Duration(hours) * time.Hour)

	samples, err := uc.sampleGateway.FindRecordedSince(ctx, cutoff)
	if err != nil {
		return nil, &model.StorageError{Op: "query", Err: err}
	}

	matched := db.FilterByCity(samples, citySpec)
	log.Debug(msg.GetMessage("weather.history.queried", citySpec, hours, len(matched)))
	return matched, nil
}

func (uc *weatherUseCase) GetRainfallSeries(ctx context.Context, lat, lon float64, start, end *time.Time) (*model.RainfallSeries, error) {
	windowEnd := truncateToDay(uc.now())
	if end != nil {
		windowEnd = truncateToDay(*end)
	}
	windowStart := windowEnd.AddDate(0, 0, -(uc.config.WindowDays - 1))
	if start != nil {
		windowStart = truncateToDay(*start)
	}

	return uc.rainfallGateway.FetchDailyRainfall(ctx, lat, lon, windowStart, windowEnd)
}

func (uc *weatherUseCase) CaptureScheduled(ctx context.Context, requestID string) error {
	cities := uc.config.CaptureCities
	log.Info(msg.GetMessage("capture.schedule.start", len(cities)), zap.String("request_id", requestID))
	if len(cities) == 0 {
		return nil
	}

	if uc.config.CaptureQueue != "" && uc.queueSender != nil {
		return uc.enqueueCaptures(ctx, requestID, cities)
	}
	return uc.captureInline(ctx, requestID, cities)
}

func (uc *weatherUseCase) enqueueCaptures(ctx context.Context, requestID string, cities []string) error {
	messages := make([]queue.BatchMessage, len(cities))
	for i, city := range cities {
		messages[i] = queue.BatchMessage{
			MessageID: fmt.Sprintf("capture-%d", i),
			Body:      model.CaptureRequest{City: city, RequestID: requestID},
		}
	}

	result, err := uc.queueSender.SendMessageBatch(ctx, uc.config.CaptureQueue, messages)
	if err != nil {
		log.Error("Failed to enqueue capture requests", zap.String("request_id", requestID), zap.Error(err))
		return fmt.Errorf("failed to enqueue capture requests: %w", err)
	}

	for _, failedID := range result.Failed {
		log.Warn("Failed to enqueue capture request", zap.String("request_id", requestID), zap.String("message_id", failedID))
	}
	log.Info(msg.GetMessage("capture.schedule.enqueued", len(result.Successful), uc.config.CaptureQueue),
		zap.String("request_id", requestID),
		zap.Int("failed", len(result.Failed)))

	if len(result.Failed) > 0 {
		return fmt.Errorf("%d of %d capture requests were not enqueued", len(result.Failed), len(messages))
	}
	return nil
}

// captureInline saves each city in turn. Failures are logged and the run continues.
func (uc *weatherUseCase) captureInline(ctx context.Context, requestID string, cities []string) error {
	var errs []error
	for _, city := range cities {
		cityCtx, cancel := context.WithTimeout(ctx, uc.config.CaptureTimeout)
		_, err := uc.SaveCurrent(cityCtx, city)
		cancel()

		if err != nil {
			log.Warn(msg.GetMessage("capture.schedule.failed", city, err), zap.String("request_id", requestID))
			errs = append(errs, fmt.Errorf("%s: %w", city, err))
		}
	}
	return errors.Join(errs...)
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
