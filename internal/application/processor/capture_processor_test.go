package processor

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

type savingUseCase struct {
	cities []string
	err    error
}

func (s *savingUseCase) GetCurrent(context.Context, string) (*model.CurrentWeather, error) {
	return nil, nil
}

func (s *savingUseCase) GetCurrentView(context.Context, string) (*model.WeatherView, error) {
	return nil, nil
}

func (s *savingUseCase) SaveCurrent(_ context.Context, citySpec string) (int64, error) {
	s.cities = append(s.cities, citySpec)
	return int64(len(s.cities)), s.err
}

func (s *savingUseCase) QueryHistory(context.Context, string, int) ([]entity.WeatherSample, error) {
	return nil, nil
}

func (s *savingUseCase) GetRainfallSeries(context.Context, float64, float64, *time.Time, *time.Time) (*model.RainfallSeries, error) {
	return nil, nil
}

func (s *savingUseCase) CaptureScheduled(context.Context, string) error {
	return nil
}

func TestHandleMessageSavesCity(t *testing.T) {
	uc := &savingUseCase{}
	p := NewCaptureProcessor(uc)

	err := p.HandleMessage(context.Background(), types.Message{
		MessageId: aws.String("m-1"),
		Body:      aws.String(`{"city":"Thane,IN","request_id":"r-1"}`),
	})
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if len(uc.cities) != 1 || uc.cities[0] != "Thane,IN" {
		t.Errorf("saved cities = %v", uc.cities)
	}
}

func TestHandleMessageAcknowledgesFailedCapture(t *testing.T) {
	uc := &savingUseCase{err: &model.UpstreamError{Provider: "OpenWeather", Status: 429, Body: "slow down"}}
	p := NewCaptureProcessor(uc)

	err := p.HandleMessage(context.Background(), types.Message{Body: aws.String(`{"city":"Pune,IN"}`)})
	if err != nil {
		t.Fatalf("failed capture should be acknowledged, got %v", err)
	}
	if len(uc.cities) != 1 || uc.cities[0] != "Pune,IN" {
		t.Errorf("capture should be attempted exactly once, got %v", uc.cities)
	}
}

func TestHandleMessageAcknowledgesMalformedRequests(t *testing.T) {
	uc := &savingUseCase{}
	p := NewCaptureProcessor(uc)

	for _, body := range []*string{nil, aws.String("not json"), aws.String(`{"city":"  "}`)} {
		if err := p.HandleMessage(context.Background(), types.Message{Body: body}); err != nil {
			t.Errorf("malformed message should be acknowledged, got %v", err)
		}
	}
	if len(uc.cities) != 0 {
		t.Errorf("nothing should be saved, got %v", uc.cities)
	}
}
