package processor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
)

// CaptureProcessor stores one reading per capture queue message.
type CaptureProcessor struct {
	weatherUseCase weather.UseCase
}

func NewCaptureProcessor(weatherUseCase weather.UseCase) *CaptureProcessor {
	return &CaptureProcessor{
		weatherUseCase: weatherUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface.
// Every message is acknowledged: malformed requests and failed captures are
// logged and dropped so the queue never redelivers a capture.
func (p *CaptureProcessor) HandleMessage(ctx context.Context, message types.Message) error {
	request, err := decodeCaptureRequest(message)
	if err != nil {
		log.Warn(msg.GetMessage("capture.processor.invalid", err))
		return nil
	}

	log.Info(msg.GetMessage("capture.processor.received", request.City), zap.String("request_id", request.RequestID))

	if _, err := p.weatherUseCase.SaveCurrent(ctx, request.City); err != nil {
		log.Error(msg.GetMessage("capture.processor.failed", request.City, err), zap.String("request_id", request.RequestID))
	}
	return nil
}

func decodeCaptureRequest(message types.Message) (*model.CaptureRequest, error) {
	if message.Body == nil {
		return nil, errors.New("empty body")
	}

	var request model.CaptureRequest
	if err := json.Unmarshal([]byte(*message.Body), &request); err != nil {
		return nil, err
	}
	if strings.TrimSpace(request.City) == "" {
		return nil, errors.New("city is required")
	}
	return &request, nil
}
