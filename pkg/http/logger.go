package http

import (
	"weather-api/pkg/log"
)

const maxLoggedBody = 512

// HTTPLogger receives one call before each request and one after its outcome is known.
type HTTPLogger interface {
	LogRequest(method, url string, headers map[string]string, body string)
	LogResponseSuccess(method, url string, httpStatus int, latency int64)
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)
}

type zapLogger struct{}

// NewZapLogger returns an HTTPLogger writing through pkg/log.
func NewZapLogger() HTTPLogger {
	return zapLogger{}
}

func (zapLogger) LogRequest(method, url string, _ map[string]string, body string) {
	log.Debugw("outbound request", "method", method, "url", url, "body", truncate(body))
}

func (zapLogger) LogResponseSuccess(method, url string, httpStatus int, latency int64) {
	log.Infow("outbound response", "method", method, "url", url, "status", httpStatus, "latency_ms", latency)
}

func (zapLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warnw("outbound request failed",
		"method", method,
		"url", url,
		"status", httpStatus,
		"latency_ms", latency,
		"response", truncate(responseBody),
		"error", err)
}

func truncate(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	return s[:maxLoggedBody] + "..."
}
