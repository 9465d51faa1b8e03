package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

type coordinates struct {
	Lat float64 `validate:"latitude"`
	Lon float64 `validate:"longitude"`
}

func TestRequestValidator(t *testing.T) {
	rv := NewRequestValidator()

	if err := rv.Validate(&coordinates{Lat: 19.2, Lon: 72.97}); err != nil {
		t.Fatalf("valid coordinates rejected: %v", err)
	}

	err := rv.Validate(&coordinates{Lat: 91, Lon: 0})
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("code = %d", httpErr.Code)
	}
	if httpErr.Message != "Lat=91 failed the latitude rule" {
		t.Errorf("message = %v", httpErr.Message)
	}
}
