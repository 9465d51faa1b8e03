package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSkipRequestLog(t *testing.T) {
	e := echo.New()
	cases := map[string]bool{
		"/ping":                true,
		"/health":              true,
		"/swagger/index.html":  true,
		"/api/weather/current": false,
		"/api/weather/healthy": false,
		"/":                    false,
	}
	for path, want := range cases {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
		if got := skipRequestLog(c); got != want {
			t.Errorf("skipRequestLog(%s) = %v, want %v", path, got, want)
		}
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	e := echo.New()
	SetupCORS(e, []string{"http://localhost:8001"})
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:8001")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "http://localhost:8001" {
		t.Errorf("allow origin = %q", got)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowCredentials); got != "true" {
		t.Errorf("allow credentials = %q", got)
	}
}
