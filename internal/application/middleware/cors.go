package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

var defaultAllowOrigins = []string{
	"http://localhost:8001",
	"http://127.0.0.1:8001",
	"http://localhost:8000",
}

// SetupCORS allows credentials from allowOrigins. echo's default method list
// covers every verb and requested headers are reflected back.
func SetupCORS(e *echo.Echo, allowOrigins []string) {
	if len(allowOrigins) == 0 {
		allowOrigins = defaultAllowOrigins
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     allowOrigins,
		AllowCredentials: true,
	}))
}
