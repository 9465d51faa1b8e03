package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-api/internal/domain/model"
)

// respondError writes {"detail": ...} with the status matching err.
// Upstream failures echo the provider's status and body.
func respondError(c echo.Context, err error) error {
	var (
		configErr   *model.ConfigError
		upstreamErr *model.UpstreamError
		storageErr  *model.StorageError
		bindErr     *echo.BindingError
		httpErr     *echo.HTTPError
	)

	switch {
	case errors.As(err, &configErr):
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Detail: configErr.Message})
	case errors.As(err, &upstreamErr):
		return c.JSON(upstreamErr.HTTPStatus(), model.ErrorResponse{Detail: upstreamErr.Detail()})
	case errors.As(err, &storageErr):
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Detail: storageErr.Error()})
	case errors.As(err, &bindErr):
		detail := fmt.Sprintf("%s: %s", bindErr.Field, httpMessage(bindErr.HTTPError))
		return c.JSON(bindErr.Code, model.ErrorResponse{Detail: detail})
	case errors.As(err, &httpErr):
		return c.JSON(httpErr.Code, model.ErrorResponse{Detail: httpMessage(httpErr)})
	default:
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Detail: err.Error()})
	}
}

func badRequest(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadRequest, model.ErrorResponse{Detail: detail})
}

func httpMessage(httpErr *echo.HTTPError) string {
	if message, ok := httpErr.Message.(string); ok {
		return message
	}
	return http.StatusText(httpErr.Code)
}
