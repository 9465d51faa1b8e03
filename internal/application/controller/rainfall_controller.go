package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/weather"
)

type RainfallController struct {
	api     *echo.Group
	useCase weather.UseCase
}

type rainfallQuery struct {
	Lat float64 `validate:"latitude"`
	Lon float64 `validate:"longitude"`
}

func NewRainfallController(api *echo.Group, useCase weather.UseCase) *RainfallController {
	return &RainfallController{api: api, useCase: useCase}
}

func (controller *RainfallController) InitRainfallRoutes() {
	controller.api.GET("/nasa/rainfall", controller.GetRainfall)
}

// GetRainfall godoc
// @Summary Daily rainfall series
// @Description Daily corrected precipitation from NASA POWER. Without start and end the last 7 days up to today are returned.
// @Tags rainfall
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param start query string false "First day (YYYY-MM-DD)"
// @Param end query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} model.RainfallSeries
// @Failure 400 {object} model.ErrorResponse "Invalid coordinates or dates"
// @Failure 500 {object} model.ErrorResponse "Upstream failure"
// @Router /nasa/rainfall [get]
func (controller *RainfallController) GetRainfall(c echo.Context) error {
	var (
		query      rainfallQuery
		start, end string
	)
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &query.Lat).
		MustFloat64("lon", &query.Lon).
		String("start", &start).
		String("end", &end).
		BindError()
	if err != nil {
		return respondError(c, err)
	}
	if err := c.Validate(&query); err != nil {
		return respondError(c, err)
	}

	startDay, err := optionalDay(start)
	if err != nil {
		return badRequest(c, err.Error())
	}
	endDay, err := optionalDay(end)
	if err != nil {
		return badRequest(c, err.Error())
	}

	series, err := controller.useCase.GetRainfallSeries(c.Request().Context(), query.Lat, query.Lon, startDay, endDay)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Detail: err.Error()})
	}
	return c.JSON(http.StatusOK, series)
}

func optionalDay(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	day, err := api.ParseDay(value)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
