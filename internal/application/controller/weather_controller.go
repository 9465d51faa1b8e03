package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/pkg/msg"
	"weather-api/pkg/util/numberutils"
)

const (
	defaultCitySpec     = "Thane,IN"
	defaultHistoryHours = 72
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

type historyQuery struct {
	Hours int `validate:"gte=-87600,lte=87600"`
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/current", controller.GetCurrent)
	controller.api.POST("/weather/save", controller.SaveCurrent)
	controller.api.GET("/weather/history", controller.QueryHistory)
}

// GetCurrent godoc
// @Summary Get current weather
// @Description Fetch and normalize the current OpenWeather reading for a city
// @Tags weather
// @Produce json
// @Param city query string false "City as name[,country]" default(Thane,IN)
// @Success 200 {object} model.CurrentWeather
// @Failure 500 {object} model.ErrorResponse "Missing API key or upstream failure"
// @Router /weather/current [get]
func (controller *WeatherController) GetCurrent(c echo.Context) error {
	reading, err := controller.useCase.GetCurrent(c.Request().Context(), cityParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reading)
}

// SaveCurrent godoc
// @Summary Store current weather
// @Description Fetch the current reading for a city and store it as a history sample
// @Tags weather
// @Produce json
// @Param city query string false "City as name[,country]" default(Thane,IN)
// @Success 200 {object} model.SaveResponse
// @Failure 500 {object} model.ErrorResponse "Missing API key, upstream or storage failure"
// @Router /weather/save [post]
func (controller *WeatherController) SaveCurrent(c echo.Context) error {
	id, err := controller.useCase.SaveCurrent(c.Request().Context(), cityParam(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.SaveResponse{SavedID: id})
}

// QueryHistory godoc
// @Summary Query stored samples
// @Description Samples recorded in the last hours whose city contains the part of city before the first comma, case-insensitively
// @Tags weather
// @Produce json
// @Param city query string false "City filter" default(Thane,IN)
// @Param hours query int false "Window in hours" default(72)
// @Success 200 {array} entity.WeatherSample
// @Failure 400 {object} model.ErrorResponse "Invalid hours"
// @Failure 500 {object} model.ErrorResponse "Storage failure"
// @Router /weather/history [get]
func (controller *WeatherController) QueryHistory(c echo.Context) error {
	hours, err := numberutils.ToIntWithDefault(c.QueryParam("hours"), defaultHistoryHours)
	if err != nil {
		return badRequest(c, msg.GetMessage("weather.error.bad-hours"))
	}
	if err := c.Validate(&historyQuery{Hours: hours}); err != nil {
		return respondError(c, err)
	}

	samples, err := controller.useCase.QueryHistory(c.Request().Context(), cityParam(c), hours)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, samples)
}

func cityParam(c echo.Context) string {
	if city := c.QueryParam("city"); city != "" {
		return city
	}
	return defaultCitySpec
}
