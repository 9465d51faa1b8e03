package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/health"
)

type HealthController struct {
	router  *echo.Echo
	useCase health.UseCase
}

func NewHealthController(router *echo.Echo, useCase health.UseCase) *HealthController {
	return &HealthController{router: router, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.router.GET("/ping", controller.Ping)
	controller.router.GET("/health", controller.CheckHealth)
}

// Ping godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} model.PingResponse
// @Router /ping [get]
func (controller *HealthController) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.Ping())
}

// CheckHealth godoc
// @Summary Readiness probe
// @Description Store, capture queue and lock backend status
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Failure 503 {object} model.HealthResponse
// @Router /health [get]
func (controller *HealthController) CheckHealth(c echo.Context) error {
	healthResponse := controller.useCase.CheckHealth(c.Request().Context())
	if healthResponse.Status == model.StatusDown {
		return c.JSON(http.StatusServiceUnavailable, healthResponse)
	}
	return c.JSON(http.StatusOK, healthResponse)
}
