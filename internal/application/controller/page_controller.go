package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"weather-api/internal/application/view"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
)

// PageController serves the server-rendered index page.
type PageController struct {
	router      *echo.Echo
	useCase     weather.UseCase
	defaultCity string
	timeout     time.Duration
}

func NewPageController(router *echo.Echo, useCase weather.UseCase, defaultCity string, timeout time.Duration) *PageController {
	if defaultCity == "" {
		defaultCity = "Thane"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &PageController{router: router, useCase: useCase, defaultCity: defaultCity, timeout: timeout}
}

func (controller *PageController) InitPageRoutes() {
	controller.router.GET("/", controller.Index)
}

// Index renders the page with 200 even when the lookup fails.
func (controller *PageController) Index(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		city = controller.defaultCity
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), controller.timeout)
	defer cancel()

	page := view.IndexPage{CityQuery: city}
	current, err := controller.useCase.GetCurrentView(ctx, city)
	if err != nil {
		log.Warnw("index page lookup failed", "city", city, "error", err)
		page.Error = msg.GetMessage("weather.error.page")
	} else {
		page.Weather = current
	}

	return c.Render(http.StatusOK, view.IndexTemplate, page)
}
