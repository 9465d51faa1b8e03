package view

import (
	"embed"
	"html/template"

	"github.com/labstack/echo/v4"

	"weather-api/internal/domain/model"
)

const IndexTemplate = "index.html"

//go:embed templates/*.html
var templates embed.FS

// IndexPage is the data bound to the index template. Error and Weather are exclusive.
type IndexPage struct {
	CityQuery string
	Weather   *model.WeatherView
	Error     string
}

// NewRenderer parses the embedded templates for echo's Render.
func NewRenderer() (*echo.TemplateRenderer, error) {
	parsed, err := template.ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &echo.TemplateRenderer{Template: parsed}, nil
}
