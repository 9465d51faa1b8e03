package api

import (
	"context"
	"fmt"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/http"
	"weather-api/pkg/msg"
)

const (
	openWeatherProvider    = "OpenWeather"
	openWeatherCurrentPath = "/data/2.5/weather"
)

type openWeatherGateway struct {
	httpClient *http.Client
}

// NewWeatherGateway creates a WeatherGateway for the OpenWeather API rooted at baseUrl.
func NewWeatherGateway(baseUrl string, clientOptions http.ClientOptions) WeatherGateway {
	return &openWeatherGateway{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

func (g *openWeatherGateway) FetchCurrent(ctx context.Context, apiKey, citySpec string) (*model.CurrentConditions, error) {
	resp, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(openWeatherCurrentPath).
		WithQueryParams(map[string]string{
			"q":     citySpec,
			"appid": apiKey,
			"units": "metric",
		}).
		WithSuccessResp(&external.OpenWeatherResponse{}).
		Execute()
	if err != nil {
		return nil, toUpstreamError(openWeatherProvider, err)
	}

	return NormalizeCurrent(resp.Success.(*external.OpenWeatherResponse))
}

// NormalizeCurrent maps an OpenWeather payload onto the reading shape.
// rain.1h and sys.country default to 0 and "" when absent; every other field is required.
func NormalizeCurrent(payload *external.OpenWeatherResponse) (*model.CurrentConditions, error) {
	missing := func(field string) error {
		return &model.UpstreamError{
			Provider: openWeatherProvider,
			Err:      fmt.Errorf("%s", msg.GetMessage("weather.error.incomplete", openWeatherProvider, field)),
		}
	}

	switch {
	case payload.Coord.Lat == nil:
		return nil, missing("coord.lat")
	case payload.Coord.Lon == nil:
		return nil, missing("coord.lon")
	case payload.Main.Temp == nil:
		return nil, missing("main.temp")
	case payload.Main.FeelsLike == nil:
		return nil, missing("main.feels_like")
	case payload.Main.Humidity == nil:
		return nil, missing("main.humidity")
	case payload.Wind.Speed == nil:
		return nil, missing("wind.speed")
	}

	rain := 0.0
	if payload.Rain != nil && payload.Rain.OneHour != nil {
		rain = *payload.Rain.OneHour
	}

	conditions := &model.CurrentConditions{
		Reading: model.CurrentWeather{
			City:       payload.Name + "," + payload.Sys.Country,
			Lat:        *payload.Coord.Lat,
			Lon:        *payload.Coord.Lon,
			TempC:      *payload.Main.Temp,
			FeelsLikeC: *payload.Main.FeelsLike,
			Humidity:   *payload.Main.Humidity,
			WindMs:     *payload.Wind.Speed,
			Rain1h:     rain,
		},
		Name:    payload.Name,
		Country: payload.Sys.Country,
	}
	if len(payload.Weather) > 0 {
		conditions.Description = payload.Weather[0].Description
		conditions.Icon = payload.Weather[0].Icon
	}
	return conditions, nil
}
