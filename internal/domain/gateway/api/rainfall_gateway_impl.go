package api

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/http"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/util/numberutils"
)

const (
	nasaPowerProvider  = "NASA POWER"
	nasaPowerDailyPath = "/api/temporal/daily/point"
	powerDateLayout    = "20060102"
	seriesDateLayout   = "2006-01-02"
)

type nasaPowerGateway struct {
	httpClient *http.Client
}

// NewRainfallGateway creates a RainfallGateway for the NASA POWER API rooted at baseUrl.
func NewRainfallGateway(baseUrl string, clientOptions http.ClientOptions) RainfallGateway {
	return &nasaPowerGateway{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

func (g *nasaPowerGateway) FetchDailyRainfall(ctx context.Context, lat, lon float64, start, end time.Time) (*model.RainfallSeries, error) {
	resp, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(nasaPowerDailyPath).
		WithQueryParams(map[string]string{
			"parameters": external.PowerParameterRainfall,
			"community":  "RE",
			"longitude":  strconv.FormatFloat(lon, 'f', -1, 64),
			"latitude":   strconv.FormatFloat(lat, 'f', -1, 64),
			"start":      start.Format(powerDateLayout),
			"end":        end.Format(powerDateLayout),
			"format":     "JSON",
		}).
		WithSuccessResp(&external.PowerDailyResponse{}).
		Execute()
	if err != nil {
		return nil, toUpstreamError(nasaPowerProvider, err)
	}

	payload := resp.Success.(*external.PowerDailyResponse)
	series := &model.RainfallSeries{
		Lat:    lat,
		Lon:    lon,
		Series: NormalizeRainfall(payload.Properties.Parameter[external.PowerParameterRainfall]),
	}

	log.Debug(msg.GetMessage("weather.rainfall.fetched", len(series.Series), lat, lon))
	return series, nil
}

// NormalizeRainfall turns POWER's YYYYMMDD keyed values into an ascending series.
// Entries equal to the fill value and keys that are not dates are skipped.
func NormalizeRainfall(values map[string]float64) []model.RainfallPoint {
	type dated struct {
		day   time.Time
		value float64
	}

	days := make([]dated, 0, len(values))
	for key, value := range values {
		if value == external.PowerFillValue {
			continue
		}
		day, err := time.Parse(powerDateLayout, key)
		if err != nil {
			log.Warn(msg.GetMessage("weather.rainfall.skipped", key, err))
			continue
		}
		days = append(days, dated{day: day, value: value})
	}

	sort.Slice(days, func(i, j int) bool { return days[i].day.Before(days[j].day) })

	points := make([]model.RainfallPoint, 0, len(days))
	for _, d := range days {
		points = append(points, model.RainfallPoint{
			Date:   d.day.Format(seriesDateLayout),
			RainMm: numberutils.Round(d.value, 2),
		})
	}
	return points
}

// ParseDay accepts YYYY-MM-DD, RFC 3339 and YYYY-MM-DDTHH:MM:SS and returns the UTC calendar day.
func ParseDay(value string) (time.Time, error) {
	for _, layout := range []string{seriesDateLayout, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%s", msg.GetMessage("weather.error.bad-date", value))
}
