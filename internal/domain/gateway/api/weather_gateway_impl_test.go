package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-api/internal/domain/model"
	pkghttp "weather-api/pkg/http"
)

const thanePayload = `{
  "coord": {"lon": 72.9667, "lat": 19.2},
  "weather": [{"id": 802, "main": "Clouds", "description": "scattered clouds", "icon": "03d"}],
  "main": {"temp": 30.5, "feels_like": 34.4, "humidity": 62},
  "wind": {"speed": 4.12},
  "sys": {"country": "IN"},
  "name": "Thane"
}`

func newOpenWeatherServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("path = %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("q") != "Thane,IN" || query.Get("appid") != "k" || query.Get("units") != "metric" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchCurrentNormalizesPayload(t *testing.T) {
	srv := newOpenWeatherServer(t, http.StatusOK, thanePayload)
	gateway := NewWeatherGateway(srv.URL, pkghttp.ClientOptions{})

	conditions, err := gateway.FetchCurrent(context.Background(), "k", "Thane,IN")
	if err != nil {
		t.Fatalf("FetchCurrent: %v", err)
	}

	want := model.CurrentWeather{
		City:       "Thane,IN",
		Lat:        19.2,
		Lon:        72.9667,
		TempC:      30.5,
		FeelsLikeC: 34.4,
		Humidity:   62,
		WindMs:     4.12,
		Rain1h:     0,
	}
	if conditions.Reading != want {
		t.Errorf("reading = %+v, want %+v", conditions.Reading, want)
	}
	if conditions.Description != "scattered clouds" || conditions.Icon != "03d" {
		t.Errorf("conditions = %+v", conditions)
	}
}

func TestFetchCurrentEchoesUpstreamFailure(t *testing.T) {
	body := `{"cod":401,"message":"Invalid API key"}`
	srv := newOpenWeatherServer(t, http.StatusUnauthorized, body)
	gateway := NewWeatherGateway(srv.URL, pkghttp.ClientOptions{})

	_, err := gateway.FetchCurrent(context.Background(), "k", "Thane,IN")

	var upstream *model.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.HTTPStatus() != http.StatusUnauthorized {
		t.Errorf("status = %d", upstream.HTTPStatus())
	}
	if upstream.Detail() != body {
		t.Errorf("detail = %q", upstream.Detail())
	}
}

func TestFetchCurrentUnreachableProvider(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	gateway := NewWeatherGateway(srv.URL, pkghttp.ClientOptions{})

	_, err := gateway.FetchCurrent(context.Background(), "k", "Thane,IN")

	var upstream *model.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != 0 || upstream.HTTPStatus() != http.StatusInternalServerError {
		t.Errorf("unexpected status %d/%d", upstream.Status, upstream.HTTPStatus())
	}
}

func TestNormalizeCurrentDefaultsOptionalFields(t *testing.T) {
	srv := newOpenWeatherServer(t, http.StatusOK,
		`{"coord":{"lon":1,"lat":2},"main":{"temp":0,"feels_like":-1.5,"humidity":0},"wind":{"speed":0},"rain":{"1h":0.8},"name":"Nowhere"}`)
	gateway := NewWeatherGateway(srv.URL, pkghttp.ClientOptions{})

	conditions, err := gateway.FetchCurrent(context.Background(), "k", "Thane,IN")
	if err != nil {
		t.Fatalf("FetchCurrent: %v", err)
	}
	if conditions.Reading.City != "Nowhere," {
		t.Errorf("city = %q", conditions.Reading.City)
	}
	if conditions.Reading.Rain1h != 0.8 {
		t.Errorf("rain = %v", conditions.Reading.Rain1h)
	}
	if conditions.Reading.TempC != 0 || conditions.Reading.FeelsLikeC != -1.5 {
		t.Errorf("zero readings must survive: %+v", conditions.Reading)
	}
}

func TestNormalizeCurrentRejectsMissingRequiredField(t *testing.T) {
	srv := newOpenWeatherServer(t, http.StatusOK,
		`{"coord":{"lon":1,"lat":2},"main":{"temp":20,"humidity":50},"wind":{"speed":1},"name":"X","sys":{"country":"GB"}}`)
	gateway := NewWeatherGateway(srv.URL, pkghttp.ClientOptions{})

	_, err := gateway.FetchCurrent(context.Background(), "k", "Thane,IN")

	var upstream *model.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.HTTPStatus() != http.StatusInternalServerError {
		t.Errorf("status = %d", upstream.HTTPStatus())
	}
}
