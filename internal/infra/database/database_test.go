package database

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"weather-api/internal/domain/model"
)

func TestOpenSQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, Settings{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "weather.db")})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = store.Close() }()

	id, err := store.Samples.Create(ctx, model.CurrentWeather{City: "Thane,IN", Humidity: 60})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 1 {
		t.Errorf("first id = %d", id)
	}
	if status := store.Health.Health(ctx); status.Status != model.StatusUp {
		t.Errorf("health = %+v", status)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), Settings{Driver: "mysql"}); err == nil {
		t.Fatal("expected an error for an unsupported driver")
	}
}

func TestPostgresDSN(t *testing.T) {
	dsn := postgresDSN(Settings{Host: "db", Port: 5433, Username: "u", Password: "p", Database: "weather", Schema: "public", SSLMode: "disable"})
	for _, part := range []string{"host=db", "port=5433", "user=u", "dbname=weather", "sslmode=disable", "search_path=public"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("dsn %q is missing %s", dsn, part)
		}
	}
}
