package db

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Dialect selects the SQL flavour spoken by a database/sql handle.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// sqliteTimeLayout is fixed width so that text ordering equals time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// rebind rewrites ? placeholders into $n for postgres.
func (d Dialect) rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d Dialect) encodeTime(t time.Time) any {
	if d == DialectSQLite {
		return t.UTC().Format(sqliteTimeLayout)
	}
	return t.UTC()
}

func (d Dialect) schema() []string {
	if d == DialectPostgres {
		return []string{
			`CREATE TABLE IF NOT EXISTS weather_samples (
				id BIGSERIAL PRIMARY KEY,
				city TEXT NOT NULL,
				lat DOUBLE PRECISION NOT NULL,
				lon DOUBLE PRECISION NOT NULL,
				temp_c DOUBLE PRECISION NOT NULL,
				feels_like_c DOUBLE PRECISION NOT NULL,
				humidity INTEGER NOT NULL,
				wind_ms DOUBLE PRECISION NOT NULL,
				rain_1h DOUBLE PRECISION NOT NULL DEFAULT 0,
				recorded_at TIMESTAMPTZ NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_weather_samples_recorded_at ON weather_samples (recorded_at)`,
		}
	}
	return []string{
		`CREATE TABLE IF NOT EXISTS weather_samples (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			city TEXT NOT NULL,
			lat REAL NOT NULL,
			lon REAL NOT NULL,
			temp_c REAL NOT NULL,
			feels_like_c REAL NOT NULL,
			humidity INTEGER NOT NULL,
			wind_ms REAL NOT NULL,
			rain_1h REAL NOT NULL DEFAULT 0,
			recorded_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_weather_samples_recorded_at ON weather_samples (recorded_at)`,
	}
}

// storedTime scans recorded_at from either a native timestamp or its text form.
type storedTime struct {
	time.Time
}

func (s *storedTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		s.Time = v.UTC()
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case nil:
		return errors.New("recorded_at is NULL")
	default:
		return fmt.Errorf("unsupported recorded_at type %T", src)
	}
}

func (s *storedTime) parse(value string) error {
	for _, layout := range []string{sqliteTimeLayout, time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			s.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unparseable recorded_at %q", value)
}
