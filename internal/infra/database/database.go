package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"weather-api/internal/domain/gateway/db"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/resource"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverGorm     = "gorm"
)

// Settings selects and addresses the sample store.
type Settings struct {
	Driver   string
	Path     string
	Host     string
	Port     int
	Username string
	Password string
	Database string
	Schema   string
	SSLMode  string
}

// SettingsFromProperties reads app.db.*.
func SettingsFromProperties() Settings {
	return Settings{
		Driver:   resource.GetStringOrDefault("app.db.driver", DriverSQLite),
		Path:     resource.GetStringOrDefault("app.db.path", "weather_history.db"),
		Host:     resource.GetStringOrDefault("app.db.host", "localhost"),
		Port:     resource.GetIntOrDefault("app.db.port", 5432),
		Username: resource.GetString("app.db.username"),
		Password: resource.GetString("app.db.password"),
		Database: resource.GetString("app.db.database"),
		Schema:   resource.GetStringOrDefault("app.db.schema", "public"),
		SSLMode:  resource.GetStringOrDefault("app.db.ssl-mode", "disable"),
	}
}

// Store bundles the gateways backed by one connection pool.
type Store struct {
	Samples db.SampleGateway
	Health  db.HealthDBGateway
	close   func() error
}

func (s *Store) Close() error {
	return s.close()
}

// Open connects to the configured backend and creates the schema when missing.
func Open(ctx context.Context, settings Settings) (*Store, error) {
	var (
		store *Store
		err   error
	)
	switch settings.Driver {
	case DriverSQLite:
		store, err = openSQL(ctx, DriverSQLite, sqliteDSN(settings.Path), db.DialectSQLite)
	case DriverPostgres:
		store, err = openSQL(ctx, DriverPostgres, postgresDSN(settings), db.DialectPostgres)
	case DriverGorm:
		store, err = openGorm(ctx, settings)
	default:
		return nil, fmt.Errorf("%s", msg.GetMessage("database.error.driver", settings.Driver))
	}
	if err != nil {
		return nil, err
	}

	log.Info(msg.GetMessage("database.connected", settings.Driver))
	return store, nil
}

func openSQL(ctx context.Context, driverName, dsn string, dialect db.Dialect) (*Store, error) {
	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driverName, err)
	}
	if dialect == db.DialectSQLite {
		// a single writer connection keeps inserts from failing with SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", driverName, err)
	}

	samples := db.NewSQLCSampleGateway(sqlDB, dialect)
	if err := samples.InitSchema(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return &Store{
		Samples: samples,
		Health:  db.NewSQLCHealthDBGateway(sqlDB, dialect),
		close:   sqlDB.Close,
	}, nil
}

func openGorm(ctx context.Context, settings Settings) (*Store, error) {
	gormDB, err := gorm.Open(postgres.Open(postgresDSN(settings)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	samples := db.NewGormSampleGateway(gormDB)
	if err := samples.Migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return &Store{
		Samples: samples,
		Health:  db.NewGormHealthDBGateway(gormDB),
		close:   sqlDB.Close,
	}, nil
}

func sqliteDSN(path string) string {
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

func postgresDSN(settings Settings) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		settings.Host, settings.Port, settings.Username, settings.Password, settings.Database, settings.SSLMode, settings.Schema)
}
