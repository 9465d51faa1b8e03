package db

import (
	"context"
	"database/sql"
	"time"

	"weather-api/internal/domain/model"
)

type SQLCHealthDBGateway struct {
	DB      *sql.DB
	Dialect Dialect
}

var _ HealthDBGateway = (*SQLCHealthDBGateway)(nil)

func NewSQLCHealthDBGateway(db *sql.DB, dialect Dialect) *SQLCHealthDBGateway {
	return &SQLCHealthDBGateway{DB: db, Dialect: dialect}
}

func (gateway *SQLCHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := gateway.DB.PingContext(ctx); err != nil {
		return downStatus(err)
	}
	return upStatus(string(gateway.Dialect))
}
