package db

import (
	"context"
	"database/sql"
)

type SQLCHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLCHealthDBGateway)(nil)

func NewSQLCHealthDBGateway(db *sql.DB) *SQLCHealthDBGateway {
	return &SQLCHealthDBGateway{DB: db}
}

func (gateway *SQLCHealthDBGateway) Probe(ctx context.Context) error {
	var one int
	return gateway.DB.QueryRowContext(ctx, probeQuery).Scan(&one)
}

func (gateway *SQLCHealthDBGateway) Client() string {
	return "sql"
}
