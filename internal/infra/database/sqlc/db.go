package sqlc

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"go-web/internal/infra/database"
)

// Open creates the shared connection pool. No connection is made until first use.
func Open(config database.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres pool: %w", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)
	return db, nil
}
