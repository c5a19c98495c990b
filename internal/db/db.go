package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/dvmorais/daily-diet-api/internal/config"
)

// Open connects to the store selected by DATABASE_CLIENT and verifies the
// connection before returning it. The handle is built once at startup and
// injected into the repositories; it is the only shared state in the process.
func Open(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	var d *sql.DB
	var err error
	switch cfg.DatabaseClient {
	case config.ClientPostgres:
		d, err = sql.Open("pgx", cfg.DatabaseURL)
	case config.ClientSQLite:
		d, err = sql.Open("sqlite", cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown database client %q", cfg.DatabaseClient)
	}
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseClient == config.ClientSQLite {
		// sqlite locks the whole file; a single connection avoids busy errors
		// and keeps the foreign_keys pragma on every statement.
		d.SetMaxOpenConns(1)
		if _, err := d.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			_ = d.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	} else {
		d.SetMaxOpenConns(10)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := d.PingContext(pingCtx); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}
