// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "github.com/lib/pq"              // driver: postgres
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverPGX      Driver = "pgx"
)

// Open connects to the database, verifies the connection and creates the schema.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite:
		if dsn == "" {
			dsn = "file:quickly-quiz.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres, DriverPGX:
		if dsn == "" {
			return nil, fmt.Errorf("%s driver requires a database URL", driver)
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	conn, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver == DriverSQLite {
		// one writer at a time
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := CreateSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS kv_entry (
    entry_key TEXT PRIMARY KEY,
    entry_value TEXT NOT NULL,
    updated_at BIGINT NOT NULL
)`
