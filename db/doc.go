// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the SQL database behind the key-value store.

# Drivers

	sqlite   - modernc.org/sqlite (default, pure Go)
	postgres - github.com/lib/pq
	pgx      - github.com/jackc/pgx/v5/stdlib

# Opening

	conn, err := db.Open(ctx, db.DriverSQLite, "file:quiz.db")

Open pings the database and calls CreateSchema. SQLite connections are
limited to a single open connection.

# Schema

CreateSchema is safe to call multiple times - it uses IF NOT EXISTS.
There is one table:

  - kv_entry: entry_key (primary key), entry_value, updated_at (unix seconds)

Every persisted value lives in kv_entry under the keys listed in package
kvstore (tests, userResponses, users_db, currentUser, darkMode).
*/
package db
