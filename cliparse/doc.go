// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - StoreBackend: sqlite, postgres, pgx, file or memory (default: sqlite)
  - DatabaseURL: DSN for postgres/pgx, file for sqlite and file backends
  - JWTSecret: Session token signing secret (required)
  - TokenTTL: Session token lifetime (default: 24h)
  - PublicURL: Base of share links (default: http://localhost:<port>)
  - BcryptCost: Cost for account password hashes (default: 10)
  - CORSOrigins: Allowed origins (default: *)

# CLI Flags

	-p             Server port
	-t             Store backend
	-d             Database URL or file path
	-jwt-secret    Session token secret
	-token-ttl     Session token lifetime
	-public-url    Share link base URL
	-bcrypt-cost   bcrypt cost
	-cors-origins  Comma-separated origins
	-env-file      .env file to load (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	STORE_BACKEND → -t
	DATABASE_URL  → -d
	JWT_SECRET    → -jwt-secret
	TOKEN_TTL     → -token-ttl
	PUBLIC_URL    → -public-url
	BCRYPT_COST   → -bcrypt-cost
	CORS_ORIGINS  → -cors-origins

CLI flags take precedence over environment variables. A .env file is
loaded with godotenv and never overrides variables already set; a missing
file is not an error.

# Validation

ParseFlags returns an error if:

  - JWT_SECRET is missing
  - the backend is postgres or pgx and DATABASE_URL is missing
  - the backend is unknown
*/
package cliparse
