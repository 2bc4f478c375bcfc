// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Quiz API server.

Quickly Quiz lets an author build a test out of single-choice,
multiple-choice and free-text questions, publish it behind a share link,
collect anonymous responses and review per-question statistics.

# Starting the Server

The server requires a session signing secret. Everything else has a
default:

	JWT_SECRET=change-me go run .

Or with flags:

	go run . -p 3318 -t sqlite -d file:quiz.db -jwt-secret change-me

A .env file in the working directory is loaded first; variables already
set in the environment win.

# Configuration

Required settings:

  - JWT_SECRET (-jwt-secret): Session token signing secret

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - STORE_BACKEND (-t): sqlite, postgres, pgx, file or memory (default: sqlite)
  - DATABASE_URL (-d): Connection string, or a path for sqlite and file
  - PUBLIC_URL (-public-url): Base of share links (default: http://localhost:PORT)
  - CORS_ORIGINS (-cors-origins): Comma-separated origins (default: *)
  - BCRYPT_COST (-bcrypt-cost): Account password hashing cost (default: 10)
  - TOKEN_TTL (-token-ttl): Session token lifetime (default: 24h)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, builder, tests, dashboard)
  - router: chi routes and middleware stack
  - middleware: Logging, bearer auth, JSON helpers
  - models: Domain, request and response types
  - builder: Draft editing operations and publish validation
  - catalog: Published tests
  - responses: Submitted answers
  - stats: Per-question statistics and dashboard summaries
  - credentials: Account registry
  - session: Current user and dark-mode flag
  - export: Templates, answer sheets, PDF reports, QR codes
  - kvstore: String key-value persistence (SQL, file, memory)
  - auth: Session tokens and id generation
  - db: SQL connection and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
