// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Quiz API.

# Route Registration

NewRouter creates a chi.Mux with all endpoints and the shared middleware
stack (request id, real IP, panic recovery, request logging, CORS):

	mux := router.NewRouter(router.Deps{...}, cfg)

# Endpoints

Health:

	GET /health

Accounts:

	POST /auth/register - Create account, returns token
	POST /auth/login    - Authenticate, returns token
	POST /auth/logout   - Clear current user (bearer)
	GET  /auth/me       - Current username (bearer)
	GET  /preferences   - Dark-mode flag
	PUT  /preferences   - Set dark-mode flag

Authoring (bearer):

	POST /builder/questions       - New question of a type
	POST /builder/draft/edit      - Apply one edit action to a draft
	POST /builder/publish         - Validate and publish a draft
	POST /builder/template/export - Draft to JSON or YAML template
	POST /builder/template/import - Template to draft

Taking a test (public):

	GET  /tests/{id}              - Test without answers or password
	POST /tests/{id}/responses    - Submit answers
	POST /tests/{id}/unlock       - Password check, returns correct answers
	POST /tests/{id}/answer-sheet - Spreadsheet of the respondent's answers
	GET  /tests/{id}/qr           - QR code of the share link

Dashboard (bearer, owner only for a single test):

	GET /dashboard/tests                 - Author's tests with summaries
	GET /dashboard/tests/{id}/stats      - Per-question statistics
	GET /dashboard/tests/{id}/report.pdf - PDF report

# Authentication

Bearer routes go through middleware.RequireUser, which puts the token's
username into the request context. Unauthenticated requests get 401.
*/
package router
