// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	r.Use(middleware.WithLogging)

Logs one line per request with method, path, status, client and
duration_ms.

# Authentication

RequireUser checks the Authorization: Bearer <token> header and stores the
token's username in the request context:

	r.With(middleware.RequireUser(tokens)).Get("/auth/me", h.Me)

	username := middleware.Username(r.Context())

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Map domain errors to statuses:

	middleware.WriteError(w, err, "Failed to publish test")

	ErrValidation, ErrParse → 400
	ErrAuth                 → 401
	ErrForbidden            → 403
	ErrNotFound             → 404
	ErrConflict             → 409
	anything else           → 500 (logged, details hidden)

Parse JSON request bodies:

	var req models.DraftTest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
