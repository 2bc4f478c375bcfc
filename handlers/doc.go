// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Quiz API.

# Handler Types

Each handler is a struct holding the services it needs:

  - AuthHandler: Registration, login, logout
  - PreferencesHandler: Dark-mode flag
  - BuilderHandler: Question creation, draft edits, publishing, templates
  - TestHandler: Public test view, submissions, unlock, answer sheets, QR
  - DashboardHandler: Author's tests, statistics, PDF reports

Handlers are created via constructor functions:

	builderHandler := handlers.NewBuilderHandler(tests)

# Authoring Flow

Drafts live on the client. The server applies edits and hands the draft
back, so every request carries the whole draft:

	POST /builder/questions  → CreateQuestion
	POST /builder/draft/edit → EditDraft (addQuestion, removeOption, ...)
	POST /builder/publish    → Publish (returns test id and share link)

Publishing fails with 400 and stores nothing when the title, password or
author is missing.

# Respondent Flow

	GET  /tests/{id}           → GetTest
	POST /tests/{id}/responses → SubmitResponse
	POST /tests/{id}/unlock    → Unlock

A wrong unlock password is answered with 401 "Incorrect password".

# Errors

Domain errors are mapped to status codes by middleware.WriteError:
validation and parse errors give 400, auth 401, forbidden 403,
not found 404 and conflicts 409. Anything else is logged and reported
as 500 without details.
*/
package handlers
