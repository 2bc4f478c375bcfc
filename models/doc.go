// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request and response types for the API.

# Domain Types

  - Question: id, type, prompt, options
  - Test: questions, correct answers, access password, creator
  - Response: one submission with per-question answers
  - Answer: absent, single string, or set of strings
  - PublicTest: respondent view of a Test (no answers, no password)
  - QuestionStats, TestSummary: dashboard aggregates

# Question Types

	SingleChoice   = "singleChoice"
	MultipleChoice = "multipleChoice"
	TextInput      = "textInput"

Choice questions always carry at least one option; text questions carry none.

# Answers

Answer is a tagged union. Its Kind says which field is meaningful:

	models.SingleAnswer("Paris")       // text or single-choice
	models.MultiAnswer("A", "C")       // multiple-choice
	models.Answer{}                    // absent

JSON and YAML encode answers the way the stored data always has: a string,
a list of strings, or null.

# Errors

All packages wrap one of these sentinels:

	ErrValidation - missing or malformed input
	ErrAuth       - bad credentials, missing or invalid session token
	ErrConflict   - duplicate username (also wraps ErrAuth)
	ErrNotFound   - unknown test id
	ErrForbidden  - test belongs to another author
	ErrParse      - corrupted persisted data or unreadable request body

# Request and Response Types

  - RegisterRequest, LoginRequest -> AuthResponse
  - CreateQuestionRequest -> Question
  - DraftTest -> PublishResponse
  - SubmitResponseRequest -> SubmitResponseResponse
  - UnlockRequest -> UnlockResponse
  - PreferencesRequest -> PreferencesResponse
  - ErrorResponse: error, message
*/
package models
