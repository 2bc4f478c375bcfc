// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package responses collects submitted answers. Responses are append-only
// and are not checked against the test's questions.
package responses
