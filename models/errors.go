// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// Error taxonomy. Packages wrap these so the HTTP layer can map them with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrAuth       = errors.New("authentication failed")
	ErrNotFound   = errors.New("not found")
	ErrParse      = errors.New("corrupted data")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
)
