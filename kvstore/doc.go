// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package kvstore is the persistence boundary: a string key-value store with
JSON helpers.

# Backends

  - MemoryStore: in-process map, used by tests and the "memory" backend
  - SQLStore: kv_entry table (see package db), sqlite or postgres
  - FileStore: one JSON object file, rewritten on every change

# Layout

	tests          JSON  map testId -> Test
	userResponses  JSON  map testId -> []Response
	users_db       text  newline-delimited username:password records
	currentUser    text  plain username
	darkMode       text  "true" | "false"

# JSON Helpers

	var tests map[string]models.Test
	found, err := kvstore.GetJSON(ctx, store, kvstore.KeyTests, &tests)

GetJSON reports found=false for absent keys. A value that does not decode
returns an error wrapping models.ErrParse; callers treat it as empty.
*/
package kvstore
