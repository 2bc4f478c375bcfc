// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package credentials registers and authenticates accounts.

Accounts live in one string under the users_db key, one record per line:

	alice:$2a$10$...
	bob:$2a$10$...

The second field is a bcrypt hash. Stores written before hashing hold the
plaintext password there instead; Authenticate still accepts those records
and rewrites a record with its hash on the first successful login. Parsing splits on '\n' and then ':';
lines that do not yield exactly two fields are ignored, so usernames may
not contain ':'.

Errors:

	ErrUsernameTaken      - wraps models.ErrAuth and models.ErrConflict
	ErrInvalidCredentials - wraps models.ErrAuth
	empty username or password wraps models.ErrValidation
*/
package credentials
