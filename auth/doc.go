// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides id generation, password hashing and session tokens.

# IDs

Published tests get a short base62 id with a "test_" prefix:

	id, err := auth.GenerateTestID()  // e.g. test_3kTMd92jFq1

# Passwords

Account passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password, cost)
	err = auth.CheckPassword(hash, password)

bcrypt output never contains ':', so hashes fit the username:password
record format of the credential store.

Test access passwords are compared with SecretsEqual (constant time).

# Session Tokens

TokenService issues HS256 JWTs whose subject is the username:

	svc := auth.NewTokenService(secret, 24*time.Hour)
	token, err := svc.Issue("alice")
	username, err := svc.Parse(token)
*/
package auth
