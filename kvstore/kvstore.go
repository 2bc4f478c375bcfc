// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/danielhkuo/quickly-quiz/models"
)

// Persisted keys
const (
	KeyTests         = "tests"
	KeyUserResponses = "userResponses"
	KeyUsersDB       = "users_db"
	KeyCurrentUser   = "currentUser"
	KeyDarkMode      = "darkMode"
)

// Store is a string key-value store. Each call is atomic for its key.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// GetJSON decodes the value stored under key into v.
// Returns false if the key is absent. Undecodable values yield an error
// wrapping models.ErrParse.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return true, fmt.Errorf("%w: key %q: %v", models.ErrParse, key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return s.Set(ctx, key, string(b))
}
