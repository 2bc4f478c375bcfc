// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package credentials

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/quickly-quiz/auth"
	"github.com/danielhkuo/quickly-quiz/kvstore"
	"github.com/danielhkuo/quickly-quiz/models"
)

var (
	ErrUsernameTaken      = fmt.Errorf("%w: %w: username already taken", models.ErrAuth, models.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", models.ErrAuth)
)

var validate = validator.New()

type registration struct {
	Username string `validate:"required,excludesall=:"`
	Password string `validate:"required"`
}

// Record is one username:password line of users_db. Password holds a
// bcrypt hash, or the plaintext password for records written before
// hashing was introduced.
type Record struct {
	Username string
	Password string
}

// Store keeps accounts in the users_db key as newline-separated
// username:password records.
type Store struct {
	kv         kvstore.Store
	bcryptCost int

	mu sync.Mutex
}

func New(kv kvstore.Store, bcryptCost int) *Store {
	return &Store{kv: kv, bcryptCost: bcryptCost}
}

// Parse splits a users_db value into records. Blank lines and lines that do
// not split into exactly two fields on ':' are skipped.
func Parse(raw string) []Record {
	var records []Record
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) != 2 {
			continue
		}
		records = append(records, Record{Username: fields[0], Password: fields[1]})
	}
	return records
}

func (s *Store) lookup(ctx context.Context, username string) (Record, string, bool, error) {
	raw, _, err := s.kv.Get(ctx, kvstore.KeyUsersDB)
	if err != nil {
		return Record{}, "", false, fmt.Errorf("failed to load users: %w", err)
	}
	for _, rec := range Parse(raw) {
		if rec.Username == username {
			return rec, raw, true, nil
		}
	}
	return Record{}, raw, false, nil
}

// Register adds an account. Usernames are unique and may not contain ':'.
func (s *Store) Register(ctx context.Context, username, password string) error {
	if err := validate.Struct(registration{Username: username, Password: password}); err != nil {
		return fmt.Errorf("%w: username and password are required, username may not contain ':'", models.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, raw, exists, err := s.lookup(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return ErrUsernameTaken
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	if raw != "" && !strings.HasSuffix(raw, "\n") {
		raw += "\n"
	}
	raw += username + ":" + hash + "\n"

	if err := s.kv.Set(ctx, kvstore.KeyUsersDB, raw); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}

	slog.Info("user registered", "username", username)
	return nil
}

// Authenticate checks a username and password against the stored records.
// A plaintext record that matches is rewritten with a bcrypt hash.
func (s *Store) Authenticate(ctx context.Context, username, password string) error {
	rec, _, exists, err := s.lookup(ctx, username)
	if err != nil {
		return err
	}
	if !exists {
		return ErrInvalidCredentials
	}
	if auth.IsPasswordHash(rec.Password) {
		if err := auth.CheckPassword(rec.Password, password); err != nil {
			return ErrInvalidCredentials
		}
		return nil
	}

	if !auth.SecretsEqual(rec.Password, password) {
		return ErrInvalidCredentials
	}
	if err := s.rehash(ctx, rec); err != nil {
		slog.Warn("failed to hash legacy password", "username", username, "error", err)
	}
	return nil
}

// rehash replaces a plaintext record with a hashed one. The record is left
// alone if it changed since it was read.
func (s *Store) rehash(ctx context.Context, rec Record) error {
	hash, err := auth.HashPassword(rec.Password, s.bcryptCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, _, err := s.kv.Get(ctx, kvstore.KeyUsersDB)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		if line == rec.Username+":"+rec.Password {
			lines[i] = rec.Username + ":" + hash
			if err := s.kv.Set(ctx, kvstore.KeyUsersDB, strings.Join(lines, "\n")); err != nil {
				return fmt.Errorf("failed to save users: %w", err)
			}
			slog.Info("legacy password hashed", "username", rec.Username)
			return nil
		}
	}
	return nil
}
