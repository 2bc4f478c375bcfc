// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestGenerateTestID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id, err := GenerateTestID()
		if err != nil {
			t.Fatalf("GenerateTestID() error = %v", err)
		}
		if !strings.HasPrefix(id, TestIDPrefix) {
			t.Errorf("GenerateTestID() = %q, missing %q prefix", id, TestIDPrefix)
		}
		if seen[id] {
			t.Errorf("GenerateTestID() produced duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestBase62Encode(t *testing.T) {
	const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	tests := []struct {
		name  string
		input []byte
	}{
		{"single byte", []byte{42}},
		{"eight bytes", []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{"max bytes", []byte{255, 255, 255, 255, 255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := base62Encode(tt.input)
			if result == "" {
				t.Error("base62Encode() returned empty string")
			}
			for _, c := range result {
				if !strings.ContainsRune(base62Chars, c) {
					t.Errorf("base62Encode() contains invalid char: %c", c)
				}
			}
			if base62Encode(tt.input) != result {
				t.Error("base62Encode() is not deterministic")
			}
		})
	}

	if base62Encode([]byte{0}) != "0" {
		t.Errorf("base62Encode(0) = %q, want \"0\"", base62Encode([]byte{0}))
	}
}

func TestSecretsEqual(t *testing.T) {
	if !SecretsEqual("s3cret", "s3cret") {
		t.Error("SecretsEqual() = false for equal secrets")
	}
	if SecretsEqual("s3cret", "S3cret") {
		t.Error("SecretsEqual() = true for different secrets")
	}
	if SecretsEqual("", "x") {
		t.Error("SecretsEqual() = true for empty vs non-empty")
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("HashPassword() returned the plaintext")
	}
	if strings.Contains(hash, ":") {
		t.Error("hash must not contain the record field delimiter")
	}
	if err := CheckPassword(hash, "hunter2"); err != nil {
		t.Errorf("CheckPassword() correct password error = %v", err)
	}
	if err := CheckPassword(hash, "hunter3"); !errors.Is(err, ErrPasswordInvalid) {
		t.Errorf("CheckPassword() wrong password error = %v, want ErrPasswordInvalid", err)
	}
	if !IsPasswordHash(hash) || IsPasswordHash("hunter2") {
		t.Error("IsPasswordHash did not tell a hash from a plaintext password")
	}
	if err := CheckPassword("not-a-hash", "hunter2"); !errors.Is(err, ErrPasswordInvalid) {
		t.Errorf("CheckPassword() malformed hash error = %v, want ErrPasswordInvalid", err)
	}
}

func TestTokenService(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	sub, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if sub != "alice" {
		t.Errorf("Parse() subject = %q, want alice", sub)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("other-secret", time.Hour)
		if _, err := other.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Parse() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		short := NewTokenService("test-secret", time.Nanosecond)
		tok, _ := short.Issue("alice")
		time.Sleep(10 * time.Millisecond)
		if _, err := short.Parse(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Parse() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := svc.Parse("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Parse() error = %v, want ErrInvalidToken", err)
		}
	})
}
