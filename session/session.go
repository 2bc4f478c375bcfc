// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/danielhkuo/quickly-quiz/kvstore"
)

// Context is the process-wide session state
type Context struct {
	CurrentUser string
	DarkMode    bool
}

// Manager loads the session once and writes every change back to the store
type Manager struct {
	store kvstore.Store

	mu  sync.RWMutex
	cur Context
}

func NewManager(store kvstore.Store) *Manager {
	return &Manager{store: store}
}

// Load reads currentUser and darkMode from the store. A darkMode value
// other than "true" or "false" is treated as false.
func (m *Manager) Load(ctx context.Context) (Context, error) {
	user, _, err := m.store.Get(ctx, kvstore.KeyCurrentUser)
	if err != nil {
		return Context{}, fmt.Errorf("failed to load current user: %w", err)
	}
	raw, ok, err := m.store.Get(ctx, kvstore.KeyDarkMode)
	if err != nil {
		return Context{}, fmt.Errorf("failed to load dark mode: %w", err)
	}

	var dark bool
	if ok {
		dark, err = strconv.ParseBool(raw)
		if err != nil {
			slog.Warn("ignoring unreadable dark mode value", "value", raw)
			dark = false
		}
	}

	m.mu.Lock()
	m.cur = Context{CurrentUser: user, DarkMode: dark}
	m.mu.Unlock()
	return m.Current(), nil
}

// Current returns a copy of the session state
func (m *Manager) Current() Context {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

// Login records username as the current user
func (m *Manager) Login(ctx context.Context, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Set(ctx, kvstore.KeyCurrentUser, username); err != nil {
		return fmt.Errorf("failed to save current user: %w", err)
	}
	m.cur.CurrentUser = username
	return nil
}

// Logout clears the current user
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Remove(ctx, kvstore.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear current user: %w", err)
	}
	m.cur.CurrentUser = ""
	return nil
}

// SetDarkMode stores the theme flag as "true" or "false"
func (m *Manager) SetDarkMode(ctx context.Context, on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Set(ctx, kvstore.KeyDarkMode, strconv.FormatBool(on)); err != nil {
		return fmt.Errorf("failed to save dark mode: %w", err)
	}
	m.cur.DarkMode = on
	return nil
}
