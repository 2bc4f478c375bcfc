// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-quiz/auth"
	"github.com/danielhkuo/quickly-quiz/credentials"
	"github.com/danielhkuo/quickly-quiz/middleware"
	"github.com/danielhkuo/quickly-quiz/models"
	"github.com/danielhkuo/quickly-quiz/session"
)

type AuthHandler struct {
	accounts *credentials.Store
	sessions *session.Manager
	tokens   *auth.TokenService
}

func NewAuthHandler(accounts *credentials.Store, sessions *session.Manager, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions, tokens: tokens}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.accounts.Register(r.Context(), req.Username, req.Password); err != nil {
		middleware.WriteError(w, err, "Failed to register")
		return
	}

	h.startSession(w, r, req.Username, http.StatusCreated)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.accounts.Authenticate(r.Context(), req.Username, req.Password); err != nil {
		middleware.WriteError(w, err, "Failed to log in")
		return
	}

	h.startSession(w, r, req.Username, http.StatusOK)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, username string, status int) {
	token, err := h.tokens.Issue(username)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
		return
	}
	if err := h.sessions.Login(r.Context(), username); err != nil {
		slog.Error("failed to save current user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	slog.Info("session started", "username", username)
	middleware.JSONResponse(w, status, models.AuthResponse{Token: token, Username: username})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		slog.Error("failed to clear current user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log out")
		return
	}
	slog.Info("session ended", "username", middleware.Username(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.MeResponse{Username: middleware.Username(r.Context())})
}
