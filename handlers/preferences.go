// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-quiz/middleware"
	"github.com/danielhkuo/quickly-quiz/models"
	"github.com/danielhkuo/quickly-quiz/session"
)

type PreferencesHandler struct {
	sessions *session.Manager
}

func NewPreferencesHandler(sessions *session.Manager) *PreferencesHandler {
	return &PreferencesHandler{sessions: sessions}
}

// Get handles GET /preferences
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.PreferencesResponse{DarkMode: h.sessions.Current().DarkMode})
}

// Update handles PUT /preferences
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.PreferencesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.sessions.SetDarkMode(r.Context(), req.DarkMode); err != nil {
		slog.Error("failed to save dark mode", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save preferences")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PreferencesResponse{DarkMode: req.DarkMode})
}
