// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-quiz/catalog"
	"github.com/danielhkuo/quickly-quiz/export"
	"github.com/danielhkuo/quickly-quiz/middleware"
	"github.com/danielhkuo/quickly-quiz/models"
	"github.com/danielhkuo/quickly-quiz/responses"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv"
)

// TestHandler serves published tests to respondents
type TestHandler struct {
	tests     *catalog.Catalog
	responses *responses.Collection
}

func NewTestHandler(tests *catalog.Catalog, responses *responses.Collection) *TestHandler {
	return &TestHandler{tests: tests, responses: responses}
}

// GetTest handles GET /tests/{id}
func (h *TestHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	test, err := h.tests.Get(r.Context(), pathParam(r, "id"))
	if err != nil {
		middleware.WriteError(w, err, "Failed to load test")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, catalog.Public(test))
}

// SubmitResponse handles POST /tests/{id}/responses
func (h *TestHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	testID := pathParam(r, "id")

	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if _, err := h.tests.Get(r.Context(), testID); err != nil {
		middleware.WriteError(w, err, "Failed to load test")
		return
	}

	resp, err := h.responses.Submit(r.Context(), testID, req.Answers)
	if err != nil {
		middleware.WriteError(w, err, "Failed to save response")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponseResponse{
		ResponseID:  resp.ID,
		SubmittedAt: resp.SubmittedAt,
		Message:     "Response recorded",
	})
}

// Unlock handles POST /tests/{id}/unlock
func (h *TestHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	testID := pathParam(r, "id")

	var req models.UnlockRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ok, err := h.tests.Unlock(r.Context(), testID, req.Password)
	if err != nil {
		middleware.WriteError(w, err, "Failed to load test")
		return
	}
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Incorrect password")
		return
	}

	test, err := h.tests.Get(r.Context(), testID)
	if err != nil {
		middleware.WriteError(w, err, "Failed to load test")
		return
	}
	correct := test.CorrectAnswers
	if correct == nil {
		correct = map[int64]models.Answer{}
	}
	middleware.JSONResponse(w, http.StatusOK, models.UnlockResponse{CorrectAnswers: correct})
}

// AnswerSheet handles POST /tests/{id}/answer-sheet?format=xlsx|csv
func (h *TestHandler) AnswerSheet(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "csv" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "format must be xlsx or csv")
		return
	}

	var req models.AnswerSheetRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	test, err := h.tests.Get(r.Context(), pathParam(r, "id"))
	if err != nil {
		middleware.WriteError(w, err, "Failed to load test")
		return
	}

	rows := export.AnswerSheet(test, req.Answers)
	var buf bytes.Buffer
	contentType := contentTypeXLSX
	if format == "csv" {
		contentType = contentTypeCSV
		err = export.WriteCSV(&buf, rows)
	} else {
		err = export.WriteXLSX(&buf, rows)
	}
	if err != nil {
		slog.Error("failed to build answer sheet", "error", err, "test_id", test.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build answer sheet")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", attachment(test.Title, "answers", format))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// QRCode handles GET /tests/{id}/qr
func (h *TestHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	test, err := h.tests.Get(r.Context(), pathParam(r, "id"))
	if err != nil {
		middleware.WriteError(w, err, "Failed to load test")
		return
	}

	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	if size > 1024 {
		size = 1024
	}
	png, err := export.QRCode(h.tests.Link(test.ID), size)
	if err != nil {
		slog.Error("failed to encode QR code", "error", err, "test_id", test.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
