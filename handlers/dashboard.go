// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/quickly-quiz/catalog"
	"github.com/danielhkuo/quickly-quiz/export"
	"github.com/danielhkuo/quickly-quiz/middleware"
	"github.com/danielhkuo/quickly-quiz/models"
	"github.com/danielhkuo/quickly-quiz/responses"
	"github.com/danielhkuo/quickly-quiz/stats"
)

// DashboardHandler serves an author's own tests and their statistics
type DashboardHandler struct {
	tests     *catalog.Catalog
	responses *responses.Collection
	now       func() time.Time
}

func NewDashboardHandler(tests *catalog.Catalog, responses *responses.Collection) *DashboardHandler {
	return &DashboardHandler{tests: tests, responses: responses, now: time.Now}
}

// ListTests handles GET /dashboard/tests
func (h *DashboardHandler) ListTests(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())

	tests, err := h.tests.ListByCreator(r.Context(), username)
	if err != nil {
		middleware.WriteError(w, err, "Failed to load tests")
		return
	}

	now := h.now()
	summaries := make([]models.TestSummary, 0, len(tests))
	for _, t := range tests {
		resps, err := h.responses.List(r.Context(), t.ID)
		if err != nil {
			middleware.WriteError(w, err, "Failed to load responses")
			return
		}
		summaries = append(summaries, stats.Summarize(t, h.tests.Link(t.ID), resps, now))
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// GetStats handles GET /dashboard/tests/{id}/stats
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	test, resps, err := h.ownedTest(r.Context(), pathParam(r, "id"))
	if err != nil {
		middleware.WriteError(w, err, "Failed to load statistics")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		Test:          catalog.Public(test),
		ResponseCount: len(resps),
		Questions:     stats.Compute(test, resps),
	})
}

// GetReport handles GET /dashboard/tests/{id}/report.pdf
func (h *DashboardHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	test, resps, err := h.ownedTest(r.Context(), pathParam(r, "id"))
	if err != nil {
		middleware.WriteError(w, err, "Failed to load statistics")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteReport(&buf, test, len(resps), stats.Compute(test, resps)); err != nil {
		slog.Error("failed to render report", "error", err, "test_id", test.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", attachment(test.Title, "report", "pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// ownedTest loads a test and its responses if the caller created it
func (h *DashboardHandler) ownedTest(ctx context.Context, id string) (models.Test, []models.Response, error) {
	test, err := h.tests.Get(ctx, id)
	if err != nil {
		return models.Test{}, nil, err
	}
	if test.CreatorID != middleware.Username(ctx) {
		return models.Test{}, nil, fmt.Errorf("%w: test %s belongs to another author", models.ErrForbidden, id)
	}
	resps, err := h.responses.List(ctx, id)
	if err != nil {
		return models.Test{}, nil, err
	}
	return test, resps, nil
}
