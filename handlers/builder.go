// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-quiz/builder"
	"github.com/danielhkuo/quickly-quiz/catalog"
	"github.com/danielhkuo/quickly-quiz/export"
	"github.com/danielhkuo/quickly-quiz/middleware"
	"github.com/danielhkuo/quickly-quiz/models"
)

// maxTemplateBytes bounds template uploads
const maxTemplateBytes = 1 << 20

type BuilderHandler struct {
	tests *catalog.Catalog
	now   func() time.Time
}

func NewBuilderHandler(tests *catalog.Catalog) *BuilderHandler {
	return &BuilderHandler{tests: tests, now: time.Now}
}

// CreateQuestion handles POST /builder/questions
func (h *BuilderHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	q, err := builder.CreateQuestion(req.Type, h.now())
	if err != nil {
		middleware.WriteError(w, err, "Failed to create question")
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, q)
}

// EditDraft handles POST /builder/draft/edit
func (h *BuilderHandler) EditDraft(w http.ResponseWriter, r *http.Request) {
	var req models.EditDraftRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	test := builder.FromDraft(req.Draft, middleware.Username(r.Context()))
	if err := builder.ValidateQuestions(test.Questions); err != nil {
		middleware.WriteError(w, err, "Failed to edit draft")
		return
	}

	var err error
	switch req.Action {
	case models.EditAddQuestion:
		_, err = builder.AddQuestion(test, req.Type, h.now())
	case models.EditRemoveQuestion:
		err = builder.RemoveQuestion(test, req.QuestionID)
	case models.EditUpdatePrompt:
		err = builder.UpdatePrompt(test, req.QuestionID, req.Value)
	case models.EditAddOption:
		err = builder.AddOptionTo(test, req.QuestionID)
	case models.EditRemoveOption:
		err = builder.RemoveOption(test, req.QuestionID, req.Index)
	case models.EditRenameOption:
		err = builder.RenameOption(test, req.QuestionID, req.Index, req.Value)
	case models.EditSetCorrectAnswer:
		err = builder.SetCorrectAnswer(test, req.QuestionID, req.Value)
	default:
		err = fmt.Errorf("%w: unknown action %q", models.ErrValidation, req.Action)
	}
	if err != nil {
		middleware.WriteError(w, err, "Failed to edit draft")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toDraft(test))
}

// Publish handles POST /builder/publish
func (h *BuilderHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req models.DraftTest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	test := builder.FromDraft(req, middleware.Username(r.Context()))
	published, link, err := h.tests.Publish(r.Context(), test)
	if err != nil {
		middleware.WriteError(w, err, "Failed to publish test")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.PublishResponse{
		TestID: published.ID,
		Link:   link,
	})
}

// ExportTemplate handles POST /builder/template/export?format=json|yaml
func (h *BuilderHandler) ExportTemplate(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		middleware.WriteError(w, err, "Failed to export template")
		return
	}

	var req models.DraftTest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	tmpl := export.FromDraft(req)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", attachment(tmpl.Title, "template", string(format)))
	if err := export.EncodeTemplate(w, tmpl, format); err != nil {
		slog.Error("failed to encode template", "error", err)
	}
}

// ImportTemplate handles POST /builder/template/import?format=json|yaml
func (h *BuilderHandler) ImportTemplate(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		middleware.WriteError(w, err, "Failed to import template")
		return
	}

	defer r.Body.Close()
	tmpl, err := export.DecodeTemplate(http.MaxBytesReader(w, r.Body, maxTemplateBytes), format)
	if err != nil {
		middleware.WriteError(w, err, "Failed to import template")
		return
	}

	slog.Info("template imported", "title", tmpl.Title, "questions", len(tmpl.Questions))
	middleware.JSONResponse(w, http.StatusOK, tmpl.Draft())
}

func toDraft(t *models.Test) models.DraftTest {
	return models.DraftTest{
		Title:          t.Title,
		Description:    t.Description,
		Questions:      t.Questions,
		CorrectAnswers: t.CorrectAnswers,
		AccessPassword: t.AccessPassword,
	}
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// attachment builds a Content-Disposition value with a filesystem-safe name
func attachment(title, fallback, ext string) string {
	name := strings.Trim(unsafeFilename.ReplaceAllString(title, "_"), "_")
	if name == "" {
		name = fallback
	}
	return fmt.Sprintf(`attachment; filename="%s.%s"`, name, ext)
}
