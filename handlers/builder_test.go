// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-quiz/kvstore"
	"github.com/danielhkuo/quickly-quiz/models"
	"github.com/danielhkuo/quickly-quiz/testutil"
)

func TestCreateQuestion(t *testing.T) {
	s := testutil.NewServices(t)
	h := NewBuilderHandler(s.Tests)
	h.now = func() time.Time { return time.UnixMilli(1700000000000) }

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		wantOptions    int
	}{
		{"single choice", models.CreateQuestionRequest{Type: models.SingleChoice}, http.StatusCreated, 2},
		{"text input", models.CreateQuestionRequest{Type: models.TextInput}, http.StatusCreated, 0},
		{"unknown type", models.CreateQuestionRequest{Type: "slider"}, http.StatusBadRequest, 0},
		{"invalid JSON", "nope", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := asUser(testutil.MakeRequest("POST", "/builder/questions", tt.body, nil), "alice")
			w := httptest.NewRecorder()

			h.CreateQuestion(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusCreated {
				var q models.Question
				testutil.AssertJSON(t, w, &q)
				if q.ID != 1700000000000 || len(q.Options) != tt.wantOptions {
					t.Errorf("Unexpected question: %+v", q)
				}
			}
		})
	}
}

func TestEditDraft(t *testing.T) {
	s := testutil.NewServices(t)
	h := NewBuilderHandler(s.Tests)

	edit := func(t *testing.T, req models.EditDraftRequest) (*httptest.ResponseRecorder, models.DraftTest) {
		t.Helper()
		w := httptest.NewRecorder()
		h.EditDraft(w, asUser(testutil.MakeRequest("POST", "/builder/draft/edit", req, nil), "alice"))
		var d models.DraftTest
		if w.Code == http.StatusOK {
			testutil.AssertJSON(t, w, &d)
		}
		return w, d
	}

	draft := testutil.SampleDraft()

	t.Run("remove correct single-choice option clears answer", func(t *testing.T) {
		w, d := edit(t, models.EditDraftRequest{Draft: draft, Action: models.EditRemoveOption, QuestionID: 1, Index: 0})
		testutil.AssertStatus(t, w, http.StatusOK)
		if _, ok := d.CorrectAnswers[1]; ok {
			t.Errorf("Expected correct answer for question 1 to be cleared")
		}
		if len(d.Questions[0].Options) != 1 {
			t.Errorf("Expected 1 option, got %v", d.Questions[0].Options)
		}
	})

	t.Run("remove last option refused", func(t *testing.T) {
		one := testutil.SampleDraft()
		one.Questions[0].Options = []string{"A"}
		w, _ := edit(t, models.EditDraftRequest{Draft: one, Action: models.EditRemoveOption, QuestionID: 1, Index: 0})
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("toggle multiple-choice answer", func(t *testing.T) {
		w, d := edit(t, models.EditDraftRequest{Draft: draft, Action: models.EditSetCorrectAnswer, QuestionID: 2, Value: "B"})
		testutil.AssertStatus(t, w, http.StatusOK)
		if !d.CorrectAnswers[2].Equal(models.MultiAnswer("A", "B", "C")) {
			t.Errorf("Expected {A,B,C}, got %v", d.CorrectAnswers[2])
		}
	})

	t.Run("add question", func(t *testing.T) {
		w, d := edit(t, models.EditDraftRequest{Draft: draft, Action: models.EditAddQuestion, Type: models.MultipleChoice})
		testutil.AssertStatus(t, w, http.StatusOK)
		if len(d.Questions) != 4 || d.Questions[3].Type != models.MultipleChoice {
			t.Errorf("Expected a fourth multiple-choice question, got %+v", d.Questions)
		}
	})

	t.Run("rename option migrates answer", func(t *testing.T) {
		w, d := edit(t, models.EditDraftRequest{Draft: draft, Action: models.EditRenameOption, QuestionID: 1, Index: 0, Value: "Alpha"})
		testutil.AssertStatus(t, w, http.StatusOK)
		if v, _ := d.CorrectAnswers[1].Single(); v != "Alpha" {
			t.Errorf("Expected migrated answer Alpha, got %q", v)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		w, _ := edit(t, models.EditDraftRequest{Draft: draft, Action: "shuffle"})
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("duplicate question ids refused", func(t *testing.T) {
		dup := testutil.SampleDraft()
		dup.Questions[1].ID = 1
		w, _ := edit(t, models.EditDraftRequest{Draft: dup, Action: models.EditUpdatePrompt, QuestionID: 1, Value: "Pick"})
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestPublish(t *testing.T) {
	s := testutil.NewServices(t)
	h := NewBuilderHandler(s.Tests)

	t.Run("valid draft", func(t *testing.T) {
		req := asUser(testutil.MakeRequest("POST", "/builder/publish", testutil.SampleDraft(), nil), "alice")
		w := httptest.NewRecorder()

		h.Publish(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)
		var resp models.PublishResponse
		testutil.AssertJSON(t, w, &resp)

		if !strings.HasPrefix(resp.TestID, "test_") {
			t.Errorf("Unexpected test id %q", resp.TestID)
		}
		if resp.Link != "http://localhost:3318/test/"+resp.TestID {
			t.Errorf("Unexpected link %q", resp.Link)
		}

		stored, err := s.Tests.Get(context.Background(), resp.TestID)
		if err != nil {
			t.Fatalf("Published test not stored: %v", err)
		}
		if stored.CreatorID != "alice" {
			t.Errorf("Expected creator alice, got %q", stored.CreatorID)
		}
	})

	for _, tc := range []struct {
		name   string
		mutate func(*models.DraftTest)
	}{
		{"missing title", func(d *models.DraftTest) { d.Title = "" }},
		{"missing password", func(d *models.DraftTest) { d.AccessPassword = "  " }},
		{"duplicate question ids", func(d *models.DraftTest) { d.Questions[1].ID = d.Questions[0].ID }},
		{"unknown question type", func(d *models.DraftTest) { d.Questions[2].Type = "bogus" }},
		{"choice question without options", func(d *models.DraftTest) { d.Questions[0].Options = []string{} }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := testutil.NewServices(t)
			h := NewBuilderHandler(s.Tests)

			d := testutil.SampleDraft()
			tc.mutate(&d)
			w := httptest.NewRecorder()
			h.Publish(w, asUser(testutil.MakeRequest("POST", "/builder/publish", d, nil), "alice"))

			testutil.AssertStatus(t, w, http.StatusBadRequest)
			if _, ok, _ := s.Store.Get(context.Background(), kvstore.KeyTests); ok {
				t.Error("Expected no test to be stored")
			}
		})
	}
}

func TestTemplateExportImport(t *testing.T) {
	s := testutil.NewServices(t)
	h := NewBuilderHandler(s.Tests)

	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			req := asUser(testutil.MakeRequest("POST", "/builder/template/export?format="+format, testutil.SampleDraft(), nil), "alice")
			w := httptest.NewRecorder()
			h.ExportTemplate(w, req)
			testutil.AssertStatus(t, w, http.StatusOK)

			if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Sample_Quiz."+format) {
				t.Errorf("Unexpected Content-Disposition %q", cd)
			}
			if strings.Contains(w.Body.String(), "open-sesame") {
				t.Error("Access password exported")
			}

			importReq := httptest.NewRequest("POST", "/builder/template/import?format="+format, bytes.NewReader(w.Body.Bytes()))
			iw := httptest.NewRecorder()
			h.ImportTemplate(iw, asUser(importReq, "alice"))
			testutil.AssertStatus(t, iw, http.StatusOK)

			var draft models.DraftTest
			testutil.AssertJSON(t, iw, &draft)
			want := testutil.SampleDraft()
			if draft.Title != want.Title || len(draft.Questions) != len(want.Questions) {
				t.Fatalf("Round trip changed the draft: %+v", draft)
			}
			for qid, a := range want.CorrectAnswers {
				if !draft.CorrectAnswers[qid].Equal(a) {
					t.Errorf("Correct answer %d: got %v, want %v", qid, draft.CorrectAnswers[qid], a)
				}
			}
		})
	}

	t.Run("corrupted file", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/builder/template/import", strings.NewReader("{oops"))
		w := httptest.NewRecorder()
		h.ImportTemplate(w, asUser(req, "alice"))
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unknown format", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/builder/template/export?format=toml", testutil.SampleDraft(), nil)
		w := httptest.NewRecorder()
		h.ExportTemplate(w, asUser(req, "alice"))
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}
